package catalog

import (
	"chefy/domain"
	"chefy/entities"
)

func img(id string) string {
	return "https://images.unsplash.com/" + id + "?w=800&q=80"
}

func seedMeals() []entities.Meal {
	return []entities.Meal{
		{
			ID:          1,
			Price:       entities.NewMoney(45.00),
			Nutrition:   entities.Nutrition{Calories: 520, Protein: 32, Fat: 28, Carbs: 18},
			Ingredients: []string{"Bell Peppers", "Duck Breast", "Orange Sauce", "Fresh Thyme"},
			Images:      entities.MealImages{Plated: img("photo-1580554530778-ca36943938b2"), Ingredients: img("photo-1606923829579-0cb981a83e2e")},
		},
		{
			ID:          2,
			Price:       entities.NewMoney(38.00),
			Nutrition:   entities.Nutrition{Calories: 480, Protein: 14, Fat: 22, Carbs: 58},
			Ingredients: []string{"Arborio Rice", "Mushrooms", "Truffle Oil", "Parmesan"},
			Images:      entities.MealImages{Plated: img("photo-1476124369491-e7addf5db371"), Ingredients: img("photo-1490818387583-1baba5e638af")},
		},
		{
			ID:          3,
			Price:       entities.NewMoney(52.00),
			Nutrition:   entities.Nutrition{Calories: 380, Protein: 35, Fat: 18, Carbs: 12},
			Ingredients: []string{"Salmon Fillet", "Herb Crust", "Lemon Butter", "Asparagus"},
			Images:      entities.MealImages{Plated: img("photo-1467003909585-2f8a72700288"), Ingredients: img("photo-1512621776951-a57141f2eefd")},
		},
		{
			ID:          4,
			Price:       entities.NewMoney(35.00),
			Nutrition:   entities.Nutrition{Calories: 550, Protein: 28, Fat: 20, Carbs: 62},
			Ingredients: []string{"Marinated Beef", "Sesame Rice", "Kimchi", "Gochujang Sauce"},
			Images:      entities.MealImages{Plated: img("photo-1504544750208-dc0358e63f7f"), Ingredients: img("photo-1547496502-affa22d38842")},
		},
		{
			ID:          5,
			Price:       entities.NewMoney(68.00),
			Nutrition:   entities.Nutrition{Calories: 620, Protein: 42, Fat: 35, Carbs: 8},
			Ingredients: []string{"Lamb Chops", "Feta Cream", "Olives", "Rosemary"},
			Images:      entities.MealImages{Plated: img("photo-1514516345957-556ca7d90a29"), Ingredients: img("photo-1540420773420-3366772f4999")},
		},
		{
			ID:          6,
			Price:       entities.NewMoney(32.00),
			Nutrition:   entities.Nutrition{Calories: 450, Protein: 26, Fat: 24, Carbs: 35},
			Ingredients: []string{"Chicken", "Coconut Curry", "Jasmine Rice", "Thai Basil"},
			Images:      entities.MealImages{Plated: img("photo-1455619452474-d2be8b1e70cd"), Ingredients: img("photo-1546069901-ba9599a7e63c")},
		},
		{
			ID:          7,
			Price:       entities.NewMoney(58.00),
			Nutrition:   entities.Nutrition{Calories: 290, Protein: 28, Fat: 16, Carbs: 6},
			Ingredients: []string{"Sea Scallops", "Brown Butter", "Capers", "Microgreens"},
			Images:      entities.MealImages{Plated: img("photo-1432139555190-58524dae6a55"), Ingredients: img("photo-1607532941433-304659e8198a")},
		},
		{
			ID:          8,
			Price:       entities.NewMoney(85.00),
			Nutrition:   entities.Nutrition{Calories: 320, Protein: 38, Fat: 14, Carbs: 4},
			Ingredients: []string{"Wagyu Beef", "Ponzu Sauce", "Daikon", "Green Onion"},
			Images:      entities.MealImages{Plated: img("photo-1546833999-b9f581a1996d"), Ingredients: img("photo-1498579150354-977475b7ea0b")},
		},
	}
}

func seedContent() map[int]map[string]entities.LocalizedMeal {
	return map[int]map[string]entities.LocalizedMeal{
		1: {
			domain.LocaleEnglish: {Name: "Pan-Seared Duck Breast", Time: "15", Tags: "Zero-Prep",
				Ingredients: []string{"Bell Peppers", "Duck Breast", "Orange Sauce", "Fresh Thyme"},
				Steps:       []string{"Open Cup A (Peppers)", "Sauté for 4 mins on high heat", "Add Duck and sear 3 mins each side", "Pour Sauce B, simmer 2 mins"}},
			domain.LocaleFrench: {Name: "Magret de Canard Poêlé", Time: "15", Tags: "Zéro Prépa",
				Ingredients: []string{"Poivrons", "Magret de Canard", "Sauce Orange", "Thym Frais"},
				Steps:       []string{"Ouvrir le Pot A (Poivrons)", "Saisir 4 min à feu vif", "Ajouter le canard, 3 min par côté", "Verser la Sauce B, mijoter 2 min"}},
			domain.LocaleArabic: {Name: "صدور البط المحمّرة", Time: "15", Tags: "بدون تحضير",
				Ingredients: []string{"فلفل حلو", "صدر البط", "صلصة البرتقال", "زعتر طازج"},
				Steps:       []string{"افتح العلبة أ (الفلفل)", "قلي 4 دقائق على نار عالية", "أضف البط واقليه 3 دقائق لكل جانب", "اسكب الصلصة واتركها تغلي دقيقتين"}},
		},
		2: {
			domain.LocaleEnglish: {Name: "Truffle Mushroom Risotto", Time: "18", Tags: "Zero-Prep",
				Ingredients: []string{"Arborio Rice", "Mushrooms", "Truffle Oil", "Parmesan"},
				Steps:       []string{"Pour rice into heated pan", "Add mushroom mix gradually", "Stir continuously for 15 mins", "Finish with truffle oil drizzle"}},
			domain.LocaleFrench: {Name: "Risotto aux Truffes", Time: "18", Tags: "Zéro Prépa",
				Ingredients: []string{"Riz Arborio", "Champignons", "Huile de Truffe", "Parmesan"},
				Steps:       []string{"Verser le riz dans la poêle chaude", "Ajouter les champignons progressivement", "Remuer continuellement 15 min", "Finir avec l'huile de truffe"}},
			domain.LocaleArabic: {Name: "ريزوتو الفطر بالكمأة", Time: "18", Tags: "بدون تحضير",
				Ingredients: []string{"أرز أربوريو", "فطر", "زيت الكمأة", "جبن بارميزان"},
				Steps:       []string{"اسكب الأرز في المقلاة الساخنة", "أضف خليط الفطر تدريجياً", "حرك باستمرار لمدة 15 دقيقة", "أنهِ بزيت الكمأة"}},
		},
		3: {
			domain.LocaleEnglish: {Name: "Herb-Crusted Salmon", Time: "12", Tags: "Zero-Prep",
				Ingredients: []string{"Salmon Fillet", "Herb Crust", "Lemon Butter", "Asparagus"},
				Steps:       []string{"Press herb crust onto salmon", "Pan-sear skin-side down 4 mins", "Flip and cook 3 mins more", "Serve with lemon butter"}},
			domain.LocaleFrench: {Name: "Saumon en Croûte d'Herbes", Time: "12", Tags: "Zéro Prépa",
				Ingredients: []string{"Filet de Saumon", "Croûte aux Herbes", "Beurre Citronné", "Asperges"},
				Steps:       []string{"Appuyer la croûte sur le saumon", "Saisir côté peau 4 min", "Retourner et cuire 3 min", "Servir avec le beurre citronné"}},
			domain.LocaleArabic: {Name: "سلمون بقشرة الأعشاب", Time: "12", Tags: "بدون تحضير",
				Ingredients: []string{"فيليه سلمون", "قشرة أعشاب", "زبدة ليمون", "هليون"},
				Steps:       []string{"اضغط قشرة الأعشاب على السلمون", "اقلِ جانب الجلد 4 دقائق", "اقلب واطبخ 3 دقائق أخرى", "قدم مع زبدة الليمون"}},
		},
		4: {
			domain.LocaleEnglish: {Name: "Korean BBQ Beef Bowl", Time: "14", Tags: "Zero-Prep",
				Ingredients: []string{"Marinated Beef", "Sesame Rice", "Kimchi", "Gochujang Sauce"},
				Steps:       []string{"Cook rice as directed", "Sear beef strips 3 mins", "Arrange bowl with toppings", "Drizzle with gochujang"}},
			domain.LocaleFrench: {Name: "Bol de Bœuf BBQ Coréen", Time: "14", Tags: "Zéro Prépa",
				Ingredients: []string{"Bœuf Mariné", "Riz au Sésame", "Kimchi", "Sauce Gochujang"},
				Steps:       []string{"Cuire le riz comme indiqué", "Saisir le bœuf 3 min", "Disposer les garnitures", "Arroser de gochujang"}},
			domain.LocaleArabic: {Name: "طبق اللحم الكوري", Time: "14", Tags: "بدون تحضير",
				Ingredients: []string{"لحم متبل", "أرز بالسمسم", "كيمتشي", "صلصة كوتشوجانغ"},
				Steps:       []string{"اطبخ الأرز كما هو موضح", "اقلِ شرائح اللحم 3 دقائق", "رتب الطبق مع الإضافات", "رش صلصة كوتشوجانغ"}},
		},
		5: {
			domain.LocaleEnglish: {Name: "Mediterranean Lamb Chops", Time: "16", Tags: "Zero-Prep",
				Ingredients: []string{"Lamb Chops", "Feta Cream", "Olives", "Rosemary"},
				Steps:       []string{"Season lamb with rosemary", "Sear 4 mins each side", "Rest for 2 mins", "Top with feta cream"}},
			domain.LocaleFrench: {Name: "Côtelettes d'Agneau", Time: "16", Tags: "Zéro Prépa",
				Ingredients: []string{"Côtelettes d'Agneau", "Crème de Feta", "Olives", "Romarin"},
				Steps:       []string{"Assaisonner avec le romarin", "Saisir 4 min par côté", "Reposer 2 min", "Garnir de crème de feta"}},
			domain.LocaleArabic: {Name: "ريش الضأن المتوسطية", Time: "16", Tags: "بدون تحضير",
				Ingredients: []string{"ريش ضأن", "كريمة الفيتا", "زيتون", "إكليل الجبل"},
				Steps:       []string{"تبل الضأن بإكليل الجبل", "اقلِ 4 دقائق لكل جانب", "اتركها ترتاح دقيقتين", "زين بكريمة الفيتا"}},
		},
		6: {
			domain.LocaleEnglish: {Name: "Thai Coconut Curry", Time: "15", Tags: "Zero-Prep",
				Ingredients: []string{"Chicken", "Coconut Curry", "Jasmine Rice", "Thai Basil"},
				Steps:       []string{"Heat curry paste in pan", "Add chicken, cook 5 mins", "Pour coconut sauce, simmer", "Serve over jasmine rice"}},
			domain.LocaleFrench: {Name: "Curry Thaï au Coco", Time: "15", Tags: "Zéro Prépa",
				Ingredients: []string{"Poulet", "Curry au Coco", "Riz Jasmin", "Basilic Thaï"},
				Steps:       []string{"Chauffer la pâte de curry", "Ajouter le poulet, cuire 5 min", "Verser la sauce coco, mijoter", "Servir sur riz jasmin"}},
			domain.LocaleArabic: {Name: "كاري جوز الهند التايلندي", Time: "15", Tags: "بدون تحضير",
				Ingredients: []string{"دجاج", "كاري جوز الهند", "أرز ياسمين", "ريحان تايلندي"},
				Steps:       []string{"سخن معجون الكاري", "أضف الدجاج واطبخ 5 دقائق", "اسكب صلصة جوز الهند", "قدم فوق أرز الياسمين"}},
		},
		7: {
			domain.LocaleEnglish: {Name: "Seared Scallops", Time: "10", Tags: "Zero-Prep",
				Ingredients: []string{"Sea Scallops", "Brown Butter", "Capers", "Microgreens"},
				Steps:       []string{"Pat scallops very dry", "Sear 2 mins each side", "Add butter and capers", "Plate with microgreens"}},
			domain.LocaleFrench: {Name: "Saint-Jacques Poêlées", Time: "10", Tags: "Zéro Prépa",
				Ingredients: []string{"Coquilles St-Jacques", "Beurre Noisette", "Câpres", "Micropousses"},
				Steps:       []string{"Sécher les coquilles", "Saisir 2 min par côté", "Ajouter beurre et câpres", "Dresser avec micropousses"}},
			domain.LocaleArabic: {Name: "أسقلوب محمّر", Time: "10", Tags: "بدون تحضير",
				Ingredients: []string{"أسقلوب بحري", "زبدة بنية", "كبر", "براعم صغيرة"},
				Steps:       []string{"جفف الأسقلوب جيداً", "اقلِ دقيقتين لكل جانب", "أضف الزبدة والكبر", "قدم مع البراعم"}},
		},
		8: {
			domain.LocaleEnglish: {Name: "Wagyu Beef Tataki", Time: "8", Tags: "Zero-Prep",
				Ingredients: []string{"Wagyu Beef", "Ponzu Sauce", "Daikon", "Green Onion"},
				Steps:       []string{"Sear beef 30 secs each side", "Slice thinly against grain", "Arrange with garnishes", "Drizzle ponzu sauce"}},
			domain.LocaleFrench: {Name: "Tataki de Bœuf Wagyu", Time: "8", Tags: "Zéro Prépa",
				Ingredients: []string{"Bœuf Wagyu", "Sauce Ponzu", "Daikon", "Oignon Vert"},
				Steps:       []string{"Saisir 30 sec par côté", "Trancher finement", "Disposer avec garnitures", "Arroser de ponzu"}},
			domain.LocaleArabic: {Name: "تاتاكي لحم واغيو", Time: "8", Tags: "بدون تحضير",
				Ingredients: []string{"لحم واغيو", "صلصة بونزو", "دايكون", "بصل أخضر"},
				Steps:       []string{"اقلِ اللحم 30 ثانية لكل جانب", "قطع شرائح رفيعة", "رتب مع الزينة", "رش صلصة البونزو"}},
		},
	}
}
