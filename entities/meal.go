package entities

type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
	Carbs    int `json:"carbs"`
}

type MealImages struct {
	Plated      string `json:"plated"`
	Ingredients string `json:"ingredients"`
}

// Meal is catalog reference data. Ingredients holds the canonical
// (default locale) names, which removed-ingredient sets are checked against.
type Meal struct {
	ID          int        `json:"id"`
	Price       Money      `json:"price"`
	Nutrition   Nutrition  `json:"nutrition"`
	Ingredients []string   `json:"ingredients"`
	Images      MealImages `json:"images"`
}

// LocalizedMeal is the per-locale recipe text shown for a meal.
type LocalizedMeal struct {
	Name        string   `json:"name"`
	Time        string   `json:"time"`
	Tags        string   `json:"tags"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}
