package delivery

import (
	"fmt"
	"time"

	"chefy/domain"
	"chefy/entities"
)

type calendarNames struct {
	// days starts on Monday.
	days        [7]string
	months      [12]string
	monthsShort [12]string
}

var names = map[string]calendarNames{
	domain.LocaleEnglish: {
		days:        [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		monthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	},
	domain.LocaleFrench: {
		days:        [7]string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"},
		months:      [12]string{"Janvier", "Février", "Mars", "Avril", "Mai", "Juin", "Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre"},
		monthsShort: [12]string{"Jan", "Fév", "Mar", "Avr", "Mai", "Juin", "Juil", "Août", "Sep", "Oct", "Nov", "Déc"},
	},
	domain.LocaleArabic: {
		days:        [7]string{"إثن", "ثلا", "أرب", "خمي", "جمع", "سبت", "أحد"},
		months:      [12]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
		monthsShort: [12]string{"ينا", "فبر", "مار", "أبر", "ماي", "يون", "يول", "أغس", "سبت", "أكت", "نوف", "ديس"},
	},
}

func namesFor(locale string) calendarNames {
	return names[domain.ResolveLocale(locale)]
}

func WeekdayName(w time.Weekday, locale string) string {
	// time.Weekday counts from Sunday.
	return namesFor(locale).days[(int(w)+6)%7]
}

func MonthName(m time.Month, locale string) string {
	return namesFor(locale).months[m-1]
}

func MonthShortName(m time.Month, locale string) string {
	return namesFor(locale).monthsShort[m-1]
}

// DayLabel renders d as "Mon 13 Jan" in the given locale.
func DayLabel(d entities.Day, locale string) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d %s", WeekdayName(d.Weekday(), locale), d.Date(), MonthShortName(d.Month(), locale))
}
