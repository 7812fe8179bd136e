package domain

import (
	"errors"
)

const (
	LocaleEnglish = "en"
	LocaleFrench  = "fr"
	LocaleArabic  = "ar"
	DefaultLocale = LocaleEnglish

	CurrencyCode = "TND"
)

var (
	Locales = []string{LocaleEnglish, LocaleFrench, LocaleArabic}

	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedValidation     = "request validation failed"

	ErrInvalidMealID = errors.New("invalid meal id")
	ErrInvalidDay    = errors.New("invalid delivery date")
)

// IsRTL reports whether a locale is written right to left.
func IsRTL(locale string) bool {
	return locale == LocaleArabic
}

// IsSupportedLocale reports whether locale has its own content tables.
func IsSupportedLocale(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// ResolveLocale maps an empty or unsupported locale to the default one.
func ResolveLocale(locale string) string {
	if IsSupportedLocale(locale) {
		return locale
	}
	return DefaultLocale
}
