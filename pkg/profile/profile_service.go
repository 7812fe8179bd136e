package profile

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"chefy/domain"
	"chefy/entities"
)

type (
	ProfileService interface {
		Preferences(ctx context.Context) entities.Preferences
		GetProfile(ctx context.Context) domain.ProfileResponse
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (domain.ProfileResponse, error)
	}

	profileService struct {
		mu    sync.RWMutex
		prefs entities.Preferences
	}
)

func DefaultPreferences(language string) entities.Preferences {
	return entities.Preferences{
		Dietary:       domain.DefaultDietary,
		Allergies:     []string{domain.AllergyNone},
		Household:     domain.DefaultHousehold,
		Notifications: true,
		DarkMode:      false,
		Language:      domain.ResolveLocale(language),
	}
}

func NewProfileService(defaults entities.Preferences) ProfileService {
	defaults.Allergies = NormalizeAllergies(defaults.Allergies)
	return &profileService{prefs: defaults}
}

func (s *profileService) Preferences(ctx context.Context) entities.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePreferences(s.prefs)
}

func (s *profileService) GetProfile(ctx context.Context) domain.ProfileResponse {
	return toProfileResponse(s.Preferences(ctx))
}

// UpdateProfile applies the non-nil fields of req. Nothing is changed when
// any field holds an unknown option.
func (s *profileService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (domain.ProfileResponse, error) {
	if req.Dietary != nil && !contains(domain.DietaryOptions, *req.Dietary) {
		return domain.ProfileResponse{}, fmt.Errorf("dietary %q: %w", *req.Dietary, domain.ErrInvalidPreference)
	}
	for _, a := range req.Allergies {
		if !contains(domain.AllergyOptions, a) {
			return domain.ProfileResponse{}, fmt.Errorf("allergy %q: %w", a, domain.ErrInvalidPreference)
		}
	}
	if req.Household != nil && !contains(domain.HouseholdOptions, *req.Household) {
		return domain.ProfileResponse{}, fmt.Errorf("household %q: %w", *req.Household, domain.ErrInvalidPreference)
	}
	if req.Language != nil && !domain.IsSupportedLocale(*req.Language) {
		return domain.ProfileResponse{}, fmt.Errorf("language %q: %w", *req.Language, domain.ErrInvalidPreference)
	}

	s.mu.Lock()
	if req.Dietary != nil {
		s.prefs.Dietary = *req.Dietary
	}
	if req.Allergies != nil {
		s.prefs.Allergies = NormalizeAllergies(req.Allergies)
	}
	if req.Household != nil {
		s.prefs.Household = *req.Household
	}
	if req.Notifications != nil {
		s.prefs.Notifications = *req.Notifications
	}
	if req.DarkMode != nil {
		s.prefs.DarkMode = *req.DarkMode
	}
	if req.Language != nil {
		s.prefs.Language = *req.Language
	}
	prefs := clonePreferences(s.prefs)
	s.mu.Unlock()

	return toProfileResponse(prefs), nil
}

// NormalizeAllergies dedupes allergies into option order. "None" only
// survives on its own; an empty set becomes "None".
func NormalizeAllergies(allergies []string) []string {
	out := make([]string, 0, len(allergies))
	for _, opt := range domain.AllergyOptions {
		if opt != domain.AllergyNone && contains(allergies, opt) {
			out = append(out, opt)
		}
	}
	if len(out) == 0 {
		return []string{domain.AllergyNone}
	}
	return out
}

// FormatAllergies summarises allergies for the profile row: at most two
// names, then an ellipsis.
func FormatAllergies(allergies []string) string {
	filtered := make([]string, 0, len(allergies))
	for _, a := range allergies {
		if a != domain.AllergyNone {
			filtered = append(filtered, a)
		}
	}
	switch {
	case len(filtered) == 0:
		return domain.AllergyNone
	case len(filtered) > 2:
		return strings.Join(filtered[:2], ", ") + "..."
	default:
		return strings.Join(filtered, ", ")
	}
}

func toProfileResponse(p entities.Preferences) domain.ProfileResponse {
	return domain.ProfileResponse{
		Preferences:      p,
		AllergiesSummary: FormatAllergies(p.Allergies),
		RTL:              domain.IsRTL(p.Language),
		Options: domain.ProfileOptions{
			Dietary:   domain.DietaryOptions,
			Allergies: domain.AllergyOptions,
			Household: domain.HouseholdOptions,
			Languages: domain.Locales,
		},
	}
}

func clonePreferences(p entities.Preferences) entities.Preferences {
	p.Allergies = append([]string(nil), p.Allergies...)
	return p
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
