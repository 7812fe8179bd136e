package profile

import (
	"context"
	"testing"

	"chefy/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDefaults(t *testing.T) {
	svc := NewProfileService(DefaultPreferences(""))
	res := svc.GetProfile(context.Background())

	assert.Equal(t, "Balanced", res.Preferences.Dietary)
	assert.Equal(t, []string{"None"}, res.Preferences.Allergies)
	assert.Equal(t, "2 people", res.Preferences.Household)
	assert.True(t, res.Preferences.Notifications)
	assert.False(t, res.Preferences.DarkMode)
	assert.Equal(t, domain.LocaleEnglish, res.Preferences.Language)
	assert.Equal(t, "None", res.AllergiesSummary)
	assert.False(t, res.RTL)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(DefaultPreferences(domain.LocaleEnglish))

	res, err := svc.UpdateProfile(ctx, domain.UpdateProfileRequest{
		Dietary:   ptr("Keto"),
		Allergies: []string{"Soy", "None", "Dairy", "Soy"},
		DarkMode:  ptr(true),
		Language:  ptr(domain.LocaleArabic),
	})
	require.NoError(t, err)
	assert.Equal(t, "Keto", res.Preferences.Dietary)
	assert.Equal(t, []string{"Dairy", "Soy"}, res.Preferences.Allergies)
	assert.Equal(t, "Dairy, Soy", res.AllergiesSummary)
	assert.True(t, res.Preferences.DarkMode)
	assert.True(t, res.RTL)
	assert.Equal(t, "2 people", res.Preferences.Household)
	assert.True(t, res.Preferences.Notifications)

	res, err = svc.UpdateProfile(ctx, domain.UpdateProfileRequest{Notifications: ptr(false), Allergies: []string{}})
	require.NoError(t, err)
	assert.False(t, res.Preferences.Notifications)
	assert.Equal(t, []string{"None"}, res.Preferences.Allergies)
}

func TestUpdateProfileRejectsUnknownOptions(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(DefaultPreferences(domain.LocaleEnglish))

	_, err := svc.UpdateProfile(ctx, domain.UpdateProfileRequest{Dietary: ptr("Vegan"), Household: ptr("12 people")})
	assert.ErrorIs(t, err, domain.ErrInvalidPreference)

	_, err = svc.UpdateProfile(ctx, domain.UpdateProfileRequest{Language: ptr("de")})
	assert.ErrorIs(t, err, domain.ErrInvalidPreference)

	_, err = svc.UpdateProfile(ctx, domain.UpdateProfileRequest{Allergies: []string{"Gluten"}})
	assert.ErrorIs(t, err, domain.ErrInvalidPreference)

	assert.Equal(t, "Balanced", svc.Preferences(ctx).Dietary)
}

func TestFormatAllergies(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, "None"},
		{[]string{"None"}, "None"},
		{[]string{"Fish"}, "Fish"},
		{[]string{"Fish", "Eggs"}, "Fish, Eggs"},
		{[]string{"Dairy", "Eggs", "Fish"}, "Dairy, Eggs..."},
		{[]string{"None", "Wheat"}, "Wheat"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAllergies(tt.in))
	}
}
