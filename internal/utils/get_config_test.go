package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "14", GetConfig("HORIZON_DAYS"))
	assert.Empty(t, GetConfig("UNKNOWN"))
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT: \"9000\"\nDEFAULT_LOCALE: fr\nHORIZON_DAYS: 21\n"), 0o600))
	t.Setenv(ConfigPathEnv, path)
	t.Setenv("HORIZON_DAYS", "7")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "fr", cfg.DefaultLocale)
	assert.Equal(t, 7, cfg.HorizonDays)
	assert.Equal(t, 20, cfg.RateLimitMax)
	assert.Equal(t, "Africa/Tunis", cfg.AppTimezone)
	assert.Equal(t, "9000", GetConfig("APP_PORT"))
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT: [\n"), 0o600))
	t.Setenv(ConfigPathEnv, path)

	assert.Equal(t, DefaultConfig(), LoadConfig())
}

func TestValidatorTags(t *testing.T) {
	v := NewValidator()

	type profile struct {
		Dietary  string   `validate:"omitempty,dietary"`
		Allergy  []string `validate:"omitempty,dive,allergy"`
		Language string   `validate:"omitempty,locale"`
	}
	assert.NoError(t, v.Struct(profile{Dietary: "Keto", Allergy: []string{"Soy"}, Language: "ar"}))
	assert.Error(t, v.Struct(profile{Dietary: "Carnivore"}))
	assert.Error(t, v.Struct(profile{Allergy: []string{"Gluten"}}))
	assert.Error(t, v.Struct(profile{Language: "de"}))
}
