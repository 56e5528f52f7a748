package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reef-datagen/utils"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultProfileIsValid(t *testing.T) {
	p := utils.DefaultProfile()
	require.NoError(t, p.Validate())

	epoch, err := p.EpochTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), epoch)
	assert.Equal(t, []int{1}, p.Timeline.StepHours)
}

func TestLoadGeneratorProfileEmptyPath(t *testing.T) {
	p, err := utils.LoadGeneratorProfile("")
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultProfile(), p)
}

func TestLoadGeneratorProfileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "generator.yaml", `
location:
  base_lat: 10.5
timeline:
  step_hours: [1, 3, 6]
trend: 0.4
`)
	p, err := utils.LoadGeneratorProfile(path)
	require.NoError(t, err)

	assert.Equal(t, 10.5, p.Location.BaseLat)
	assert.Equal(t, 145.0, p.Location.BaseLng, "unset keys keep their default")
	assert.Equal(t, []int{1, 3, 6}, p.Timeline.StepHours)
	assert.Equal(t, 0.4, p.Trend)
	assert.Equal(t, "2022-01-01", p.Timeline.Epoch)
}

func TestLoadGeneratorProfileRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero step":   "timeline:\n  step_hours: [1, 0]\n",
		"empty steps": "timeline:\n  step_hours: []\n",
		"bad epoch":   "timeline:\n  epoch: 2022/01/01\n",
		"depths":      "deployment:\n  min_depth_m: 50\n  max_depth_m: 10\n",
		"not yaml":    "location: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := utils.LoadGeneratorProfile(writeFile(t, "generator.yaml", body))
			assert.Error(t, err)
		})
	}
}

func TestLoadGeneratorProfileMissingFile(t *testing.T) {
	_, err := utils.LoadGeneratorProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// unsetEnv clears keys for the duration of the test. godotenv never
// overrides a variable that is present, even when empty, so t.Setenv
// cannot be used to blank them.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		prev, had := os.LookupEnv(k)
		require.NoError(t, os.Unsetenv(k))
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, prev)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
}

func TestLoadEnvDefaultsFromDotEnv(t *testing.T) {
	unsetEnv(t, utils.EnvConfig, utils.EnvSeed, utils.EnvLogLevel)
	path := writeFile(t, ".env",
		"REEF_DATAGEN_SEED=42\nREEF_DATAGEN_CONFIG=profiles/reef.yaml\nREEF_DATAGEN_LOG_LEVEL=debug\n")

	d, err := utils.LoadEnvDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), d.Seed)
	assert.Equal(t, "profiles/reef.yaml", d.ConfigPath)
	assert.Equal(t, "debug", d.LogLevel)
}

func TestLoadEnvDefaultsMissingFile(t *testing.T) {
	unsetEnv(t, utils.EnvConfig, utils.EnvSeed, utils.EnvLogLevel)

	d, err := utils.LoadEnvDefaults(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, utils.EnvDefaults{LogLevel: "INFO"}, d)
}

func TestLoadEnvDefaultsBadSeed(t *testing.T) {
	t.Setenv(utils.EnvSeed, "not-a-number")
	_, err := utils.LoadEnvDefaults()
	assert.Error(t, err)
}
