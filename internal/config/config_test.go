package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":8080"
workload:
  session_hours: 1.0
  light_below: 24
  balanced_up_to: 24
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 1.0, cfg.Workload.SessionHours)
	assert.Equal(t, 24.0, cfg.Workload.LightBelow)
	// Untouched sections keep the reference defaults.
	assert.Len(t, cfg.Timetable.Days, 5)
	assert.Len(t, cfg.Timetable.Rows, 6)
	assert.Equal(t, "Asia/Kolkata", cfg.Calendar.Timezone)
}

func TestLoadRejectsRaggedTimetable(t *testing.T) {
	path := writeConfig(t, `
timetable:
  days: [Monday, Tuesday]
  rows:
    - time: "08:30 AM - 09:50 AM"
      codes: [A1]
`)

	_, err := Load(path)
	assert.Error(t, err, "every row needs one code per day")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().validate())
}
