package hooks

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOptionPrecedence(t *testing.T) {
	te := newTestEvent(t, map[string]any{"bolt-web-dir": "from-extra"})

	assert.Equal(t, "from-extra", GetOption(te.Event, "web-dir", "default"))

	te.env["BOLT_WEB_DIR"] = "from-env"
	assert.Equal(t, "from-env", GetOption(te.Event, "web-dir", "default"))

	assert.Equal(t, "default", GetOption(te.Event, "files-dir", "default"))
	assert.Nil(t, GetOption(te.Event, "themebase-dir", nil))
}

func TestGetOptionEmptyEnvIgnored(t *testing.T) {
	te := newTestEvent(t, map[string]any{"bolt-dir-mode": "0755"})
	te.env["BOLT_DIR_MODE"] = ""

	assert.Equal(t, "0755", GetOption(te.Event, "dir-mode", 0777))
}

func TestGetOptionReturnsExtraAsIs(t *testing.T) {
	te := newTestEvent(t, map[string]any{"bolt-dir-mode": float64(493)})

	assert.Equal(t, float64(493), GetOption(te.Event, "dir-mode", 0777))
}

func TestConfigureDirMode(t *testing.T) {
	tests := []struct {
		name  string
		extra map[string]any
		env   string
		want  os.FileMode
	}{
		{"default", nil, "", 0777},
		{"octal string", map[string]any{"bolt-dir-mode": "0755"}, "", 0755},
		{"octal string without zero", map[string]any{"bolt-dir-mode": "775"}, "", 0775},
		{"number", map[string]any{"bolt-dir-mode": float64(493)}, "", 0755},
		{"env wins", map[string]any{"bolt-dir-mode": "0755"}, "0700", 0700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := newTestEvent(t, tt.extra)
			if tt.env != "" {
				te.env["BOLT_DIR_MODE"] = tt.env
			}

			mode, err := ConfigureDirMode(te.Event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestConfigureDirModeStringResolvesTo493(t *testing.T) {
	te := newTestEvent(t, map[string]any{"bolt-dir-mode": "0755"})

	mode, err := ConfigureDirMode(te.Event)
	require.NoError(t, err)
	assert.Equal(t, uint32(493), uint32(mode))
	assert.Equal(t, uint32(0777-493), uint32(0777-mode))
}

func TestConfigureDirModeDefaultIs511(t *testing.T) {
	te := newTestEvent(t, nil)

	mode, err := ConfigureDirMode(te.Event)
	require.NoError(t, err)
	assert.Equal(t, uint32(511), uint32(mode))
}

func TestConfigureDirModeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"not octal", "0899"},
		{"words", "rwx"},
		{"too large", "1777"},
		{"negative", float64(-1)},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := newTestEvent(t, map[string]any{"bolt-dir-mode": tt.value})

			_, err := ConfigureDirMode(te.Event)
			assert.ErrorContains(t, err, "invalid directory mode")
		})
	}
}
