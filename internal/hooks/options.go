package hooks

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bolt/bolthooks/internal/branding"
	"github.com/bolt/bolthooks/internal/platform"
	"github.com/spf13/cast"
)

// GetOption reads an option from the environment or composer.json's extra
// section. With key "dir-mode" it checks BOLT_DIR_MODE, then
// extra["bolt-dir-mode"], then returns def.
func GetOption(ev *Event, key string, def any) any {
	key = branding.OptionPrefix() + key

	if value := ev.getenv(branding.OptionEnvVar(key)); value != "" {
		return value
	}

	if value, ok := ev.Composer.ExtraValue(key); ok {
		return value
	}
	return def
}

// ConfigureDirMode resolves the mode for directories the installers create.
// Strings are read as octal, numbers are taken as is.
func ConfigureDirMode(ev *Event) (os.FileMode, error) {
	raw := GetOption(ev, "dir-mode", uint32(platform.DefaultDirMode))

	mode, err := parseDirMode(raw)
	if err != nil {
		return 0, err
	}

	ev.Log.Debug().
		Str("mode", fmt.Sprintf("%#o", mode)).
		Str("umask", fmt.Sprintf("%#o", platform.Umask(mode))).
		Msg("directory mode")
	return mode, nil
}

func parseDirMode(raw any) (os.FileMode, error) {
	var n uint64
	switch v := raw.(type) {
	case string:
		parsed, err := strconv.ParseUint(strings.TrimSpace(v), 8, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid directory mode %q: not an octal number", v)
		}
		n = parsed
	case bool:
		return 0, fmt.Errorf("invalid directory mode %v", v)
	default:
		parsed, err := cast.ToUint64E(v)
		if err != nil {
			return 0, fmt.Errorf("invalid directory mode %v: %w", v, err)
		}
		n = parsed
	}

	if n > uint64(platform.DefaultDirMode) {
		return 0, fmt.Errorf("invalid directory mode %#o: exceeds 0777", n)
	}
	return os.FileMode(n), nil
}
