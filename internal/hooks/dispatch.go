package hooks

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEvent is returned by Dispatch for events without a hook.
var ErrUnknownEvent = errors.New("unknown event")

// Composer script events handled by this package.
const (
	EventPostAutoloadDump     = "post-autoload-dump"
	EventPostCreateProjectCmd = "post-create-project-cmd"
	EventPostInstallCmd       = "post-install-cmd"
	EventPostUpdateCmd        = "post-update-cmd"
)

// Hook is a lifecycle handler.
type Hook func(ev *Event) error

var handlers = map[string]Hook{
	EventPostAutoloadDump:     InstallAssets,
	EventPostInstallCmd:       InstallAssets,
	EventPostUpdateCmd:        InstallAssets,
	EventPostCreateProjectCmd: InstallThemesAndFiles,
}

// Lookup returns the hook registered for an event.
func Lookup(event string) (Hook, bool) {
	h, ok := handlers[event]
	return h, ok
}

// Events lists the handled event names in sorted order.
func Events() []string {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the hook registered for ev.Name.
func Dispatch(ev *Event) error {
	h, ok := Lookup(ev.Name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownEvent, ev.Name)
	}
	ev.Log.Debug().Str("event", ev.Name).Msg("dispatching")
	return h(ev)
}
