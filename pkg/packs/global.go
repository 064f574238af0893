package packs

import (
	"sync"
	"sync/atomic"

	"github.com/bwillis/packs/pkg/config"
	"github.com/bwillis/packs/pkg/logging"
)

var (
	settingsMu sync.Mutex
	settings   config.Settings

	// buildMu serializes builds so concurrent Load calls scan once
	buildMu sync.Mutex
	current atomic.Pointer[Registry]
)

// Configure edits the process-wide programmatic settings. Snapshots that
// were already built are unaffected; call Reload to apply the change.
func Configure(fn func(*config.Settings)) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	fn(&settings)
}

// CurrentSettings returns a copy of the process-wide settings
func CurrentSettings() config.Settings {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	return settings.Clone()
}

// ResetSettings restores the process-wide settings to their zero value.
func ResetSettings() {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = config.Settings{}
}

// Load returns the shared snapshot, building it on first use from the
// project root found by paths.FindRoot.
func Load() (*Registry, error) {
	if r := current.Load(); r != nil {
		return r, nil
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	if r := current.Load(); r != nil {
		return r, nil
	}
	return rebuild()
}

// Reload builds a fresh snapshot and swaps it in. On error the previous
// snapshot stays in place.
func Reload() (*Registry, error) {
	buildMu.Lock()
	defer buildMu.Unlock()
	return rebuild()
}

// BustCache drops the shared snapshot; the next Load rebuilds it.
func BustCache() {
	current.Store(nil)
	logger := logging.GetLogger("packs")
	logger.Debug().Msg("Pack cache cleared")
}

func rebuild() (*Registry, error) {
	r, err := New(Options{Settings: CurrentSettings()})
	if err != nil {
		return nil, err
	}
	current.Store(r)
	return r, nil
}
