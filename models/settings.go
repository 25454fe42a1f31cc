package models

// Toggle names of the settings slot. Unknown names found in stored or
// imported settings are preserved as-is for forward compatibility.
const (
	ToggleHideLocations     = "hideLocations"
	ToggleEncryptionActive  = "encryptionActive"
	ToggleDailyReminder     = "dailyReminder"
	ToggleWeeklySummary     = "weeklySummary"
	ToggleMemoryAnniversary = "memoryAnniversary"
	ToggleCompressImages    = "compressImages"
	ToggleLowResPreviews    = "lowResPreviews"
)

// Settings is the single-value user settings slot: a map of named boolean
// toggles. hideLocations is honored by presentation callers, which omit
// location display without altering stored data.
type Settings struct {
	Toggles map[string]bool `json:"toggles"`
}

// DefaultSettings returns the toggle defaults applied under any stored or
// imported settings document.
func DefaultSettings() Settings {
	return Settings{Toggles: map[string]bool{
		ToggleHideLocations:     false,
		ToggleEncryptionActive:  true,
		ToggleDailyReminder:     false,
		ToggleWeeklySummary:     false,
		ToggleMemoryAnniversary: true,
		ToggleCompressImages:    false,
		ToggleLowResPreviews:    false,
	}}
}

// On reports the state of the named toggle, false when absent.
func (s Settings) On(name string) bool {
	return s.Toggles[name]
}

// Clone returns a deep copy of the settings.
func (s Settings) Clone() Settings {
	toggles := make(map[string]bool, len(s.Toggles))
	for name, on := range s.Toggles {
		toggles[name] = on
	}
	return Settings{Toggles: toggles}
}
