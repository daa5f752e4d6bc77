package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default layout settings applied to new scenes
	DefaultMinSpacing     float64 `json:"default_min_spacing"`
	DefaultGridStep       float64 `json:"default_grid_step"`
	DefaultResolverPasses int     `json:"default_resolver_passes"`
	DefaultMood           string  `json:"default_mood"`

	// Application preferences
	RecentScenes []string `json:"recent_scenes"`
	ExportDir    string   `json:"export_dir"` // Directory for generated reports, "" = scene directory
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultMinSpacing:     defaults.MinSpacing,
		DefaultGridStep:       defaults.GridStep,
		DefaultResolverPasses: defaults.ResolverPasses,
		DefaultMood:           "neutral",
		RecentScenes:          []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// LayoutSettings struct. Used when creating a new scene so it inherits the
// user's saved defaults.
func (c AppConfig) ApplyToSettings(s *LayoutSettings) {
	s.MinSpacing = c.DefaultMinSpacing
	s.GridStep = c.DefaultGridStep
	s.ResolverPasses = c.DefaultResolverPasses
}
