package config

// ColorScheme defines the colors used for CLI output
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (borders, field labels)
	Accent string `yaml:"accent"`

	// Semantic colors
	Success string `yaml:"success"` // stored/created confirmations
	Danger  string `yaml:"danger"`  // delete confirmations

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// DefaultColorScheme returns the blue/red scheme
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:    "default",
		Accent:    "#007BFF",
		Success:   "#5FD75F",
		Danger:    "#FF4444",
		Title:     "#F9F9F9",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF4444",
		ErrorBg:   "#5F0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:    "monochrome",
		Accent:    "#FFFFFF",
		Success:   "#FFFFFF",
		Danger:    "#FFFFFF",
		Title:     "#FFFFFF",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}

// presetColorScheme returns a preset color scheme by name
func presetColorScheme(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing color values from the selected preset
func (c *ColorScheme) ApplyDefaults() {
	preset := presetColorScheme(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Success, preset.Success)
	fill(&c.Danger, preset.Danger)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overlays non-empty values from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Success, other.Success)
	merge(&c.Danger, other.Danger)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.WarningFg, other.WarningFg)
	merge(&c.WarningBg, other.WarningBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}
