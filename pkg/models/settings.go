package models

// Settings represents the application configuration
type Settings struct {
	Log    bool           `mapstructure:"log" yaml:"log"`
	Editor EditorSettings `mapstructure:"editor" yaml:"editor"`
}

// EditorSettings controls the text widget
type EditorSettings struct {
	LineNumbers bool `mapstructure:"line_numbers" yaml:"line_numbers"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Log: true,
		Editor: EditorSettings{
			LineNumbers: true,
		},
	}
}
