package files

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/ableditor/ableditor/pkg/models"
)

// LoadSettings reads the TOML settings file at path. The returned settings are
// always usable: a missing or malformed file yields the defaults, and the
// error only says why the file was not used. Environment variables prefixed
// with ABLEDITOR_ (ABLEDITOR_LOG, ABLEDITOR_EDITOR_LINE_NUMBERS) override
// both.
func LoadSettings(fs afero.Fs, path string) (*models.Settings, error) {
	var readErr error

	v := newViper(fs)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			readErr = fmt.Errorf("failed to read settings %s: %w", path, err)
			// Drop whatever was half-parsed
			v = newViper(fs)
		}
	}

	settings := models.DefaultSettings()
	if err := v.Unmarshal(settings); err != nil {
		return models.DefaultSettings(), fmt.Errorf("failed to decode settings: %w", err)
	}

	return settings, readErr
}

func newViper(fs afero.Fs) *viper.Viper {
	defaults := models.DefaultSettings()

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("toml")
	v.SetDefault("log", defaults.Log)
	v.SetDefault("editor.line_numbers", defaults.Editor.LineNumbers)
	v.SetEnvPrefix("ABLEDITOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
