package cli

import (
	"fmt"
	"slices"
)

var validFormats = []string{string(FormatText), string(FormatJSON), string(FormatYAML)}

// ValidateOutputFormat checks the value of an --output flag
func ValidateOutputFormat(format string) (OutputFormat, error) {
	if !slices.Contains(validFormats, format) {
		return "", fmt.Errorf("invalid output format: %s (valid formats: text, json, yaml)", format)
	}
	return OutputFormat(format), nil
}
