package entries

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gpumanager/internal/models"
)

// Labels offered by the preference selector.
const (
	LabelAuto       = "auto(0)"
	LabelIntegrated = "iGPU(1)"
	LabelDiscrete   = "dGPU(2)"
)

var ErrUnknownLabel = errors.New("unknown preference label")

// Choices returns the selector options in digit order.
func Choices() []string {
	return []string{LabelAuto, LabelIntegrated, LabelDiscrete}
}

// FormatPreference turns a raw digit into its display label. Unknown values
// are returned unchanged.
func FormatPreference(raw string) string {
	switch raw {
	case "0":
		return LabelAuto
	case "1":
		return LabelIntegrated
	case "2":
		return LabelDiscrete
	}
	return raw
}

// Label is FormatPreference for a known preference.
func Label(p models.Preference) string {
	return FormatPreference(p.Digit())
}

// ParsePreferenceDisplay recovers the preference from one of the three
// selector labels by reading the digit between the trailing parentheses.
func ParsePreferenceDisplay(label string) (models.Preference, error) {
	if !slices.Contains(Choices(), label) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	open := strings.LastIndexByte(label, '(')
	digit := strings.TrimSuffix(label[open+1:], ")")
	p, ok := models.PreferenceFromDigit(digit)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return p, nil
}

// BaseName returns the file name of an executable path. Both separators are
// honoured since stored paths are Windows paths regardless of host.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}
