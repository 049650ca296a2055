package models

import (
	"strconv"
	"strings"
)

// Preference is the GPU hint Windows applies when launching an executable.
type Preference int

const (
	PreferenceAuto Preference = iota
	PreferenceIntegrated
	PreferenceDiscrete
)

// Preferences lists every known preference in digit order.
var Preferences = []Preference{PreferenceAuto, PreferenceIntegrated, PreferenceDiscrete}

const (
	rawValuePrefix = "GpuPreference="
	rawValueSuffix = ";"
)

func (p Preference) Valid() bool {
	return p >= PreferenceAuto && p <= PreferenceDiscrete
}

// Digit returns the single-character encoding stored in the raw value.
func (p Preference) Digit() string {
	return strconv.Itoa(int(p))
}

func (p Preference) String() string {
	switch p {
	case PreferenceAuto:
		return "Auto"
	case PreferenceIntegrated:
		return "IntegratedGPU"
	case PreferenceDiscrete:
		return "DiscreteGPU"
	}
	return "Preference(" + strconv.Itoa(int(p)) + ")"
}

// PreferenceFromDigit maps "0", "1" and "2" to their preference.
func PreferenceFromDigit(digit string) (Preference, bool) {
	for _, p := range Preferences {
		if p.Digit() == digit {
			return p, true
		}
	}
	return 0, false
}

// EncodeRawValue renders p in the registry format, e.g. "GpuPreference=2;".
func EncodeRawValue(p Preference) string {
	return rawValuePrefix + p.Digit() + rawValueSuffix
}

// DecodeRawValue extracts the digit from a value shaped exactly like
// "GpuPreference=<digit>;". Digits outside 0-2 are returned as-is so callers
// can show them verbatim.
func DecodeRawValue(raw string) (string, bool) {
	rest, ok := strings.CutPrefix(raw, rawValuePrefix)
	if !ok {
		return "", false
	}
	digit, ok := strings.CutSuffix(rest, rawValueSuffix)
	if !ok || len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return "", false
	}
	return digit, true
}

// RawEntry is one value under the preference namespace, exactly as stored.
type RawEntry struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// ConfigEntry is a stored value that passed DecodeRawValue. Setting holds the
// raw digit, which may be outside the known preferences.
type ConfigEntry struct {
	Path    string `json:"path"`
	Setting string `json:"setting"`
}

// Preference reports the known preference for the entry, if any.
func (e ConfigEntry) Preference() (Preference, bool) {
	return PreferenceFromDigit(e.Setting)
}

// ParseEntries keeps only entries whose value decodes, preserving order.
func ParseEntries(raw []RawEntry) []ConfigEntry {
	out := make([]ConfigEntry, 0, len(raw))
	for _, r := range raw {
		digit, ok := DecodeRawValue(r.Value)
		if !ok {
			continue
		}
		out = append(out, ConfigEntry{Path: r.Path, Setting: digit})
	}
	return out
}
