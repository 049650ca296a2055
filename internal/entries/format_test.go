package entries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpumanager/internal/models"
)

func TestFormatPreference_Known(t *testing.T) {
	assert.Equal(t, "auto(0)", FormatPreference("0"))
	assert.Equal(t, "iGPU(1)", FormatPreference("1"))
	assert.Equal(t, "dGPU(2)", FormatPreference("2"))
}

func TestFormatPreference_Passthrough(t *testing.T) {
	for _, raw := range []string{"", "3", "9", "auto", "GpuPreference=1;", "dGPU(2)"} {
		assert.Equal(t, raw, FormatPreference(raw))
	}
}

func TestParsePreferenceDisplay_RoundTrip(t *testing.T) {
	for _, p := range models.Preferences {
		got, err := ParsePreferenceDisplay(FormatPreference(p.Digit()))
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.Equal(t, p.Digit(), got.Digit())
	}
}

func TestParsePreferenceDisplay_RejectsUnknown(t *testing.T) {
	for _, label := range []string{"", "7", "gpu(1)", "auto(3)", "dGPU(2) "} {
		_, err := ParsePreferenceDisplay(label)
		assert.ErrorIs(t, err, ErrUnknownLabel, label)
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "a.exe", BaseName(`C:\Games\a.exe`))
	assert.Equal(t, "b.exe", BaseName("C:/Tools/b.exe"))
	assert.Equal(t, "c.exe", BaseName("c.exe"))
}

func TestChoices(t *testing.T) {
	assert.Equal(t, []string{"auto(0)", "iGPU(1)", "dGPU(2)"}, Choices())
	assert.Equal(t, LabelDiscrete, Label(models.PreferenceDiscrete))
}
