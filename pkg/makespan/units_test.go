package makespan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComputeSpeed(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"100Gf", 100 * GFLOP},
		{"1.5Tflops", 1.5 * TFLOP},
		{"200", 200},
		{"3kf", 3000},
		{"2Mf", 2e6},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			value, err := ParseComputeSpeed(test.input)
			require.NoError(t, err)
			assert.InDelta(t, test.expected, value, test.expected*1e-12)
		})
	}

	for _, input := range []string{"", "fast", "10Xf", "10GB", "-1Gf"} {
		_, err := ParseComputeSpeed(input)
		assert.Error(t, err, input)
	}
}

func TestParseBandwidth(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"100MBps", 100 * MBYTE},
		{"80kbps", 10000},
		{"1KiBps", 1024},
		{"1.45GBps", 1.45 * GBYTE},
		{"42", 42},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			value, err := ParseBandwidth(test.input)
			require.NoError(t, err)
			assert.InDelta(t, test.expected, value, test.expected*1e-12)
		})
	}

	for _, input := range []string{"MBps", "10Gb", "10QBps"} {
		_, err := ParseBandwidth(input)
		assert.Error(t, err, input)
	}
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform("200Gf:100MBps:80kbps", nil)
	require.NoError(t, err)
	assert.Equal(t, Platform{ComputeSpeedPerCore: 200 * GFLOP, IOReadSpeedPerNode: 100 * MBYTE, IOWriteSpeedPerNode: 10000}, p)

	summit, err := ParsePlatform("summit", nil)
	require.NoError(t, err)
	assert.InDelta(t, 148600.0*TFLOP/2414592, summit.ComputeSpeedPerCore, 1)

	presets := map[string]string{
		"cori":   "36.8Gf:1.45GBps:1.13GBps",
		"summit": "1Gf:1MBps:1MBps",
	}
	cori, err := ParsePlatform("cori", presets)
	require.NoError(t, err)
	assert.InDelta(t, 36.8*GFLOP, cori.ComputeSpeedPerCore, 1)

	overridden, err := ParsePlatform("summit", presets)
	require.NoError(t, err)
	assert.Equal(t, GFLOP, overridden.ComputeSpeedPerCore)

	for _, spec := range []string{"nowhere", "200Gf:100MBps", "200Gf:100MBps:1:1", "0f:1Bps:1Bps", "1Gf:xBps:1Bps"} {
		_, err := ParsePlatform(spec, nil)
		assert.Error(t, err, spec)
	}
}
