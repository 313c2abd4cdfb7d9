package resolve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/json/internal/jsonh"
)

func TestNumber(t *testing.T) {
	for _, tt := range []struct {
		text    string
		isFloat bool
		kind    jsonh.NumberKind
		str     string
	}{
		{"0", false, jsonh.INT32, "0"},
		{"-0", false, jsonh.INT32, "0"},
		{"30", false, jsonh.INT32, "30"},
		{"2147483647", false, jsonh.INT32, "2147483647"},
		{"-2147483648", false, jsonh.INT32, "-2147483648"},
		{"2147483648", false, jsonh.INT64, "2147483648"},
		{"-2147483649", false, jsonh.INT64, "-2147483649"},
		{"9223372036854775807", false, jsonh.INT64, "9223372036854775807"},
		{"-9223372036854775808", false, jsonh.INT64, "-9223372036854775808"},
		{"9223372036854775808", false, jsonh.BIG_INTEGER, "9223372036854775808"},
		{"123456789012345678901234567890", false, jsonh.BIG_INTEGER, "123456789012345678901234567890"},
		{"1.0", true, jsonh.DOUBLE, "1"},
		{"1e2", true, jsonh.DOUBLE, "100"},
		{"-1.5e-2", true, jsonh.DOUBLE, "-0.015"},
	} {
		t.Run(tt.text, func(t *testing.T) {
			n, err := Number([]byte(tt.text), tt.isFloat)
			require.NoError(t, err)
			require.Equal(t, tt.kind, n.Kind)
			require.Equal(t, tt.str, n.String())
		})
	}
}

func TestNumberOverflowingFloat(t *testing.T) {
	// Magnitudes beyond IEEE-754 range lose precision rather than fail.
	n, err := Number([]byte("1e999"), true)
	require.NoError(t, err)
	require.Equal(t, jsonh.DOUBLE, n.Kind)
	require.True(t, math.IsInf(n.Float64(), 1))

	n, err = Number([]byte("-1e999"), true)
	require.NoError(t, err)
	require.True(t, math.IsInf(n.Float64(), -1))

	n, err = Number([]byte("1e-999"), true)
	require.NoError(t, err)
	require.Equal(t, 0.0, n.Float64())
}

func TestNumberAccessors(t *testing.T) {
	n, err := Number([]byte("30"), false)
	require.NoError(t, err)
	require.Equal(t, int32(30), n.Int32())
	require.Equal(t, int64(30), n.Int64())

	n, err = Number([]byte("9223372036854775808"), false)
	require.NoError(t, err)
	require.Equal(t, "9223372036854775808", n.BigInt().String())
}
