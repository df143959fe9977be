package helper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tcs := []struct {
		amount   int64
		expected string
	}{
		{amount: 0, expected: "0.0000"},
		{amount: 1, expected: "0.0001"},
		{amount: 12345, expected: "1.2345"},
		{amount: 5000000, expected: "500.0000"},
		{amount: -5, expected: "-0.0005"},
	}

	for _, tc := range tcs {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, FormatAmount(tc.amount))
		})
	}
}

func TestFormatUnixTime(t *testing.T) {
	require.Equal(t, "-", FormatUnixTime(0))
	require.Equal(t, "2023-09-18 01:21:30", FormatUnixTime(1695000090))
}
