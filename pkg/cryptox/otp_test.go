package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	for range 50 {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, OTPLength)

		for _, c := range code {
			require.Contains(t, "0123456789ABCDEF", string(c),
				"codes are uppercase hex")
		}
	}
}

func TestNormalizeOTP(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "3FA91C", "3FA91C"},
		{"lowercase", "3fa91c", "3FA91C"},
		{"mixed case", "3Fa91c", "3FA91C"},
		{"surrounding whitespace", "  3FA91C\n", "3FA91C"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeOTP(tt.in))
		})
	}
}
