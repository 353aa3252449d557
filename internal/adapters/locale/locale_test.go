package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "german", want: "de"},
		{in: "Polish", want: "pl"},
		{in: "de", want: "de"},
		{in: "pl-PL", want: "pl"},
		{in: "de_DE", want: "de"},
		{in: "en_XX", want: "en"},
		{in: "fr_FR", want: "fr"},
		{in: "", want: ""},
		{in: "klingonese", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Code(tc.in))
		})
	}
}
