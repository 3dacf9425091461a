package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldops/rollcall/pkg/match"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "bare ten digits", input: "4145551234", want: "4145551234", wantOK: true},
		{name: "formatted", input: "(414) 555-1234", want: "4145551234", wantOK: true},
		{name: "dots and dashes", input: "414.555-1234", want: "4145551234", wantOK: true},
		{name: "us country code", input: "14145551234", want: "4145551234", wantOK: true},
		{name: "plus one prefix", input: "+1 414 555 1234", want: "4145551234", wantOK: true},
		{name: "eleven digits not starting with one", input: "24145551234", want: "24145551234", wantOK: true},
		{name: "twelve digits starting with one", input: "141455512345", want: "141455512345", wantOK: true},
		{name: "short number kept as-is", input: "555-1234", want: "5551234", wantOK: true},
		{name: "single one", input: "1", want: "1", wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "no digits", input: "call me", wantOK: false},
		{name: "punctuation only", input: "---", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := match.NormalizePhone(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "lowercase passthrough", input: "ada@example.org", want: "ada@example.org", wantOK: true},
		{name: "mixed case", input: "Ada@Example.ORG", want: "ada@example.org", wantOK: true},
		{name: "surrounding whitespace", input: "  ada@example.org \n", want: "ada@example.org", wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "whitespace only", input: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := match.NormalizeEmail(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "ada", match.NormalizeName(" Ada "))
	assert.Equal(t, "de la cruz", match.NormalizeName("De La Cruz"))
	assert.Equal(t, "", match.NormalizeName(""))
	assert.Equal(t, "", match.NormalizeName("   "))
}
