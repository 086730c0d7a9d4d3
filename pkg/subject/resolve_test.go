package subject

import (
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTargetLanguage(t *testing.T) {
	reg := testRegistry(t)

	knownOf := func(subject string) []Token {
		tokens, _ := Tokenize(reg, subject)
		var known []Token
		for _, tok := range tokens {
			if tok.Known() {
				known = append(known, tok)
			}
		}
		return known
	}

	tests := []struct {
		name         string
		subject      string
		ui           language.Tag
		keepOriginal bool
		want         language.Tag
	}{
		{
			name:    "ui language wins without keepOriginal",
			subject: "AW: WG: Test",
			ui:      language.Make("en-US"),
			want:    language.English,
		},
		{
			name:         "majority wins with keepOriginal",
			subject:      "FW: AW: WG: Test",
			ui:           language.Make("en-US"),
			keepOriginal: true,
			want:         language.German,
		},
		{
			name:         "tie goes to the left-most token",
			subject:      "RE: WG: Test",
			ui:           language.Make("de-DE"),
			keepOriginal: true,
			want:         language.English,
		},
		{
			name:         "regional ui tag maps onto catalog language",
			subject:      "RE: Test",
			ui:           language.Make("de-CH"),
			keepOriginal: false,
			want:         language.German,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTargetLanguage(reg, knownOf(tt.subject), tt.ui, tt.keepOriginal)
			if got != tt.want {
				t.Errorf("ResolveTargetLanguage = %v, want %v", got, tt.want)
			}
		})
	}
}
