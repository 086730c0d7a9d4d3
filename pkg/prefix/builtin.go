package prefix

import "golang.org/x/text/language"

// builtin returns the compiled-in prefix catalogs. Order matters: when two
// languages spell a prefix the same way (RE in English, French and Spanish;
// SV in Swedish and Danish), the earlier language owns the alias for lookup.
// Later languages still emit the shared spelling as their canonical form.
func builtin() []Catalog {
	return []Catalog{
		{
			Language: language.English,
			Reply:    Form{Canonical: "RE"},
			Forward:  Form{Canonical: "FW", Aliases: []string{"FWD"}},
		},
		{
			Language: language.German,
			Reply:    Form{Canonical: "AW"},
			Forward:  Form{Canonical: "WG"},
		},
		{
			Language: language.French,
			Reply:    Form{Canonical: "RE"},
			Forward:  Form{Canonical: "TR"},
		},
		{
			Language: language.Spanish,
			Reply:    Form{Canonical: "RE"},
			Forward:  Form{Canonical: "RV"},
		},
		{
			Language: language.Italian,
			Reply:    Form{Canonical: "R"},
			Forward:  Form{Canonical: "I"},
		},
		{
			Language: language.Dutch,
			Reply:    Form{Canonical: "Antw"},
			Forward:  Form{Canonical: "Doorst"},
		},
		{
			Language: language.Portuguese,
			Reply:    Form{Canonical: "RES"},
			Forward:  Form{Canonical: "ENC"},
		},
		{
			Language: language.Polish,
			Reply:    Form{Canonical: "Odp"},
			Forward:  Form{Canonical: "PD"},
		},
		{
			Language: language.Swedish,
			Reply:    Form{Canonical: "SV"},
			Forward:  Form{Canonical: "VB"},
		},
		{
			Language: language.Danish,
			Reply:    Form{Canonical: "SV"},
			Forward:  Form{Canonical: "VS"},
		},
	}
}
