package extract

import "strings"

// Locale captures the two parsing assumptions a locale hint can change:
// day-first date order and decimal-comma number notation.
type Locale struct {
	Tag          string
	DayFirst     bool
	DecimalComma bool
}

// dayFirstRegions use DD/MM/YYYY ordering with a decimal point.
var dayFirstRegions = map[string]bool{
	"en-gb": true, "en-au": true, "en-nz": true, "en-ie": true, "en-in": true, "en-za": true,
}

// decimalCommaLangs use DD/MM/YYYY ordering and "1.234,56" number notation.
var decimalCommaLangs = map[string]bool{
	"de": true, "fr": true, "es": true, "it": true, "nl": true, "pt": true,
	"da": true, "sv": true, "nb": true, "no": true, "fi": true, "pl": true, "tr": true,
}

// ParseLocale maps a BCP-47-ish hint onto parsing assumptions. Unknown or
// empty hints fall back to en-US (month-first, decimal point).
func ParseLocale(hint string) Locale {
	tag := strings.ToLower(strings.TrimSpace(hint))
	if tag == "" {
		return Locale{Tag: "en-us"}
	}
	loc := Locale{Tag: tag}
	if dayFirstRegions[tag] {
		loc.DayFirst = true
		return loc
	}
	lang, _, _ := strings.Cut(tag, "-")
	if decimalCommaLangs[lang] {
		loc.DayFirst = true
		loc.DecimalComma = true
	}
	return loc
}
