package provider

import (
	"strings"

	"golang.org/x/text/language"
)

// Calendar identifiers as used by the BCP 47 "ca" keyword.
const (
	ISO                  = "iso8601"
	Gregorian            = "gregory"
	Buddhist             = "buddhist"
	Japanese             = "japanese"
	JapaneseExtended     = "japanext"
	Ethiopian            = "ethiopic"
	EthiopianAmeteAlem   = "ethioaa"
	Indian               = "indian"
	Coptic               = "coptic"
	Dangi                = "dangi"
	Chinese              = "chinese"
	Hebrew               = "hebrew"
	IslamicCivil         = "islamic-civil"
	IslamicObservational = "islamic"
	IslamicTabular       = "islamic-tbla"
	IslamicUmmAlQura     = "islamic-umalqura"
	Persian              = "persian"
	ROC                  = "roc"
)

var calendarIDs = []string{
	ISO, Gregorian, Buddhist, Japanese, JapaneseExtended, Ethiopian,
	EthiopianAmeteAlem, Indian, Coptic, Dangi, Chinese, Hebrew,
	IslamicCivil, IslamicObservational, IslamicTabular, IslamicUmmAlQura,
	Persian, ROC,
}

// aliases maps deprecated or long-form names to canonical ids.
var aliases = map[string]string{
	"gregorian":           Gregorian,
	"ethiopic-amete-alem": EthiopianAmeteAlem,
	"islamicc":            IslamicCivil,
}

// CalendarIDs returns every known calendar id.
func CalendarIDs() []string {
	out := make([]string, len(calendarIDs))
	copy(out, calendarIDs)
	return out
}

// CanonicalCalendar normalizes id and reports whether it is known.
func CanonicalCalendar(id string) (string, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if a, ok := aliases[id]; ok {
		return a, true
	}
	for _, known := range calendarIDs {
		if known == id {
			return id, true
		}
	}
	return "", false
}

// ExplicitCalendar returns the calendar named by the -u-ca- keyword of tag.
// It reports false when the keyword is absent or names an unknown calendar.
func ExplicitCalendar(tag language.Tag) (string, bool) {
	ext, ok := tag.Extension('u')
	if !ok {
		return "", false
	}
	// Tag.TypeForKey stops at the first '-', which loses compound types
	// like islamic-umalqura, so the tokens are read directly.
	tokens := strings.Split(ext.String(), "-")
	for i := 1; i < len(tokens); i++ {
		if tokens[i] != "ca" {
			continue
		}
		var parts []string
		for _, tok := range tokens[i+1:] {
			if len(tok) == 2 {
				break
			}
			parts = append(parts, tok)
		}
		return CanonicalCalendar(strings.Join(parts, "-"))
	}
	return "", false
}

// CalendarForLocale returns the calendar a locale uses by default.
func CalendarForLocale(tag language.Tag) string {
	if id, ok := ExplicitCalendar(tag); ok {
		return id
	}

	base, _ := tag.Base()
	if base.String() == "th" {
		return Buddhist
	}

	region, conf := tag.Region()
	if conf == language.No {
		return Gregorian
	}
	switch region.String() {
	case "IR", "AF":
		return Persian
	case "SA":
		return IslamicUmmAlQura
	default:
		return Gregorian
	}
}
