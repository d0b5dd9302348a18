package provider

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCanonicalCalendar(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"gregory", Gregorian, true},
		{"Gregorian", Gregorian, true},
		{" islamicc ", IslamicCivil, true},
		{"ethiopic-amete-alem", EthiopianAmeteAlem, true},
		{"roc", ROC, true},
		{"martian", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalCalendar(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CanonicalCalendar(%q) = %q, %v", tt.in, got, ok)
		}
	}
}

func TestExplicitCalendar(t *testing.T) {
	tests := []struct {
		tag  string
		want string
		ok   bool
	}{
		{"en-US", "", false},
		{"ja-JP-u-ca-japanese", Japanese, true},
		{"ar-SA-u-ca-islamic-umalqura", IslamicUmmAlQura, true},
		{"ar-u-ca-islamic-civil-nu-arab", IslamicCivil, true},
		{"en-u-nu-latn", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := ExplicitCalendar(language.MustParse(tt.tag))
			if got != tt.want || ok != tt.ok {
				t.Errorf("ExplicitCalendar = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCalendarForLocale(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"en-US", Gregorian},
		{"th", Buddhist},
		{"th-TH", Buddhist},
		{"fa-IR", Persian},
		{"ps-AF", Persian},
		{"ar-SA", IslamicUmmAlQura},
		{"ar-EG", Gregorian},
		{"th-u-ca-gregory", Gregorian},
		{"en-u-ca-hebrew", Hebrew},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := CalendarForLocale(language.MustParse(tt.tag)); got != tt.want {
				t.Errorf("CalendarForLocale(%s) = %s, want %s", tt.tag, got, tt.want)
			}
		})
	}
}
