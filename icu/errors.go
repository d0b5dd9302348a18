package icu

import "github.com/wippyai/icu4x-go/abi"

// DataError is returned when locale data needed by an operation is
// missing or unusable. Compare with ==, or errors.Is.
type DataError int

const (
	ErrDataUnknown DataError = iota + 1
	ErrMarkerNotFound
	ErrIdentifierNotFound
	ErrInvalidRequest
	ErrInconsistentData
	ErrDowncast
	ErrDeserialize
	ErrCustom
	ErrIo
)

var dataErrorNames = map[DataError]string{
	ErrDataUnknown:        "Unknown",
	ErrMarkerNotFound:     "MarkerNotFound",
	ErrIdentifierNotFound: "IdentifierNotFound",
	ErrInvalidRequest:     "InvalidRequest",
	ErrInconsistentData:   "InconsistentData",
	ErrDowncast:           "Downcast",
	ErrDeserialize:        "Deserialize",
	ErrCustom:             "Custom",
	ErrIo:                 "Io",
}

func (e DataError) Error() string {
	return "DataError: " + e.String()
}

func (e DataError) String() string {
	if n, ok := dataErrorNames[e]; ok {
		return n
	}
	return "DataError(?)"
}

// LocaleParseError is returned when a locale identifier does not parse.
type LocaleParseError int

const (
	ErrLocaleUnknown LocaleParseError = iota + 1
	ErrLocaleLanguage
	ErrLocaleSubtag
	ErrLocaleExtension
	ErrLocaleDuplicated
)

var localeParseErrorNames = map[LocaleParseError]string{
	ErrLocaleUnknown:    "Unknown",
	ErrLocaleLanguage:   "Language",
	ErrLocaleSubtag:     "Subtag",
	ErrLocaleExtension:  "Extension",
	ErrLocaleDuplicated: "Duplicated",
}

func (e LocaleParseError) Error() string {
	return "LocaleParseError: " + e.String()
}

func (e LocaleParseError) String() string {
	if n, ok := localeParseErrorNames[e]; ok {
		return n
	}
	return "LocaleParseError(?)"
}

// mustLift maps a boundary value through m. A value outside the mapping
// means the boundary and this package disagree on the enum; that is a
// protocol fault, not a user error.
func mustLift[W, B comparable](m *abi.Map[W, B], b B) W {
	w, err := m.ToWrapper(b)
	if err != nil {
		panic(err)
	}
	return w
}

func mustLower[W, B comparable](m *abi.Map[W, B], w W) B {
	b, err := m.ToBoundary(w)
	if err != nil {
		panic(err)
	}
	return b
}
