package icu

import (
	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/capi"
)

// AnyCalendarKind names a calendar system. The zero value is not a kind.
type AnyCalendarKind int

const (
	Iso AnyCalendarKind = iota + 1
	Gregorian
	Buddhist
	Japanese
	JapaneseExtended
	Ethiopian
	EthiopianAmeteAlem
	Indian
	Coptic
	Dangi
	Chinese
	Hebrew
	IslamicCivil
	IslamicObservational
	IslamicTabular
	IslamicUmmAlQura
	Persian
	Roc
)

var kindNames = [...]string{
	Iso:                  "Iso",
	Gregorian:            "Gregorian",
	Buddhist:             "Buddhist",
	Japanese:             "Japanese",
	JapaneseExtended:     "JapaneseExtended",
	Ethiopian:            "Ethiopian",
	EthiopianAmeteAlem:   "EthiopianAmeteAlem",
	Indian:               "Indian",
	Coptic:               "Coptic",
	Dangi:                "Dangi",
	Chinese:              "Chinese",
	Hebrew:               "Hebrew",
	IslamicCivil:         "IslamicCivil",
	IslamicObservational: "IslamicObservational",
	IslamicTabular:       "IslamicTabular",
	IslamicUmmAlQura:     "IslamicUmmAlQura",
	Persian:              "Persian",
	Roc:                  "Roc",
}

func (k AnyCalendarKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "AnyCalendarKind(?)"
}

// AllCalendarKinds returns every kind in declaration order.
func AllCalendarKinds() []AnyCalendarKind {
	out := make([]AnyCalendarKind, 0, len(kindNames)-1)
	for k := Iso; k <= Roc; k++ {
		out = append(out, k)
	}
	return out
}

// ParseCalendarKind accepts a kind name as printed by String, case
// sensitive.
func ParseCalendarKind(name string) (AnyCalendarKind, bool) {
	for k := Iso; k <= Roc; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// HeadAdjustment selects which character of a segment is title-cased.
type HeadAdjustment int

const (
	HeadAdjust HeadAdjustment = iota + 1
	HeadNoAdjust
)

func (h HeadAdjustment) String() string {
	switch h {
	case HeadAdjust:
		return "Adjust"
	case HeadNoAdjust:
		return "NoAdjust"
	default:
		return "HeadAdjustment(?)"
	}
}

// TrailingCase selects the casing applied after the head character.
type TrailingCase int

const (
	TrailingLower TrailingCase = iota + 1
	TrailingUnchanged
)

func (c TrailingCase) String() string {
	switch c {
	case TrailingLower:
		return "Lower"
	case TrailingUnchanged:
		return "Unchanged"
	default:
		return "TrailingCase(?)"
	}
}

// Mappings between wrapper enums and boundary enums. Each is total over
// both closed sets.
var (
	kindMap = abi.NewMap("AnyCalendarKind", map[AnyCalendarKind]capi.AnyCalendarKind{
		Iso:                  capi.AnyCalendarKindIso,
		Gregorian:            capi.AnyCalendarKindGregorian,
		Buddhist:             capi.AnyCalendarKindBuddhist,
		Japanese:             capi.AnyCalendarKindJapanese,
		JapaneseExtended:     capi.AnyCalendarKindJapaneseExtended,
		Ethiopian:            capi.AnyCalendarKindEthiopian,
		EthiopianAmeteAlem:   capi.AnyCalendarKindEthiopianAmeteAlem,
		Indian:               capi.AnyCalendarKindIndian,
		Coptic:               capi.AnyCalendarKindCoptic,
		Dangi:                capi.AnyCalendarKindDangi,
		Chinese:              capi.AnyCalendarKindChinese,
		Hebrew:               capi.AnyCalendarKindHebrew,
		IslamicCivil:         capi.AnyCalendarKindIslamicCivil,
		IslamicObservational: capi.AnyCalendarKindIslamicObservational,
		IslamicTabular:       capi.AnyCalendarKindIslamicTabular,
		IslamicUmmAlQura:     capi.AnyCalendarKindIslamicUmmAlQura,
		Persian:              capi.AnyCalendarKindPersian,
		Roc:                  capi.AnyCalendarKindRoc,
	})

	dataErrorMap = abi.NewMap("DataError", map[DataError]capi.DataError{
		ErrDataUnknown:        capi.DataErrorUnknown,
		ErrMarkerNotFound:     capi.DataErrorMarkerNotFound,
		ErrIdentifierNotFound: capi.DataErrorIdentifierNotFound,
		ErrInvalidRequest:     capi.DataErrorInvalidRequest,
		ErrInconsistentData:   capi.DataErrorInconsistentData,
		ErrDowncast:           capi.DataErrorDowncast,
		ErrDeserialize:        capi.DataErrorDeserialize,
		ErrCustom:             capi.DataErrorCustom,
		ErrIo:                 capi.DataErrorIo,
	})

	localeParseErrorMap = abi.NewMap("LocaleParseError", map[LocaleParseError]capi.LocaleParseError{
		ErrLocaleUnknown:    capi.LocaleParseErrorUnknown,
		ErrLocaleLanguage:   capi.LocaleParseErrorLanguage,
		ErrLocaleSubtag:     capi.LocaleParseErrorSubtag,
		ErrLocaleExtension:  capi.LocaleParseErrorExtension,
		ErrLocaleDuplicated: capi.LocaleParseErrorDuplicated,
	})

	headAdjustmentMap = abi.NewMap("HeadAdjustment", map[HeadAdjustment]capi.HeadAdjustment{
		HeadAdjust:   capi.HeadAdjustmentAdjust,
		HeadNoAdjust: capi.HeadAdjustmentNoAdjust,
	})

	trailingCaseMap = abi.NewMap("TrailingCase", map[TrailingCase]capi.TrailingCase{
		TrailingLower:     capi.TrailingCaseLower,
		TrailingUnchanged: capi.TrailingCaseUnchanged,
	})
)
