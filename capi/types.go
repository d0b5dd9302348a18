package capi

import (
	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/provider"
)

// AnyCalendarKind selects a calendar system. Values match the C header.
type AnyCalendarKind uint32

const (
	AnyCalendarKindIso                  AnyCalendarKind = 0
	AnyCalendarKindGregorian            AnyCalendarKind = 1
	AnyCalendarKindBuddhist             AnyCalendarKind = 2
	AnyCalendarKindJapanese             AnyCalendarKind = 3
	AnyCalendarKindJapaneseExtended     AnyCalendarKind = 4
	AnyCalendarKindEthiopian            AnyCalendarKind = 5
	AnyCalendarKindEthiopianAmeteAlem   AnyCalendarKind = 6
	AnyCalendarKindIndian               AnyCalendarKind = 7
	AnyCalendarKindCoptic               AnyCalendarKind = 8
	AnyCalendarKindDangi                AnyCalendarKind = 9
	AnyCalendarKindChinese              AnyCalendarKind = 10
	AnyCalendarKindHebrew               AnyCalendarKind = 11
	AnyCalendarKindIslamicCivil         AnyCalendarKind = 12
	AnyCalendarKindIslamicObservational AnyCalendarKind = 13
	AnyCalendarKindIslamicTabular       AnyCalendarKind = 14
	AnyCalendarKindIslamicUmmAlQura     AnyCalendarKind = 15
	AnyCalendarKindPersian              AnyCalendarKind = 16
	AnyCalendarKindRoc                  AnyCalendarKind = 17
)

// DataError is the error code of fallible data loading operations.
type DataError uint32

const (
	DataErrorUnknown            DataError = 0
	DataErrorMarkerNotFound     DataError = 1
	DataErrorIdentifierNotFound DataError = 2
	DataErrorInvalidRequest     DataError = 3
	DataErrorInconsistentData   DataError = 4
	DataErrorDowncast           DataError = 5
	DataErrorDeserialize        DataError = 6
	DataErrorCustom             DataError = 7
	DataErrorIo                 DataError = 8
)

// LocaleParseError is the error code of Locale.create_from_string.
type LocaleParseError uint32

const (
	LocaleParseErrorUnknown    LocaleParseError = 0
	LocaleParseErrorLanguage   LocaleParseError = 1
	LocaleParseErrorSubtag     LocaleParseError = 2
	LocaleParseErrorExtension  LocaleParseError = 3
	LocaleParseErrorDuplicated LocaleParseError = 4
)

// HeadAdjustment controls which character of a segment is title-cased.
type HeadAdjustment uint32

const (
	HeadAdjustmentAdjust   HeadAdjustment = 0
	HeadAdjustmentNoAdjust HeadAdjustment = 1
)

// TrailingCase controls casing of the characters after the head.
type TrailingCase uint32

const (
	TrailingCaseLower     TrailingCase = 0
	TrailingCaseUnchanged TrailingCase = 1
)

// TitlecaseOptionsV1 is a plain value struct:
//
//	typedef struct ICU4XTitlecaseOptionsV1 {
//	    ICU4XHeadAdjustment head_adjustment;
//	    ICU4XTrailingCase tail_casing;
//	} ICU4XTitlecaseOptionsV1;
type TitlecaseOptionsV1 struct {
	HeadAdjustment HeadAdjustment
	TailCasing     TrailingCase
}

// Enum codecs. Every discriminant crossing the boundary goes through one
// of these; unknown values are protocol faults.
var (
	AnyCalendarKinds = abi.NewEnum("any-calendar-kind",
		abi.EnumCase[AnyCalendarKind]{Name: "iso", Value: AnyCalendarKindIso},
		abi.EnumCase[AnyCalendarKind]{Name: "gregorian", Value: AnyCalendarKindGregorian},
		abi.EnumCase[AnyCalendarKind]{Name: "buddhist", Value: AnyCalendarKindBuddhist},
		abi.EnumCase[AnyCalendarKind]{Name: "japanese", Value: AnyCalendarKindJapanese},
		abi.EnumCase[AnyCalendarKind]{Name: "japanese-extended", Value: AnyCalendarKindJapaneseExtended},
		abi.EnumCase[AnyCalendarKind]{Name: "ethiopian", Value: AnyCalendarKindEthiopian},
		abi.EnumCase[AnyCalendarKind]{Name: "ethiopian-amete-alem", Value: AnyCalendarKindEthiopianAmeteAlem},
		abi.EnumCase[AnyCalendarKind]{Name: "indian", Value: AnyCalendarKindIndian},
		abi.EnumCase[AnyCalendarKind]{Name: "coptic", Value: AnyCalendarKindCoptic},
		abi.EnumCase[AnyCalendarKind]{Name: "dangi", Value: AnyCalendarKindDangi},
		abi.EnumCase[AnyCalendarKind]{Name: "chinese", Value: AnyCalendarKindChinese},
		abi.EnumCase[AnyCalendarKind]{Name: "hebrew", Value: AnyCalendarKindHebrew},
		abi.EnumCase[AnyCalendarKind]{Name: "islamic-civil", Value: AnyCalendarKindIslamicCivil},
		abi.EnumCase[AnyCalendarKind]{Name: "islamic-observational", Value: AnyCalendarKindIslamicObservational},
		abi.EnumCase[AnyCalendarKind]{Name: "islamic-tabular", Value: AnyCalendarKindIslamicTabular},
		abi.EnumCase[AnyCalendarKind]{Name: "islamic-umm-al-qura", Value: AnyCalendarKindIslamicUmmAlQura},
		abi.EnumCase[AnyCalendarKind]{Name: "persian", Value: AnyCalendarKindPersian},
		abi.EnumCase[AnyCalendarKind]{Name: "roc", Value: AnyCalendarKindRoc},
	)

	DataErrors = abi.NewEnum("data-error",
		abi.EnumCase[DataError]{Name: "unknown", Value: DataErrorUnknown},
		abi.EnumCase[DataError]{Name: "marker-not-found", Value: DataErrorMarkerNotFound},
		abi.EnumCase[DataError]{Name: "identifier-not-found", Value: DataErrorIdentifierNotFound},
		abi.EnumCase[DataError]{Name: "invalid-request", Value: DataErrorInvalidRequest},
		abi.EnumCase[DataError]{Name: "inconsistent-data", Value: DataErrorInconsistentData},
		abi.EnumCase[DataError]{Name: "downcast", Value: DataErrorDowncast},
		abi.EnumCase[DataError]{Name: "deserialize", Value: DataErrorDeserialize},
		abi.EnumCase[DataError]{Name: "custom", Value: DataErrorCustom},
		abi.EnumCase[DataError]{Name: "io", Value: DataErrorIo},
	)

	LocaleParseErrors = abi.NewEnum("locale-parse-error",
		abi.EnumCase[LocaleParseError]{Name: "unknown", Value: LocaleParseErrorUnknown},
		abi.EnumCase[LocaleParseError]{Name: "language", Value: LocaleParseErrorLanguage},
		abi.EnumCase[LocaleParseError]{Name: "subtag", Value: LocaleParseErrorSubtag},
		abi.EnumCase[LocaleParseError]{Name: "extension", Value: LocaleParseErrorExtension},
		abi.EnumCase[LocaleParseError]{Name: "duplicated", Value: LocaleParseErrorDuplicated},
	)

	HeadAdjustments = abi.NewEnum("head-adjustment",
		abi.EnumCase[HeadAdjustment]{Name: "adjust", Value: HeadAdjustmentAdjust},
		abi.EnumCase[HeadAdjustment]{Name: "no-adjust", Value: HeadAdjustmentNoAdjust},
	)

	TrailingCases = abi.NewEnum("trailing-case",
		abi.EnumCase[TrailingCase]{Name: "lower", Value: TrailingCaseLower},
		abi.EnumCase[TrailingCase]{Name: "unchanged", Value: TrailingCaseUnchanged},
	)
)

// calendarIDs ties each kind to the BCP 47 calendar identifier the data
// provider understands.
var calendarIDs = abi.NewMap("any-calendar-kind", map[AnyCalendarKind]string{
	AnyCalendarKindIso:                  provider.ISO,
	AnyCalendarKindGregorian:            provider.Gregorian,
	AnyCalendarKindBuddhist:             provider.Buddhist,
	AnyCalendarKindJapanese:             provider.Japanese,
	AnyCalendarKindJapaneseExtended:     provider.JapaneseExtended,
	AnyCalendarKindEthiopian:            provider.Ethiopian,
	AnyCalendarKindEthiopianAmeteAlem:   provider.EthiopianAmeteAlem,
	AnyCalendarKindIndian:               provider.Indian,
	AnyCalendarKindCoptic:               provider.Coptic,
	AnyCalendarKindDangi:                provider.Dangi,
	AnyCalendarKindChinese:              provider.Chinese,
	AnyCalendarKindHebrew:               provider.Hebrew,
	AnyCalendarKindIslamicCivil:         provider.IslamicCivil,
	AnyCalendarKindIslamicObservational: provider.IslamicObservational,
	AnyCalendarKindIslamicTabular:       provider.IslamicTabular,
	AnyCalendarKindIslamicUmmAlQura:     provider.IslamicUmmAlQura,
	AnyCalendarKindPersian:              provider.Persian,
	AnyCalendarKindRoc:                  provider.ROC,
})

// CalendarID returns the BCP 47 identifier of kind.
func CalendarID(kind AnyCalendarKind) (string, error) {
	return calendarIDs.ToBoundary(kind)
}

// KindForCalendarID returns the kind identified by a BCP 47 calendar id.
func KindForCalendarID(id string) (AnyCalendarKind, bool) {
	canon, ok := provider.CanonicalCalendar(id)
	if !ok {
		return 0, false
	}
	kind, err := calendarIDs.ToWrapper(canon)
	return kind, err == nil
}
