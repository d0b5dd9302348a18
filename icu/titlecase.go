package icu

import "github.com/wippyai/icu4x-go/capi"

// TitlecaseOptions is a plain value; copies are independent.
type TitlecaseOptions struct {
	HeadAdjustment HeadAdjustment
	TrailingCase   TrailingCase
}

// DefaultTitlecaseOptions returns the boundary defaults. The boundary
// struct is released through its no-op destroy hook once copied.
func (e *Env) DefaultTitlecaseOptions() TitlecaseOptions {
	tc := e.b.TitlecaseOptionsV1()
	raw := tc.DefaultOptions()
	defer tc.Destroy(raw)
	return titlecaseFromBoundary(raw)
}

func titlecaseFromBoundary(raw capi.TitlecaseOptionsV1) TitlecaseOptions {
	return TitlecaseOptions{
		HeadAdjustment: mustLift(headAdjustmentMap, raw.HeadAdjustment),
		TrailingCase:   mustLift(trailingCaseMap, raw.TailCasing),
	}
}

// Boundary lowers o to its C layout.
func (o TitlecaseOptions) Boundary() (capi.TitlecaseOptionsV1, error) {
	head, err := headAdjustmentMap.ToBoundary(o.HeadAdjustment)
	if err != nil {
		return capi.TitlecaseOptionsV1{}, err
	}
	tail, err := trailingCaseMap.ToBoundary(o.TrailingCase)
	if err != nil {
		return capi.TitlecaseOptionsV1{}, err
	}
	return capi.TitlecaseOptionsV1{HeadAdjustment: head, TailCasing: tail}, nil
}
