package capi

type titlecaseFuncs struct {
	lib *Library
}

func (f titlecaseFuncs) DefaultOptions() TitlecaseOptionsV1 {
	f.lib.calls.Add(1)
	return TitlecaseOptionsV1{
		HeadAdjustment: HeadAdjustmentAdjust,
		TailCasing:     TrailingCaseLower,
	}
}

// Destroy is a no-op: the struct owns nothing.
func (f titlecaseFuncs) Destroy(TitlecaseOptionsV1) {
	f.lib.calls.Add(1)
}
