package mappropanimlist

import "testing"

func TestParseStopsAtSentinel(t *testing.T) {
	buf := []byte{
		1,                // has animations (ignored)
		0x03,             // flags: deferred loading + add to render object
		1,                // is_bicycle_slope
		0,                // dummy
		1, 0, 0, 0,       // animation id 1
		2, 0, 0, 0,       // animation id 2
		0xFF, 0xFF, 0xFF, 0xFF, // sentinel
		9, 9, 9, 9, // would-be id 4, must be discarded
	}

	got, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !got.DeferredLoading || !got.DeferredAddToRenderObject {
		t.Errorf("flags = %+v, want both deferred bits set", got)
	}
	if !got.IsBicycleSlope {
		t.Errorf("IsBicycleSlope = false, want true")
	}
	if len(got.AnimationIDs) != 2 || got.AnimationIDs[0] != 1 || got.AnimationIDs[1] != 2 {
		t.Errorf("AnimationIDs = %v, want [1 2]", got.AnimationIDs)
	}
}

func TestParseNoSentinelUsesAllFour(t *testing.T) {
	buf := []byte{
		0, 0, 0, 0,
		1, 0, 0, 0,
		2, 0, 0, 0,
		3, 0, 0, 0,
		4, 0, 0, 0,
	}

	got, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.AnimationIDs) != 4 {
		t.Errorf("len(AnimationIDs) = %d, want 4", len(got.AnimationIDs))
	}
}
