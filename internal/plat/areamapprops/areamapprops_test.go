package areamapprops

import "testing"

func TestParse(t *testing.T) {
	buf := []byte{
		3, 0, // count = 3
		10, 0,
		20, 0,
		30, 0,
	}

	got, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []uint16{10, 20, 30}
	if len(got.MapPropsIDs) != len(want) {
		t.Fatalf("MapPropsIDs = %v, want %v", got.MapPropsIDs, want)
	}
	for i, id := range want {
		if got.MapPropsIDs[i] != id {
			t.Errorf("MapPropsIDs[%d] = %d, want %d", i, got.MapPropsIDs[i], id)
		}
	}
}

func TestParseTruncated(t *testing.T) {
	buf := []byte{2, 0, 1, 0}
	if _, err := Parse(buf); err == nil {
		t.Fatal("Parse: expected error for truncated id list")
	}
}
