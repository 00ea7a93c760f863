package arealight

import (
	"testing"

	"github.com/Kuruyia/pokeplat-tools/internal/nds"
)

func TestParseWorkedExample(t *testing.T) {
	input := "43200\n" +
		"1,31,31,31,8192,0,0\n" +
		"0,0,0,0,0,0,0\n" +
		"0,0,0,0,0,0,0\n" +
		"0,0,0,0,0,0,0\n" +
		"10,10,10\n" +
		"5,5,5\n" +
		"0,0,0\n" +
		"0,0,0\n" +
		"EOF"

	al, err := ParseString(input)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	al.Fix()

	if len(al.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(al.Blocks))
	}

	b := al.Blocks[0]
	if b.EndTime != 43200 {
		t.Errorf("EndTime = %d, want 43200", b.EndTime)
	}

	if b.Light0 == nil {
		t.Fatal("Light0 = nil, want present")
	}
	if b.Light0.Color != (nds.RGB{R: 31, G: 31, B: 31}) {
		t.Errorf("Light0.Color = %+v, want (31,31,31)", b.Light0.Color)
	}
	if b.Light0.Direction.X != nds.Fixed16One {
		t.Errorf("Light0.Direction.X = %v, want clamped to Fixed16One", b.Light0.Direction.X)
	}
	if b.Light0.Direction.Y != 0 || b.Light0.Direction.Z != 0 {
		t.Errorf("Light0.Direction = %+v, want (1.0, 0, 0)", b.Light0.Direction)
	}

	for i, l := range []*Properties{b.Light1, b.Light2, b.Light3} {
		if l != nil {
			t.Errorf("Light%d = %+v, want absent", i+1, l)
		}
	}

	if b.DiffuseReflectColor != (nds.RGB{R: 10, G: 10, B: 10}) {
		t.Errorf("DiffuseReflectColor = %+v, want (10,10,10)", b.DiffuseReflectColor)
	}
	if b.AmbientReflectColor != (nds.RGB{R: 5, G: 5, B: 5}) {
		t.Errorf("AmbientReflectColor = %+v, want (5,5,5)", b.AmbientReflectColor)
	}
	if b.SpecularReflectColor != (nds.RGB{}) {
		t.Errorf("SpecularReflectColor = %+v, want (0,0,0)", b.SpecularReflectColor)
	}
	if b.EmissionColor != (nds.RGB{}) {
		t.Errorf("EmissionColor = %+v, want (0,0,0)", b.EmissionColor)
	}
}

func TestParseEarlyEmptyLine(t *testing.T) {
	input := "43200\n\n"
	if _, err := ParseString(input); err == nil {
		t.Fatal("ParseString: expected error for empty line mid-block")
	}
}

func TestParseEmptyLineBetweenBlocksIsSkipped(t *testing.T) {
	input := "43200\n" +
		"0,0,0,0,0,0,0\n0,0,0,0,0,0,0\n0,0,0,0,0,0,0\n0,0,0,0,0,0,0\n" +
		"0,0,0\n0,0,0\n0,0,0\n0,0,0\n" +
		"\n" +
		"EOF"

	al, err := ParseString(input)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(al.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(al.Blocks))
	}
}
