package nds

import "testing"

func TestFixed32FloatConversion(t *testing.T) {
	cases := []struct {
		raw  int32
		want float64
	}{
		{0, 0},
		{4096, 1.0},
		{-4096, -1.0},
		{6144, 1.5},
		{1, 1.0 / 4096.0},
	}

	for _, c := range cases {
		got := Fixed32FromBits(c.raw).Float64()
		if got != c.want {
			t.Errorf("Fixed32FromBits(%d).Float64() = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestFixed16FloatConversion(t *testing.T) {
	if got := Fixed16FromBits(4096).Float64(); got != 1.0 {
		t.Errorf("Fixed16FromBits(4096).Float64() = %v, want 1.0", got)
	}
	if got := Fixed16FromBits(-4096).Float64(); got != -1.0 {
		t.Errorf("Fixed16FromBits(-4096).Float64() = %v, want -1.0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(8192, int(Fixed16NegOne), int(Fixed16One)); got != int(Fixed16One) {
		t.Errorf("Clamp(8192, ...) = %d, want %d", got, Fixed16One)
	}
	if got := Clamp(-8192, int(Fixed16NegOne), int(Fixed16One)); got != int(Fixed16NegOne) {
		t.Errorf("Clamp(-8192, ...) = %d, want %d", got, Fixed16NegOne)
	}
	if got := Clamp(0, int(Fixed16NegOne), int(Fixed16One)); got != 0 {
		t.Errorf("Clamp(0, ...) = %d, want 0", got)
	}
}
