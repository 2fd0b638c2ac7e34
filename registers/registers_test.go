package registers

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/mhale/go6502core/memory"
)

func TestFlagsPackUnpackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		f    Flags
	}{
		{"all clear", Flags{}},
		{"all set", Flags{C: true, Z: true, I: true, D: true, B: true, V: true, N: true}},
		{"carry and negative only", Flags{C: true, N: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			packed := tc.f.Pack()
			if packed&alwaysOne == 0 {
				t.Errorf("Pack() = %#02x, bit 0x20 must always be set", packed)
			}
			var got Flags
			got.Unpack(packed)
			if diff := deep.Equal(got, tc.f); diff != nil {
				t.Errorf("Unpack(Pack(f)) diff: %v", diff)
			}
		})
	}
}

func TestSetZN(t *testing.T) {
	tests := []struct {
		result   uint8
		wantZero bool
		wantNeg  bool
	}{
		{0x00, true, false},
		{0x01, false, false},
		{0x80, false, true},
		{0xFF, false, true},
	}
	for _, tc := range tests {
		var f Flags
		f.SetZN(tc.result)
		if f.Z != tc.wantZero || f.N != tc.wantNeg {
			t.Errorf("SetZN(%#02x): Z=%v N=%v, want Z=%v N=%v", tc.result, f.Z, f.N, tc.wantZero, tc.wantNeg)
		}
	}
}

func TestResetLoadsVectorAndClearsState(t *testing.T) {
	ram, err := memory.New(65536)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	ram.Write(ResetVector, 0x00)
	ram.Write(ResetVector+1, 0xC0)

	r := &Registers{A: 0x11, X: 0x22, Y: 0x33, S: 0x00, P: Flags{N: true, C: true}}
	r.Reset(ram)

	if r.A != 0 || r.X != 0 || r.Y != 0 {
		t.Errorf("Reset left A/X/Y = %#02x/%#02x/%#02x, want all zero", r.A, r.X, r.Y)
	}
	if r.S != 0xFF {
		t.Errorf("Reset: S = %#02x, want 0xFF", r.S)
	}
	if r.P != (Flags{}) {
		t.Errorf("Reset: P = %+v, want all clear", r.P)
	}
	if r.PC != 0xC000 {
		t.Errorf("Reset: PC = %#04x, want 0xC000", r.PC)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	ram, err := memory.New(65536)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	r := &Registers{S: 0xFF}
	r.Push(ram, 0x11)
	r.Push(ram, 0x22)
	r.Push(ram, 0x33)

	if got := r.Pop(ram); got != 0x33 {
		t.Errorf("Pop() = %#02x, want 0x33", got)
	}
	if got := r.Pop(ram); got != 0x22 {
		t.Errorf("Pop() = %#02x, want 0x22", got)
	}
	if got := r.Pop(ram); got != 0x11 {
		t.Errorf("Pop() = %#02x, want 0x11", got)
	}
	if r.S != 0xFF {
		t.Errorf("S after balanced push/pop = %#02x, want 0xFF", r.S)
	}
}

func TestStackPointerWrapsWithinPageOne(t *testing.T) {
	ram, err := memory.New(65536)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	r := &Registers{S: 0x00}
	r.Push(ram, 0x99)
	if r.S != 0xFF {
		t.Errorf("S after pushing with S=0x00 = %#02x, want wraparound to 0xFF", r.S)
	}
	if got := ram.Read(0x0100); got != 0x99 {
		t.Errorf("pushed byte at 0x0100 = %#02x, want 0x99", got)
	}
}
