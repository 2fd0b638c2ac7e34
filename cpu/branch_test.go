package cpu

import (
	"testing"

	"github.com/mhale/go6502core/registers"
)

func TestBranchTakenAndNotTaken(t *testing.T) {
	r := &registers.Registers{PC: 0x0610, P: registers.Flags{Z: true}}
	if err := iBEQ(r, nil, AddressOperand(0x0620)); err != nil {
		t.Fatalf("iBEQ: %v", err)
	}
	if r.PC != 0x0620 {
		t.Errorf("PC after taken branch = %#04x, want 0x0620", r.PC)
	}

	r2 := &registers.Registers{PC: 0x0610, P: registers.Flags{Z: false}}
	if err := iBEQ(r2, nil, AddressOperand(0x0620)); err != nil {
		t.Fatalf("iBEQ: %v", err)
	}
	if r2.PC != 0x0610 {
		t.Errorf("PC after not-taken branch = %#04x, want unchanged 0x0610", r2.PC)
	}
}

func TestJMPAbsolute(t *testing.T) {
	r := &registers.Registers{PC: 0x0600}
	if err := iJMP(r, nil, AddressOperand(0x1234)); err != nil {
		t.Fatalf("iJMP: %v", err)
	}
	if r.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234", r.PC)
	}
}
