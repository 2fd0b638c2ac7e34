// Package registers defines the programmer-visible state of a MOS 6502: the
// accumulator and index registers, program counter, stack pointer, status
// flags, and the pending-interrupt latches the CPU facade services between
// instructions.
package registers

import (
	"fmt"

	"github.com/mhale/go6502core/bus"
	"github.com/mhale/go6502core/irq"
)

// Flag bit positions within the packed status byte. Bit 0x20 has no backing
// field: it always reads as 1 on real hardware and Pack sets it
// unconditionally.
const (
	Negative = uint8(0x80)
	Overflow = uint8(0x40)
	alwaysOne = uint8(0x20)
	Break    = uint8(0x10)
	Decimal  = uint8(0x08)
	Interrupt = uint8(0x04)
	Zero     = uint8(0x02)
	Carry    = uint8(0x01)
)

// Flags is the status register P modeled as independent booleans. Pack/Unpack
// convert to and from the byte form PHP/PLP/BRK/RTI operate on.
type Flags struct {
	C bool // Carry
	Z bool // Zero
	I bool // IRQ disable
	D bool // Decimal mode
	B bool // Break (only meaningful in the packed byte)
	V bool // Overflow
	N bool // Negative
}

// Pack returns the byte representation of the flags, per the bit layout
// documented on the constants above. Bit 0x20 is always set.
func (f Flags) Pack() uint8 {
	var v uint8 = alwaysOne
	if f.N {
		v |= Negative
	}
	if f.V {
		v |= Overflow
	}
	if f.B {
		v |= Break
	}
	if f.D {
		v |= Decimal
	}
	if f.I {
		v |= Interrupt
	}
	if f.Z {
		v |= Zero
	}
	if f.C {
		v |= Carry
	}
	return v
}

// Unpack overwrites all seven flags from the packed byte. Bit 0x20 is
// ignored since there's no field backing it.
func (f *Flags) Unpack(v uint8) {
	f.N = v&Negative != 0
	f.V = v&Overflow != 0
	f.B = v&Break != 0
	f.D = v&Decimal != 0
	f.I = v&Interrupt != 0
	f.Z = v&Zero != 0
	f.C = v&Carry != 0
}

// SetZN sets the Zero and Negative flags from the given result byte, the
// common flag update every load/transfer/logical/arithmetic instruction
// performs.
func (f *Flags) SetZN(result uint8) {
	f.Z = result == 0
	f.N = result&Negative != 0
}

// Registers holds the complete programmer-visible CPU state plus the two
// host-settable interrupt latches. The CPU facade owns exactly one instance.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	PC uint16
	S  uint8
	P  Flags

	IRQ irq.Latch
	NMI irq.Latch
}

// Reset brings the registers to the documented power-on/reset state: S is
// 0xFF, flags are all clear, A/X/Y are 0, and PC is loaded from the reset
// vector. Pending interrupt latches are left untouched — a reset does not
// implicitly service or drop a signal that arrived beforehand in the real
// chip's latch model; callers that want a truly fresh start should clear
// them explicitly.
func (r *Registers) Reset(b bus.Bus) {
	r.A, r.X, r.Y = 0, 0, 0
	r.S = 0xFF
	r.P = Flags{}
	lo := uint16(b.Read(ResetVector))
	hi := uint16(b.Read(ResetVector + 1))
	r.PC = (hi << 8) | lo
}

// Stack addresses live in bus page 1; S is simply the low byte of that
// address. Push writes then decrements S (wrapping silently); Pop increments
// S (wrapping silently) then reads.
func (r *Registers) Push(b bus.Bus, v uint8) {
	b.Write(0x0100|uint16(r.S), v)
	r.S--
}

// Pop reads the top stack byte and adjusts S as described on Push.
func (r *Registers) Pop(b bus.Bus) uint8 {
	r.S++
	return b.Read(0x0100 | uint16(r.S))
}

// Vector addresses the CPU itself reads to load PC on reset/IRQ/NMI.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// String gives a compact one-line dump used by tests and cmd/stepper instead
// of spew.Sdump'ing the whole struct on every line of output.
func (r *Registers) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X S=%02X P=%02X PC=%04X", r.A, r.X, r.Y, r.S, r.P.Pack(), r.PC)
}
