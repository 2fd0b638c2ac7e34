package cpu

import (
	"fmt"

	"github.com/mhale/go6502core/bus"
)

// operandKind tags which variant an Operand holds.
type operandKind int

const (
	kindNone operandKind = iota
	kindAddress
	kindValue
	kindAccumulator
)

// Operand is the value an addressing mode hands to an instruction: exactly
// one of an effective address, an immediate literal, the implicit
// accumulator, or nothing. Grounded on original_source's Operand enum
// (Addr/Value/None), extended with an explicit Accumulator variant so
// shift/rotate instructions don't need a side channel to know whether to
// operate on A or on memory.
type Operand struct {
	kind operandKind
	addr uint16
	val  uint8
}

// AddressOperand builds an Operand carrying an effective address.
func AddressOperand(addr uint16) Operand {
	return Operand{kind: kindAddress, addr: addr}
}

// ValueOperand builds an Operand carrying an immediate literal.
func ValueOperand(v uint8) Operand {
	return Operand{kind: kindValue, val: v}
}

// AccumulatorOperand builds an Operand denoting the implicit accumulator
// target used by ASL/LSR/ROL/ROR with no addressing argument.
func AccumulatorOperand() Operand {
	return Operand{kind: kindAccumulator}
}

// NoneOperand builds an Operand carrying nothing, used by implied-mode
// instructions that take no argument at all.
func NoneOperand() Operand {
	return Operand{kind: kindNone}
}

// IsAddress reports whether the Operand is an Address, returning it.
func (o Operand) IsAddress() (uint16, bool) {
	return o.addr, o.kind == kindAddress
}

// IsAccumulator reports whether the Operand is the implicit accumulator.
func (o Operand) IsAccumulator() bool {
	return o.kind == kindAccumulator
}

// fetch resolves an Operand to the 8-bit value an instruction should operate
// on: a Value is returned directly, an Address is read through the bus. Any
// other variant (None, Accumulator) is a programming error against the
// opcode table — the caller is expected to have already special-cased
// Accumulator for shift/rotate instructions.
func (o Operand) fetch(b bus.Bus) (uint8, error) {
	switch o.kind {
	case kindValue:
		return o.val, nil
	case kindAddress:
		return b.Read(o.addr), nil
	default:
		return 0, IllegalOperand{Kind: o.String()}
	}
}

func (o Operand) String() string {
	switch o.kind {
	case kindAddress:
		return fmt.Sprintf("Address(%#04x)", o.addr)
	case kindValue:
		return fmt.Sprintf("Value(%#02x)", o.val)
	case kindAccumulator:
		return "Accumulator"
	default:
		return "None"
	}
}
