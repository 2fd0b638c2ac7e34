package cpu

import (
	"github.com/mhale/go6502core/bus"
	"github.com/mhale/go6502core/registers"
)

// instrFunc executes one mnemonic against the Registers it's given plus the
// Operand its addressing mode decoded. Errors are only ever IllegalOperand —
// a programming error against the opcode table, not guest-reachable.
type instrFunc func(r *registers.Registers, b bus.Bus, op Operand) error

// --- Load/Store --------------------------------------------------------

func load(r *registers.Registers, b bus.Bus, op Operand, dst *uint8, mnemonic string) error {
	v, err := op.fetch(b)
	if err != nil {
		return IllegalOperand{Mnemonic: mnemonic, Kind: op.String()}
	}
	*dst = v
	r.P.SetZN(*dst)
	return nil
}

func store(r *registers.Registers, b bus.Bus, op Operand, v uint8, mnemonic string) error {
	addr, ok := op.IsAddress()
	if !ok {
		return IllegalOperand{Mnemonic: mnemonic, Kind: op.String()}
	}
	b.Write(addr, v)
	return nil
}

func iLDA(r *registers.Registers, b bus.Bus, op Operand) error { return load(r, b, op, &r.A, "LDA") }
func iLDX(r *registers.Registers, b bus.Bus, op Operand) error { return load(r, b, op, &r.X, "LDX") }
func iLDY(r *registers.Registers, b bus.Bus, op Operand) error { return load(r, b, op, &r.Y, "LDY") }

func iSTA(r *registers.Registers, b bus.Bus, op Operand) error { return store(r, b, op, r.A, "STA") }
func iSTX(r *registers.Registers, b bus.Bus, op Operand) error { return store(r, b, op, r.X, "STX") }
func iSTY(r *registers.Registers, b bus.Bus, op Operand) error { return store(r, b, op, r.Y, "STY") }

// --- Register transfer --------------------------------------------------

func iTAX(r *registers.Registers, b bus.Bus, op Operand) error { r.X = r.A; r.P.SetZN(r.X); return nil }
func iTAY(r *registers.Registers, b bus.Bus, op Operand) error { r.Y = r.A; r.P.SetZN(r.Y); return nil }
func iTXA(r *registers.Registers, b bus.Bus, op Operand) error { r.A = r.X; r.P.SetZN(r.A); return nil }
func iTYA(r *registers.Registers, b bus.Bus, op Operand) error { r.A = r.Y; r.P.SetZN(r.A); return nil }
func iTSX(r *registers.Registers, b bus.Bus, op Operand) error { r.X = r.S; r.P.SetZN(r.X); return nil }

// TXS is the one transfer that does not touch flags.
func iTXS(r *registers.Registers, b bus.Bus, op Operand) error { r.S = r.X; return nil }

// --- Stack ---------------------------------------------------------------

func iPHA(r *registers.Registers, b bus.Bus, op Operand) error { r.Push(b, r.A); return nil }
func iPHP(r *registers.Registers, b bus.Bus, op Operand) error {
	// PHP always pushes with B and the always-one bit set, regardless of
	// their live state, per spec.
	push := r.P
	push.B = true
	r.Push(b, push.Pack())
	return nil
}

func iPLA(r *registers.Registers, b bus.Bus, op Operand) error {
	r.A = r.Pop(b)
	r.P.SetZN(r.A)
	return nil
}

func iPLP(r *registers.Registers, b bus.Bus, op Operand) error {
	r.P.Unpack(r.Pop(b))
	return nil
}

// --- Logical ---------------------------------------------------------------

func iAND(r *registers.Registers, b bus.Bus, op Operand) error {
	v, err := op.fetch(b)
	if err != nil {
		return IllegalOperand{Mnemonic: "AND", Kind: op.String()}
	}
	r.A &= v
	r.P.SetZN(r.A)
	return nil
}

func iORA(r *registers.Registers, b bus.Bus, op Operand) error {
	v, err := op.fetch(b)
	if err != nil {
		return IllegalOperand{Mnemonic: "ORA", Kind: op.String()}
	}
	r.A |= v
	r.P.SetZN(r.A)
	return nil
}

func iEOR(r *registers.Registers, b bus.Bus, op Operand) error {
	v, err := op.fetch(b)
	if err != nil {
		return IllegalOperand{Mnemonic: "EOR", Kind: op.String()}
	}
	r.A ^= v
	r.P.SetZN(r.A)
	return nil
}

// --- Compare -----------------------------------------------------------

func compare(r *registers.Registers, b bus.Bus, op Operand, reg uint8, mnemonic string) error {
	v, err := op.fetch(b)
	if err != nil {
		return IllegalOperand{Mnemonic: mnemonic, Kind: op.String()}
	}
	d := reg - v
	r.P.C = reg >= v
	r.P.Z = reg == v
	r.P.N = d&registers.Negative != 0
	return nil
}

func iCMP(r *registers.Registers, b bus.Bus, op Operand) error { return compare(r, b, op, r.A, "CMP") }
func iCPX(r *registers.Registers, b bus.Bus, op Operand) error { return compare(r, b, op, r.X, "CPX") }
func iCPY(r *registers.Registers, b bus.Bus, op Operand) error { return compare(r, b, op, r.Y, "CPY") }

// --- Bit test ------------------------------------------------------------

func iBIT(r *registers.Registers, b bus.Bus, op Operand) error {
	v, err := op.fetch(b)
	if err != nil {
		return IllegalOperand{Mnemonic: "BIT", Kind: op.String()}
	}
	r.P.Z = (r.A & v) == 0
	r.P.N = v&registers.Negative != 0
	r.P.V = v&registers.Overflow != 0
	return nil
}

// --- Increment/Decrement -------------------------------------------------

func incDecMem(r *registers.Registers, b bus.Bus, op Operand, delta uint8, mnemonic string) error {
	addr, ok := op.IsAddress()
	if !ok {
		return IllegalOperand{Mnemonic: mnemonic, Kind: op.String()}
	}
	v := b.Read(addr) + delta
	b.Write(addr, v)
	r.P.SetZN(v)
	return nil
}

func iINC(r *registers.Registers, b bus.Bus, op Operand) error { return incDecMem(r, b, op, 1, "INC") }
func iDEC(r *registers.Registers, b bus.Bus, op Operand) error {
	return incDecMem(r, b, op, 0xFF, "DEC")
}

func iINX(r *registers.Registers, b bus.Bus, op Operand) error { r.X++; r.P.SetZN(r.X); return nil }
func iINY(r *registers.Registers, b bus.Bus, op Operand) error { r.Y++; r.P.SetZN(r.Y); return nil }
func iDEX(r *registers.Registers, b bus.Bus, op Operand) error { r.X--; r.P.SetZN(r.X); return nil }
func iDEY(r *registers.Registers, b bus.Bus, op Operand) error { r.Y--; r.P.SetZN(r.Y); return nil }

// --- Shift/Rotate ----------------------------------------------------------

// shiftOp reads the value to operate on (A or memory), applies fn, writes it
// back, and sets Z/N from the result. fn also sets C.
func shiftOp(r *registers.Registers, b bus.Bus, op Operand, mnemonic string, fn func(v uint8) uint8) error {
	if op.IsAccumulator() {
		r.A = fn(r.A)
		r.P.SetZN(r.A)
		return nil
	}
	addr, ok := op.IsAddress()
	if !ok {
		return IllegalOperand{Mnemonic: mnemonic, Kind: op.String()}
	}
	v := fn(b.Read(addr))
	b.Write(addr, v)
	r.P.SetZN(v)
	return nil
}

func iASL(r *registers.Registers, b bus.Bus, op Operand) error {
	return shiftOp(r, b, op, "ASL", func(v uint8) uint8 {
		r.P.C = v&0x80 != 0
		return v << 1
	})
}

func iLSR(r *registers.Registers, b bus.Bus, op Operand) error {
	return shiftOp(r, b, op, "LSR", func(v uint8) uint8 {
		r.P.C = v&0x01 != 0
		return v >> 1
	})
}

func iROL(r *registers.Registers, b bus.Bus, op Operand) error {
	return shiftOp(r, b, op, "ROL", func(v uint8) uint8 {
		carryIn := uint8(0)
		if r.P.C {
			carryIn = 1
		}
		r.P.C = v&0x80 != 0
		return (v << 1) | carryIn
	})
}

func iROR(r *registers.Registers, b bus.Bus, op Operand) error {
	return shiftOp(r, b, op, "ROR", func(v uint8) uint8 {
		carryIn := uint8(0)
		if r.P.C {
			carryIn = 0x80
		}
		r.P.C = v&0x01 != 0
		return (v >> 1) | carryIn
	})
}

// --- Flag set/clear ----------------------------------------------------

func iCLC(r *registers.Registers, b bus.Bus, op Operand) error { r.P.C = false; return nil }
func iSEC(r *registers.Registers, b bus.Bus, op Operand) error { r.P.C = true; return nil }
func iCLI(r *registers.Registers, b bus.Bus, op Operand) error { r.P.I = false; return nil }
func iSEI(r *registers.Registers, b bus.Bus, op Operand) error { r.P.I = true; return nil }
func iCLD(r *registers.Registers, b bus.Bus, op Operand) error { r.P.D = false; return nil }
func iSED(r *registers.Registers, b bus.Bus, op Operand) error { r.P.D = true; return nil }
func iCLV(r *registers.Registers, b bus.Bus, op Operand) error { r.P.V = false; return nil }

// --- NOP -----------------------------------------------------------------

func iNOP(r *registers.Registers, b bus.Bus, op Operand) error { return nil }
