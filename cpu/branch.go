package cpu

import (
	"github.com/mhale/go6502core/bus"
	"github.com/mhale/go6502core/registers"
)

// iJMP implements JMP for both Absolute and Indirect addressing (the
// Indirect page-boundary bug lives in the addressing mode, not here).
func iJMP(r *registers.Registers, b bus.Bus, op Operand) error {
	addr, ok := op.IsAddress()
	if !ok {
		return IllegalOperand{Mnemonic: "JMP", Kind: op.String()}
	}
	r.PC = addr
	return nil
}

// branch builds the instrFunc for one of the eight conditional branches:
// take it (assign PC from the Relative operand) iff cond holds, otherwise
// leave PC at its post-decode value.
func branch(mnemonic string, cond func(p *registers.Flags) bool) instrFunc {
	return func(r *registers.Registers, b bus.Bus, op Operand) error {
		addr, ok := op.IsAddress()
		if !ok {
			return IllegalOperand{Mnemonic: mnemonic, Kind: op.String()}
		}
		if cond(&r.P) {
			r.PC = addr
		}
		return nil
	}
}

var (
	iBCC = branch("BCC", func(p *registers.Flags) bool { return !p.C })
	iBCS = branch("BCS", func(p *registers.Flags) bool { return p.C })
	iBEQ = branch("BEQ", func(p *registers.Flags) bool { return p.Z })
	iBNE = branch("BNE", func(p *registers.Flags) bool { return !p.Z })
	iBMI = branch("BMI", func(p *registers.Flags) bool { return p.N })
	iBPL = branch("BPL", func(p *registers.Flags) bool { return !p.N })
	iBVC = branch("BVC", func(p *registers.Flags) bool { return !p.V })
	iBVS = branch("BVS", func(p *registers.Flags) bool { return p.V })
)

// iJSR pushes the address of the last byte of the JSR instruction (PC-1,
// since PC has already advanced past the full 3-byte instruction by the
// time the operand is decoded) then jumps.
func iJSR(r *registers.Registers, b bus.Bus, op Operand) error {
	addr, ok := op.IsAddress()
	if !ok {
		return IllegalOperand{Mnemonic: "JSR", Kind: op.String()}
	}
	ret := r.PC - 1
	r.Push(b, uint8(ret>>8))
	r.Push(b, uint8(ret))
	r.PC = addr
	return nil
}

// iRTS pops the return address pushed by JSR and resumes just after it.
func iRTS(r *registers.Registers, b bus.Bus, op Operand) error {
	lo := uint16(r.Pop(b))
	hi := uint16(r.Pop(b))
	r.PC = ((hi << 8) | lo) + 1
	return nil
}
