package cpu

import (
	"github.com/mhale/go6502core/bus"
	"github.com/mhale/go6502core/registers"
)

// CPU is the externally visible facade spec.md names as the library's only
// surface: construct one, Reset it against a bus, then Step it repeatedly.
// It owns no bus itself — every call takes one explicitly, matching the
// teacher's convention of passing the memory/peripheral set in rather than
// embedding it.
type CPU struct {
	Reg registers.Registers
}

// New returns a CPU with all registers zeroed. Callers must Reset before
// stepping so PC is loaded from the bus's reset vector.
func New() *CPU {
	return &CPU{}
}

// Reset loads the documented power-on/reset register state from b, per
// registers.Registers.Reset.
func (c *CPU) Reset(b bus.Bus) {
	c.Reg.Reset(b)
}

// SignalIRQ raises the maskable interrupt latch. It takes effect the next
// time Step is called, provided the I flag is clear at that time.
func (c *CPU) SignalIRQ() {
	c.Reg.IRQ.Set()
}

// SignalNMI raises the non-maskable interrupt latch. NMI is always serviced
// on the next Step regardless of the I flag, and takes priority over a
// pending IRQ.
func (c *CPU) SignalNMI() {
	c.Reg.NMI.Set()
}

// Step executes exactly one instruction, or services one pending interrupt
// in place of an instruction. NMI is checked first and unconditionally; IRQ
// is checked only if NMI isn't pending and the I flag is clear. Otherwise
// Step fetches the opcode byte at PC, decodes its operand with the paired
// addressing mode, and executes it. IllegalOpcode is returned, without
// mutating PC further, if the byte at PC isn't one of the 151 documented
// opcodes (56 mnemonics) this core implements.
func (c *CPU) Step(b bus.Bus) error {
	r := &c.Reg

	if r.NMI.Raised() {
		r.NMI.Clear()
		serviceInterrupt(r, b, registers.NMIVector)
		return nil
	}
	if r.IRQ.Raised() && !r.P.I {
		r.IRQ.Clear()
		serviceInterrupt(r, b, registers.IRQVector)
		return nil
	}

	pc := r.PC
	op := b.Read(pc)
	r.PC++

	entry := opcodes[op]
	if entry == nil {
		return IllegalOpcode{Opcode: op, PC: pc}
	}

	operand := entry.Mode(r, b)
	return entry.Exec(r, b, operand)
}

// serviceInterrupt implements the hardware interrupt sequence shared by IRQ
// and NMI: push the current PC and P (with B clear, unlike BRK) and load PC
// from the given vector. Grounded on teacher's runInterrupt.
func serviceInterrupt(r *registers.Registers, b bus.Bus, vector uint16) {
	pushInterruptFrame(r, b, false)
	r.PC = readVector(b, vector)
}
