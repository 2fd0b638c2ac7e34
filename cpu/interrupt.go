package cpu

import (
	"github.com/mhale/go6502core/bus"
	"github.com/mhale/go6502core/registers"
)

// iBRK implements the software interrupt: push PC+1, push P with B set,
// disable further IRQs, and load PC from the IRQ/BRK vector. PC+1 (not the
// post-fetch PC) is pushed because the byte after the BRK opcode is a padding
// byte the original 6502 used for a break-reason signature; PC has only
// advanced past the opcode by the time this runs, so it is incremented once
// more to skip the padding byte before being pushed.
func iBRK(r *registers.Registers, b bus.Bus, op Operand) error {
	r.PC++
	pushInterruptFrame(r, b, true)
	r.PC = readVector(b, registers.IRQVector)
	return nil
}

// iRTI implements return-from-interrupt: pop P (replacing all flags), then
// pop PC with no +1 (unlike RTS, the pushed PC here was never decremented).
func iRTI(r *registers.Registers, b bus.Bus, op Operand) error {
	r.P.Unpack(r.Pop(b))
	lo := uint16(r.Pop(b))
	hi := uint16(r.Pop(b))
	r.PC = (hi << 8) | lo
	return nil
}

// pushInterruptFrame pushes PC (hi then lo) and P (with B set according to
// brk, and the always-one bit forced) — the common frame BRK, IRQ and NMI
// servicing all push before loading a new PC from their respective vector.
func pushInterruptFrame(r *registers.Registers, b bus.Bus, brk bool) {
	r.Push(b, uint8(r.PC>>8))
	r.Push(b, uint8(r.PC))
	push := r.P
	push.B = brk
	r.Push(b, push.Pack())
	r.P.I = true
}

func readVector(b bus.Bus, addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return (hi << 8) | lo
}
