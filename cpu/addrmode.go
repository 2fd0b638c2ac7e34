package cpu

import (
	"github.com/mhale/go6502core/bus"
	"github.com/mhale/go6502core/registers"
)

// AddressingMode decodes the operand bytes following an opcode into an
// Operand, advancing PC by however many bytes it consumed. All thirteen
// modes are implemented atomically here (one Go call performs every bus
// access the instruction's addressing step requires) rather than as the
// teacher's per-tick state machine, since cycle-accurate timing is an
// explicit Non-goal — but the bus access order within a mode matches
// teacher's ticked version exactly, including reads whose result is
// discarded but whose side effect (memory-mapped IO) must still occur.
type AddressingMode func(r *registers.Registers, b bus.Bus) Operand

// AddrAccumulator implements accumulator mode (no bytes read).
func AddrAccumulator(r *registers.Registers, b bus.Bus) Operand {
	return AccumulatorOperand()
}

// AddrImplied implements implied mode (no bytes read, no operand produced).
func AddrImplied(r *registers.Registers, b bus.Bus) Operand {
	return NoneOperand()
}

// AddrImmediate implements immediate mode - #i.
func AddrImmediate(r *registers.Registers, b bus.Bus) Operand {
	v := b.Read(r.PC)
	r.PC++
	return ValueOperand(v)
}

// AddrRelative implements relative mode, used by the conditional branches.
// PC is the value *after* reading the offset byte; the offset is a signed
// i8 added to that post-increment PC.
func AddrRelative(r *registers.Registers, b bus.Bus) Operand {
	off := int8(b.Read(r.PC))
	r.PC++
	return AddressOperand(uint16(int32(r.PC) + int32(off)))
}

// AddrZeropage implements zero page mode - d.
func AddrZeropage(r *registers.Registers, b bus.Bus) Operand {
	zp := b.Read(r.PC)
	r.PC++
	return AddressOperand(uint16(zp))
}

// AddrZeropageX implements zero page plus X mode - d,x. The base zero page
// address is always read from the bus even though its value is only used as
// an index base, matching real hardware's extra (discarded) read.
func AddrZeropageX(r *registers.Registers, b bus.Bus) Operand {
	return addrZeropageIndexed(r, b, r.X)
}

// AddrZeropageY implements zero page plus Y mode - d,y.
func AddrZeropageY(r *registers.Registers, b bus.Bus) Operand {
	return addrZeropageIndexed(r, b, r.Y)
}

func addrZeropageIndexed(r *registers.Registers, b bus.Bus, idx uint8) Operand {
	zp := b.Read(r.PC)
	r.PC++
	_ = b.Read(uint16(zp)) // discarded read matching the 6502's internal add-and-reread cycle
	return AddressOperand(uint16(zp + idx))
}

// AddrAbsolute implements absolute mode - a. Little-endian.
func AddrAbsolute(r *registers.Registers, b bus.Bus) Operand {
	return AddressOperand(readAbsolute(r, b))
}

func readAbsolute(r *registers.Registers, b bus.Bus) uint16 {
	lo := uint16(b.Read(r.PC))
	r.PC++
	hi := uint16(b.Read(r.PC))
	r.PC++
	return (hi << 8) | lo
}

// AddrAbsoluteX implements absolute plus X mode - a,x. 16-bit wrap.
func AddrAbsoluteX(r *registers.Registers, b bus.Bus) Operand {
	return AddressOperand(readAbsolute(r, b) + uint16(r.X))
}

// AddrAbsoluteY implements absolute plus Y mode - a,y. 16-bit wrap.
func AddrAbsoluteY(r *registers.Registers, b bus.Bus) Operand {
	return AddressOperand(readAbsolute(r, b) + uint16(r.Y))
}

// AddrIndirect implements indirect mode - (a), used only by JMP. Carries the
// famous 6502 page-boundary bug: if the low byte of the pointer is 0xFF, the
// high byte of the target is fetched from ptr&0xFF00 rather than crossing
// into the next page.
func AddrIndirect(r *registers.Registers, b bus.Bus) Operand {
	ptr := readAbsolute(r, b)
	lo := b.Read(ptr)
	var hiAddr uint16
	if ptr&0xFF == 0xFF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := b.Read(hiAddr)
	return AddressOperand((uint16(hi) << 8) | uint16(lo))
}

// AddrIndirectX implements X-indexed zero page indirect mode - (d,x). The
// zero page pointer arithmetic wraps within page 0.
func AddrIndirectX(r *registers.Registers, b bus.Bus) Operand {
	zp := b.Read(r.PC)
	r.PC++
	_ = b.Read(uint16(zp)) // discarded read while the index is added
	ptr := zp + r.X
	lo := uint16(b.Read(uint16(ptr)))
	hi := uint16(b.Read(uint16(ptr + 1)))
	return AddressOperand((hi << 8) | lo)
}

// AddrIndirectY implements zero page indirect Y-indexed mode - (d),y. The
// base pointer read wraps in page 0; the final +Y wraps across the full
// 16-bit address space.
func AddrIndirectY(r *registers.Registers, b bus.Bus) Operand {
	zp := b.Read(r.PC)
	r.PC++
	lo := uint16(b.Read(uint16(zp)))
	hi := uint16(b.Read(uint16(zp + 1)))
	base := (hi << 8) | lo
	return AddressOperand(base + uint16(r.Y))
}
