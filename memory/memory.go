// Package memory provides a reference bus.Bus implementation: a flat RAM
// bank covering the full 16-bit address space. Hosts embedding the CPU core
// are free to implement bus.Bus with their own address decoding (ROM
// banking, memory-mapped IO, shadowed regions); this package exists for
// tests, the cmd/stepper demo, and any host happy with a single flat RAM.
package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mhale/go6502core/bus"
)

// Ram implements bus.Bus over a single contiguous byte slice. Addresses
// alias if the backing size is smaller than 64k.
type Ram struct {
	mem []uint8
}

// New creates a Ram of the given size, which must be a power of two no
// larger than 64k. Content is all-zero until PowerOn is called.
func New(size int) (*Ram, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", size)
	}
	return &Ram{mem: make([]uint8, size)}, nil
}

// Read implements bus.Bus. Address is masked to fit the backing size.
func (r *Ram) Read(addr uint16) uint8 {
	return r.mem[uint16(addr)&uint16(len(r.mem)-1)]
}

// Write implements bus.Bus. Address is masked to fit the backing size.
func (r *Ram) Write(addr uint16, val uint8) {
	r.mem[uint16(addr)&uint16(len(r.mem)-1)] = val
}

// PowerOn randomizes the contents of RAM, mirroring the undefined state of
// real hardware at power-up. Hosts that want deterministic all-zero RAM can
// skip calling this and use New's zero-filled result directly.
func (r *Ram) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range r.mem {
		r.mem[i] = uint8(rand.Intn(256))
	}
}

// LoadAt copies data into RAM starting at addr, wrapping per Write's masking
// rules if it runs past the end of the backing store.
func (r *Ram) LoadAt(addr uint16, data []uint8) {
	for i, b := range data {
		r.Write(addr+uint16(i), b)
	}
}

var _ bus.Bus = (*Ram)(nil)
