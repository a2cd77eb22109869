// Package cpu implements the Sharp SM83 processor core used by the Game
// Boy: the register file, flag computation, and the fetch/decode/execute
// loop driving a dense opcode dispatch table over a mem.Bus.
package cpu

import (
	"gone/mask"
	"gone/mem"
)

// Flags occupy the upper nibble of F; the lower nibble is always zero.
const (
	FlagZ byte = 1 << 7 // Zero
	FlagN byte = 1 << 6 // Subtract
	FlagH byte = 1 << 5 // Half-carry
	FlagC byte = 1 << 4 // Carry
)

// Power-on register values, per the SM83 boot sequence this core assumes
// (post-bootrom DMG state).
const (
	initialPC = 0x0100
	initialSP = 0xFFFE
	initialA  = 0x01
)

// Cpu owns the register file, the HALT flag, and the Bus it executes
// against. There is one Cpu per emulation run; it is not safe for
// concurrent use from multiple goroutines (see SPEC_FULL.md's concurrency
// section — the driver serializes its own access).
type Cpu struct {
	Bus *mem.Bus

	A, F byte
	B, C byte
	D, E byte
	H, L byte

	SP uint16
	PC uint16

	Halted bool

	// IME is the interrupt master enable flag. DI/EI toggle it and RETI
	// sets it, but since interrupt dispatch is out of scope for this core,
	// nothing ever reads it; it exists so those opcodes have somewhere to
	// write.
	IME bool

	err error // sticky error set by read/write during the current Step
}

// New constructs a Cpu wired to bus, with every register at its
// documented power-on value.
func New(bus *mem.Bus) *Cpu {
	return &Cpu{
		Bus: bus,
		A:   initialA,
		F:   0x00,
		SP:  initialSP,
		PC:  initialPC,
	}
}

// read performs a bus read, latching the first error encountered during
// the current Step so instruction handlers can stay free of per-access
// error checks; Step inspects c.err once the handler returns.
func (c *Cpu) read(addr uint16) byte {
	v, err := c.Bus.Read(addr)
	if err != nil && c.err == nil {
		c.err = err
	}
	return v
}

func (c *Cpu) write(addr uint16, v byte) {
	if err := c.Bus.Write(addr, v); err != nil && c.err == nil {
		c.err = err
	}
}

// fetch8 reads the byte at PC and advances PC by one, with 16-bit wrap.
func (c *Cpu) fetch8() byte {
	v := c.read(c.PC)
	c.PC++
	return v
}

// fetch16 reads a little-endian word starting at PC and advances PC by
// two.
func (c *Cpu) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// fetchSigned8 reads a two's-complement signed displacement at PC and
// advances PC by one.
func (c *Cpu) fetchSigned8() int8 {
	return int8(c.fetch8())
}

// getFlag reports whether the named flag bit is set.
func (c *Cpu) getFlag(flag byte) bool { return c.F&flag != 0 }

// setFlag sets or clears the named flag bit, leaving every other bit of F
// (including the always-zero low nibble) untouched.
func (c *Cpu) setFlag(flag byte, set bool) {
	if set {
		c.F |= flag
	} else {
		c.F &^= flag
	}
}

// setF assigns F wholesale (via SetAF, which POP AF uses), masking the
// low nibble to zero per the flags invariant.
func (c *Cpu) setF(v byte) { c.F = mask.Unset(v, mask.I5, mask.I8) }

// 16-bit register pair views. Writing a pair always splits into two 8-bit
// writes; AF additionally forces F's low nibble to zero.

func (c *Cpu) AF() uint16 { return uint16(c.A)<<8 | uint16(c.F) }
func (c *Cpu) BC() uint16 { return uint16(c.B)<<8 | uint16(c.C) }
func (c *Cpu) DE() uint16 { return uint16(c.D)<<8 | uint16(c.E) }
func (c *Cpu) HL() uint16 { return uint16(c.H)<<8 | uint16(c.L) }

func (c *Cpu) SetAF(v uint16) {
	c.A = byte(v >> 8)
	c.setF(byte(v))
}

func (c *Cpu) SetBC(v uint16) {
	c.B = byte(v >> 8)
	c.C = byte(v)
}

func (c *Cpu) SetDE(v uint16) {
	c.D = byte(v >> 8)
	c.E = byte(v)
}

func (c *Cpu) SetHL(v uint16) {
	c.H = byte(v >> 8)
	c.L = byte(v)
}

// halfCarryAdd reports carry out of bit 3 into bit 4 for an 8-bit add.
func halfCarryAdd(a, b byte) bool {
	return mask.Last(a, mask.I4)+mask.Last(b, mask.I4) > 0x0F
}

// halfCarrySub reports borrow from bit 4 for an 8-bit subtract.
func halfCarrySub(a, b byte) bool {
	return mask.Last(a, mask.I4) < mask.Last(b, mask.I4)
}

// halfCarryAdd16 reports carry out of bit 11 into bit 12 for a 16-bit add.
func halfCarryAdd16(a, b uint16) bool {
	return (a&0x0FFF)+(b&0x0FFF) > 0x0FFF
}

// Step fetches, decodes and executes a single instruction, returning the
// number of machine cycles it consumed. While Halted, Step performs no
// fetch and returns zero. Any fatal core error (invalid address,
// prohibited write, unimplemented opcode) is returned to the caller with
// zero cycles; no internal recovery is attempted. A bus error raised
// inside a handler is checked once the handler returns, so the
// instruction's other effects are not undone.
func (c *Cpu) Step() (uint32, error) {
	if c.Halted {
		return 0, nil
	}

	c.err = nil
	pcAtFetch := c.PC
	opcode := c.fetch8()
	if c.err != nil {
		return 0, c.err
	}

	entry := opcodeTable[opcode]
	if entry.handler == nil {
		return 0, &UnimplementedOpcodeError{Opcode: opcode, PC: pcAtFetch}
	}

	extra := entry.handler(c)
	if c.err != nil {
		return 0, c.err
	}
	return uint32(entry.cycles) + extra, nil
}
