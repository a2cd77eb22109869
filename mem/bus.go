// Package mem implements the Game Boy address space: a single 16-bit-wide
// bus that routes CPU reads/writes to the cartridge mapper, or to one of
// several flat RAM regions, exactly as the Sharp SM83 memory map decodes
// it (echo RAM, the OAM/prohibited gap, and the single IE byte included).
package mem

// Region sizes, named for documentation at call sites.
const (
	vramSize = 0x2000
	eramSize = 0x2000
	wramSize = 0x2000
	oamSize  = 0x00A0
	ioSize   = 0x0080
	hramSize = 0x007F
)

// Bus is the central object every other component (CPU, and later PPU,
// timer, joypad collaborators) reads and writes through. It owns the
// mapper and every RAM buffer in the address space; there is exactly one
// Bus per emulation run.
type Bus struct {
	mapper *Mapper

	VRAM [vramSize]byte
	ERAM [eramSize]byte
	WRAM [wramSize]byte
	OAM  [oamSize]byte
	IO   [ioSize]byte
	HRAM [hramSize]byte
	IE   byte
}

// NewBus constructs a Bus over the given ROM blob. RAM buffers are
// zero-initialized. The mapper type is detected from the ROM header; an
// unrecognized mapper byte is a construction-time failure.
func NewBus(rom []byte) (*Bus, error) {
	mapper, err := newMapper(rom)
	if err != nil {
		return nil, err
	}
	return &Bus{mapper: mapper}, nil
}

// Mapper exposes the bus's cartridge mapper (bank number, kind) for
// diagnostics and the debugger; the CPU never needs it directly.
func (b *Bus) Mapper() *Mapper { return b.mapper }

// Read dispatches addr to its backing region per the SM83 memory map.
func (b *Bus) Read(addr uint16) (byte, error) {
	switch {
	case addr <= 0x7FFF:
		return b.mapper.Read(addr), nil
	case addr <= 0x9FFF:
		return b.VRAM[addr-0x8000], nil
	case addr <= 0xBFFF:
		return b.ERAM[addr-0xA000], nil
	case addr <= 0xCFFF:
		return b.WRAM[addr-0xC000], nil
	case addr <= 0xDFFF:
		return b.WRAM[0x1000+addr-0xD000], nil
	case addr <= 0xFDFF:
		// Echo RAM transparently mirrors Work RAM two pages down.
		return b.Read(addr - 0x2000)
	case addr <= 0xFE9F:
		return b.OAM[addr-0xFE00], nil
	case addr <= 0xFEFF:
		return 0x00, nil // prohibited region; reads as zero
	case addr <= 0xFF7F:
		return b.IO[addr-0xFF00], nil
	case addr <= 0xFFFE:
		return b.HRAM[addr-0xFF80], nil
	case addr == 0xFFFF:
		return b.IE, nil
	default:
		return 0, invalidAddress(addr)
	}
}

// Write dispatches addr to its backing region, mirroring Read's decoding
// with the deviations documented for the mapper range, echo RAM, and the
// prohibited gap.
func (b *Bus) Write(addr uint16, value byte) error {
	switch {
	case addr <= 0x7FFF:
		b.mapper.Write(addr, value)
		return nil
	case addr <= 0x9FFF:
		b.VRAM[addr-0x8000] = value
		return nil
	case addr <= 0xBFFF:
		b.ERAM[addr-0xA000] = value
		return nil
	case addr <= 0xCFFF:
		b.WRAM[addr-0xC000] = value
		return nil
	case addr <= 0xDFFF:
		b.WRAM[0x1000+addr-0xD000] = value
		return nil
	case addr <= 0xFDFF:
		return b.Write(addr-0x2000, value)
	case addr <= 0xFE9F:
		b.OAM[addr-0xFE00] = value
		return nil
	case addr <= 0xFEFF:
		return prohibitedWrite(addr)
	case addr <= 0xFF7F:
		// I/O side effects (PPU/timer/joypad register behavior) are out of
		// scope for the core; the region is flat backing storage.
		b.IO[addr-0xFF00] = value
		return nil
	case addr <= 0xFFFE:
		b.HRAM[addr-0xFF80] = value
		return nil
	case addr == 0xFFFF:
		b.IE = value
		return nil
	default:
		return invalidAddress(addr)
	}
}
