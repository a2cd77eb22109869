package mem

// romHeaderMapperType is the ROM offset that declares the cartridge's
// mapper hardware.
const romHeaderMapperType = 0x0147

// MapperKind tags the (small) set of mapper variants this core models.
// A tagged variant keeps mapper dispatch static and allocation-free, and
// makes unsupported-mapper detection a construction-time check, per
// SPEC_FULL.md's resolution of the mapper-abstraction open question.
type MapperKind int

const (
	MapperNone MapperKind = iota
	MapperMBC1
)

// Mapper models cartridge-side ROM bank switching. NoMBC carries only the
// ROM blob; MBC1 additionally tracks a selected ROM bank (5 bits, 1-31
// effective; writing 0 selects 1).
type Mapper struct {
	kind MapperKind
	rom  []byte
	bank byte // MBC1 only; unused (and meaningless) for MapperNone
}

// newMapper detects the mapper type from the ROM header and constructs the
// matching Mapper. ROMs shorter than the header offset are tolerated (unit
// tests that only touch bank 0) and treated as MapperNone.
func newMapper(rom []byte) (*Mapper, error) {
	var code byte
	if len(rom) > romHeaderMapperType {
		code = rom[romHeaderMapperType]
	}

	switch code {
	case 0x00:
		return &Mapper{kind: MapperNone, rom: rom}, nil
	case 0x01, 0x02, 0x03:
		return &Mapper{kind: MapperMBC1, rom: rom, bank: 1}, nil
	default:
		return nil, unsupportedMapper(code)
	}
}

// Kind reports the detected mapper variant.
func (m *Mapper) Kind() MapperKind { return m.kind }

// Bank reports the currently selected ROM bank (MBC1 only; always 0 for
// MapperNone, which has no switchable window).
func (m *Mapper) Bank() byte {
	if m.kind == MapperMBC1 {
		return m.bank
	}
	return 0
}

func (m *Mapper) romByte(offset uint32) byte {
	if int(offset) >= len(m.rom) {
		return 0xFF // open bus
	}
	return m.rom[offset]
}

// Read dispatches a ROM-range read (0x0000-0x7FFF) according to the
// detected mapper kind.
func (m *Mapper) Read(addr uint16) byte {
	switch m.kind {
	case MapperMBC1:
		if addr < 0x4000 {
			return m.romByte(uint32(addr))
		}
		return m.romByte(uint32(addr-0x4000) + uint32(m.bank)*0x4000)
	default: // MapperNone
		return m.romByte(uint32(addr))
	}
}

// Write dispatches a ROM-range write. NoMBC ignores all writes. MBC1 only
// reacts to writes in 0x2000-0x3FFF, which select the lower 5 bits of the
// ROM bank register (0 is remapped to 1).
func (m *Mapper) Write(addr uint16, value byte) {
	if m.kind != MapperMBC1 {
		return
	}
	if addr >= 0x2000 && addr <= 0x3FFF {
		bank := value & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.bank = bank
	}
}
