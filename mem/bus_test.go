package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noMBCRom(size int) []byte {
	rom := make([]byte, size)
	rom[romHeaderMapperType] = 0x00
	return rom
}

func TestNewBusDetectsNoMBC(t *testing.T) {
	bus, err := NewBus(noMBCRom(0x8000))
	require.NoError(t, err)
	assert.Equal(t, MapperNone, bus.Mapper().Kind())
}

func TestNewBusDetectsMBC1(t *testing.T) {
	rom := noMBCRom(0x8000)
	rom[romHeaderMapperType] = 0x01
	bus, err := NewBus(rom)
	require.NoError(t, err)
	assert.Equal(t, MapperMBC1, bus.Mapper().Kind())
	assert.Equal(t, byte(1), bus.Mapper().Bank())
}

func TestNewBusRejectsUnsupportedMapper(t *testing.T) {
	rom := noMBCRom(0x8000)
	rom[romHeaderMapperType] = 0x1B // MBC5, out of scope per spec's MBC1-only non-goal
	_, err := NewBus(rom)
	require.Error(t, err)
	var target *UnsupportedMapperError
	assert.ErrorAs(t, err, &target)
}

func TestNewBusTolerateShortRom(t *testing.T) {
	bus, err := NewBus([]byte{0x00, 0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, MapperNone, bus.Mapper().Kind())
}

func TestWorkRamBankRegionsAreDistinct(t *testing.T) {
	bus, err := NewBus(noMBCRom(0x8000))
	require.NoError(t, err)

	require.NoError(t, bus.Write(0xC000, 0x11))
	require.NoError(t, bus.Write(0xD000, 0x22))

	v0, err := bus.Read(0xC000)
	require.NoError(t, err)
	v1, err := bus.Read(0xD000)
	require.NoError(t, err)
	assert.Equal(t, byte(0x11), v0)
	assert.Equal(t, byte(0x22), v1)
}

func TestEchoRamMirrorsWorkRam(t *testing.T) {
	bus, err := NewBus(noMBCRom(0x8000))
	require.NoError(t, err)

	require.NoError(t, bus.Write(0xC005, 0x99))
	v, err := bus.Read(0xE005)
	require.NoError(t, err)
	assert.Equal(t, byte(0x99), v)

	require.NoError(t, bus.Write(0xE100, 0x42))
	v, err = bus.Read(0xC100)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), v)
}

func TestProhibitedRegionReadsZeroAndRejectsWrites(t *testing.T) {
	bus, err := NewBus(noMBCRom(0x8000))
	require.NoError(t, err)

	v, err := bus.Read(0xFEA0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), v)

	err = bus.Write(0xFEA0, 0xFF)
	require.Error(t, err)
	var target *ProhibitedWriteError
	assert.ErrorAs(t, err, &target)
}

func TestIERegisterIsASingleByte(t *testing.T) {
	bus, err := NewBus(noMBCRom(0x8000))
	require.NoError(t, err)

	require.NoError(t, bus.Write(0xFFFF, 0x1F))
	v, err := bus.Read(0xFFFF)
	require.NoError(t, err)
	assert.Equal(t, byte(0x1F), v)
}

func TestHRAMAndOAMRoundTrip(t *testing.T) {
	bus, err := NewBus(noMBCRom(0x8000))
	require.NoError(t, err)

	require.NoError(t, bus.Write(0xFF80, 0xAA))
	v, err := bus.Read(0xFF80)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), v)

	require.NoError(t, bus.Write(0xFE10, 0x55))
	v, err = bus.Read(0xFE10)
	require.NoError(t, err)
	assert.Equal(t, byte(0x55), v)
}
