package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMBC1BankSwitching(t *testing.T) {
	rom := make([]byte, 0x4000*4)
	rom[romHeaderMapperType] = 0x01
	for bank := 1; bank < 4; bank++ {
		rom[bank*0x4000] = byte(bank) // first byte of each bank identifies it
	}

	bus, err := NewBus(rom)
	require.NoError(t, err)

	require.NoError(t, bus.Write(0x2000, 0x02)) // select bank 2
	v, err := bus.Read(0x4000)
	require.NoError(t, err)
	assert.Equal(t, byte(2), v)
	assert.Equal(t, byte(2), bus.Mapper().Bank())

	require.NoError(t, bus.Write(0x2000, 0x00)) // bank 0 remaps to bank 1
	v, err = bus.Read(0x4000)
	require.NoError(t, err)
	assert.Equal(t, byte(1), v)
}

func TestMBC1OnlyLower5BitsSelectBank(t *testing.T) {
	rom := make([]byte, 0x4000*33)
	rom[romHeaderMapperType] = 0x01

	bus, err := NewBus(rom)
	require.NoError(t, err)

	require.NoError(t, bus.Write(0x2000, 0xE0)) // 0xE0 & 0x1F == 0
	assert.Equal(t, byte(1), bus.Mapper().Bank(), "bank 0 always remaps to 1, even via the high bits")
}

func TestNoMBCIgnoresWrites(t *testing.T) {
	rom := noMBCRom(0x8000)
	rom[0x4000] = 0x77
	bus, err := NewBus(rom)
	require.NoError(t, err)

	require.NoError(t, bus.Write(0x4000, 0xFF))
	v, err := bus.Read(0x4000)
	require.NoError(t, err)
	assert.Equal(t, byte(0x77), v, "NoMBC ROM is immutable from the bus's perspective")
}

func TestOpenBusReadPastRomEnd(t *testing.T) {
	bus, err := NewBus([]byte{0x00})
	require.NoError(t, err)
	v, err := bus.Read(0x0100)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), v)
}
