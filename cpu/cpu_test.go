package cpu

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gone/mem"
)

// newTestCpu builds a Cpu over a NoMBC ROM containing program at 0x0100,
// PC's power-on value, so handlers can be exercised via Step without a
// real cartridge file.
func newTestCpu(t *testing.T, program []byte) *Cpu {
	t.Helper()
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], program)
	bus, err := mem.NewBus(rom)
	require.NoError(t, err)
	return New(bus)
}

func step(t *testing.T, c *Cpu) uint32 {
	t.Helper()
	cycles, err := c.Step()
	require.NoError(t, err)
	return cycles
}

func TestNewPowerOnState(t *testing.T) {
	c := newTestCpu(t, nil)
	assert.Equal(t, uint16(0x0100), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Equal(t, byte(0x01), c.A)
	assert.Equal(t, byte(0x00), c.F)
	assert.False(t, c.Halted)
}

func TestFlagsLowNibbleAlwaysZero(t *testing.T) {
	c := newTestCpu(t, nil)
	c.setF(0xFF)
	assert.Equal(t, byte(0xF0), c.F, "F's low nibble must stay clear regardless of input")
}

func TestRegisterPairRoundTrip(t *testing.T) {
	c := newTestCpu(t, nil)
	c.SetBC(0x1234)
	assert.Equal(t, byte(0x12), c.B)
	assert.Equal(t, byte(0x34), c.C)
	assert.Equal(t, uint16(0x1234), c.BC())

	c.SetAF(0xABCD)
	assert.Equal(t, byte(0xAB), c.A)
	assert.Equal(t, byte(0xC0), c.F, "AF's low nibble is masked on write, same as any other F write")
}

func TestHalfCarryBoundaries(t *testing.T) {
	assert.True(t, halfCarryAdd(0x0F, 0x01))
	assert.False(t, halfCarryAdd(0x0E, 0x01))
	assert.True(t, halfCarrySub(0x10, 0x01))
	assert.False(t, halfCarrySub(0x11, 0x01))
	assert.True(t, halfCarryAdd16(0x0FFF, 0x0001))
	assert.False(t, halfCarryAdd16(0x0FFE, 0x0001))
}

func TestFetchAdvancesPCAndWraps(t *testing.T) {
	c := newTestCpu(t, nil)
	c.PC = 0xFFFF
	b := c.fetch8()
	assert.Equal(t, byte(0x00), b) // 0xFFFF is the IE register, zero at power-on
	assert.Equal(t, uint16(0x0000), c.PC, "PC must wrap from 0xFFFF to 0x0000")
}

func TestNOP(t *testing.T) {
	c := newTestCpu(t, []byte{0x00})
	cycles := step(t, c)
	assert.Equal(t, uint32(1), cycles)
	assert.Equal(t, uint16(0x0101), c.PC)
}

func TestLD_BC_d16_and_LD_BC_A_roundtrip(t *testing.T) {
	c := newTestCpu(t, []byte{0x01, 0x00, 0xC0, 0x3E, 0x42, 0x02})
	step(t, c) // LD BC,0xC000
	assert.Equal(t, uint16(0xC000), c.BC())
	step(t, c) // LD A,0x42
	step(t, c) // LD (BC),A
	v, err := c.Bus.Read(0xC000)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), v)
}

func TestINC_DEC_B_flags(t *testing.T) {
	c := newTestCpu(t, []byte{0x04})
	c.B = 0x0F
	step(t, c)
	assert.Equal(t, byte(0x10), c.B)
	assert.True(t, c.getFlag(FlagH))
	assert.False(t, c.getFlag(FlagZ))
	assert.False(t, c.getFlag(FlagN))

	c2 := newTestCpu(t, []byte{0x05})
	c2.B = 0x01
	step(t, c2)
	assert.Equal(t, byte(0x00), c2.B)
	assert.True(t, c2.getFlag(FlagZ))
	assert.True(t, c2.getFlag(FlagN))
}

func TestRLCA_and_RRCA(t *testing.T) {
	c := newTestCpu(t, []byte{0x07})
	c.A = 0x85
	step(t, c)
	assert.Equal(t, byte(0x0B), c.A)
	assert.True(t, c.getFlag(FlagC))
	assert.False(t, c.getFlag(FlagZ), "RLCA always clears Z regardless of the result")

	c2 := newTestCpu(t, []byte{0x0F})
	c2.A = 0x01
	step(t, c2)
	assert.Equal(t, byte(0x80), c2.A)
	assert.True(t, c2.getFlag(FlagC))
}

func TestADD_HL_BC_overflow(t *testing.T) {
	c := newTestCpu(t, []byte{0x09})
	c.SetHL(0xFFFF)
	c.SetBC(0x0001)
	step(t, c)
	assert.Equal(t, uint16(0x0000), c.HL())
	assert.True(t, c.getFlag(FlagC))
	assert.True(t, c.getFlag(FlagH))
	assert.False(t, c.getFlag(FlagN))
}

func TestJR_NZ_takenVsNotTaken(t *testing.T) {
	taken := newTestCpu(t, []byte{0x20, 0x05}) // JR NZ,+5
	taken.setFlag(FlagZ, false)
	cycles := step(t, taken)
	assert.Equal(t, uint32(3), cycles, "branch taken costs the base plus one extra cycle")
	assert.Equal(t, uint16(0x0107), taken.PC)

	notTaken := newTestCpu(t, []byte{0x20, 0x05})
	notTaken.setFlag(FlagZ, true)
	cycles = step(t, notTaken)
	assert.Equal(t, uint32(2), cycles)
	assert.Equal(t, uint16(0x0102), notTaken.PC)
}

func TestCALL_and_RET_roundtrip(t *testing.T) {
	program := []byte{0xCD, 0x00, 0xC0} // CALL 0xC000
	c := newTestCpu(t, program)
	c.SP = 0xD000
	step(t, c)
	assert.Equal(t, uint16(0xC000), c.PC)
	assert.Equal(t, uint16(0xCFFE), c.SP)

	ret, err := c.Bus.Read(0xCFFE)
	require.NoError(t, err)
	assert.Equal(t, byte(0x03), ret, "return address low byte must be the instruction after CALL")

	c.PC = 0xC000
	c.Bus.Write(0xC000, 0xC9) // RET, fetched from WRAM this time
	step(t, c)
	assert.Equal(t, uint16(0x0103), c.PC)
	assert.Equal(t, uint16(0xD000), c.SP)
}

func TestPUSH_POP_AF_masksLowNibble(t *testing.T) {
	c := newTestCpu(t, []byte{0xF5, 0xF1}) // PUSH AF; POP AF
	c.SP = 0xD000
	c.A = 0x5A
	c.F = 0xFF // poked directly so the pushed word carries a nonzero low nibble
	step(t, c)
	c.SetAF(0x0000)
	step(t, c)
	assert.Equal(t, byte(0x5A), c.A)
	assert.Equal(t, byte(0xF0), c.F)
}

func TestLDH_roundtrip(t *testing.T) {
	c := newTestCpu(t, []byte{0xE0, 0x80, 0xF0, 0x80}) // LDH (0x80),A; LDH A,(0x80)
	c.A = 0x99
	step(t, c)
	c.A = 0x00
	step(t, c)
	assert.Equal(t, byte(0x99), c.A)
}

func TestCB_BIT_RES_SET(t *testing.T) {
	c := newTestCpu(t, []byte{0xCB, 0x7F, 0xCB, 0xC7, 0xCB, 0x87})
	// 0xCB 0x7F == BIT 7,A
	c.A = 0x80
	step(t, c)
	assert.False(t, c.getFlag(FlagZ))
	assert.True(t, c.getFlag(FlagH))

	// 0xCB 0xC7 == SET 0,A
	step(t, c)
	assert.Equal(t, byte(0x81), c.A)

	// 0xCB 0x87 == RES 0,A
	step(t, c)
	assert.Equal(t, byte(0x80), c.A)
}

func TestCB_rotateOnIndirectHL(t *testing.T) {
	c := newTestCpu(t, []byte{0xCB, 0x16}) // RL (HL)
	c.SetHL(0xC010)
	c.Bus.Write(0xC010, 0x80)
	c.setFlag(FlagC, true)
	cycles := step(t, c)
	assert.Equal(t, uint32(4), cycles)
	v, _ := c.Bus.Read(0xC010)
	assert.Equal(t, byte(0x01), v)
	assert.True(t, c.getFlag(FlagC))
}

func TestDAA_afterBCDAdd(t *testing.T) {
	c := newTestCpu(t, []byte{0x27})
	c.A = 0x45 + 0x38 // raw binary sum of BCD 45 and 38 overflows into 0x7D
	c.setFlag(FlagH, false)
	c.setFlag(FlagN, false)
	c.setFlag(FlagC, false)
	step(t, c)
	assert.Equal(t, byte(0x83), c.A, "45+38 in BCD is 83")
}

func TestUnimplementedOpcode(t *testing.T) {
	c := newTestCpu(t, []byte{0xD3}) // never assigned on real hardware either
	_, err := c.Step()
	require.Error(t, err)
	var target *UnimplementedOpcodeError
	assert.ErrorAs(t, err, &target)
}

func TestStepStopsOnProhibitedWrite(t *testing.T) {
	c := newTestCpu(t, []byte{0xEA, 0xA0, 0xFE}) // LD (0xFEA0),A
	_, err := c.Step()
	require.Error(t, err)
	var target *mem.ProhibitedWriteError
	assert.ErrorAs(t, err, &target)
}

func TestHALT_stopsStepping(t *testing.T) {
	c := newTestCpu(t, []byte{0x76, 0x00})
	step(t, c)
	assert.True(t, c.Halted)
	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), cycles)
	assert.Equal(t, uint16(0x0101), c.PC, "a halted core must not fetch")
}

func TestSetBCIsExactInverseOfBC(t *testing.T) {
	c := newTestCpu(t, nil)
	for _, v := range []uint16{0x0000, 0xFFFF, 0x1234, 0xBEEF} {
		c.SetBC(v)
		if diff := deep.Equal(c.BC(), v); diff != nil {
			t.Errorf("BC round-trip mismatch for 0x%04X: %v", v, diff)
		}
	}
}
