package cpu

import "gone/mask"

// An opcodeEntry binds one of the 256 possible opcode bytes to its
// mnemonic (for the debugger and diagnostics), its instruction length in
// bytes, its base machine-cycle cost, and the handler that performs its
// effect. opcodeTable is a dense [256]array rather than a map: every
// opcode byte indexes directly into it, and an unimplemented slot is
// simply a zero-value entry with a nil handler, which Step turns into an
// UnimplementedOpcodeError.
type opcodeEntry struct {
	name    string
	length  byte
	cycles  uint32
	handler func(c *Cpu) uint32
}

var opcodeTable [256]opcodeEntry

// cbTable is the SM83's second opcode page, entered via the 0xCB prefix
// byte (opCB in instructions.go performs the second fetch and dispatch).
// Every one of its 256 slots is populated: the rotate/shift/swap block
// and the BIT/RES/SET block are both fully regular in the operand
// register, so init generates all 256 entries instead of transcribing
// them.
var cbTable [256]opcodeEntry

func init() {
	installLiteralOpcodes()
	installLoadRegisterBlock()
	installALUBlock()
	installIncDecBlock()
	installPairBlock()
	installStackBlock()
	installBranchBlock()
	installMiscOpcodes()
	installCBTable()
}

// installLiteralOpcodes wires the opcodes spec.md names explicitly, plus
// their direct SM83 siblings (0x18-0x3E row) that the same literal style
// extends to: these are exactly the instructions distilled into the
// original mygbpy instruction table (see original_source/cpu.py).
func installLiteralOpcodes() {
	set := func(op byte, name string, length byte, cycles uint32, h func(c *Cpu) uint32) {
		opcodeTable[op] = opcodeEntry{name: name, length: length, cycles: cycles, handler: h}
	}

	set(0x00, "NOP", 1, 1, opNOP)
	set(0x01, "LD BC,d16", 3, 3, opLD_BC_d16)
	set(0x02, "LD (BC),A", 1, 2, opLD_BC_A)
	set(0x03, "INC BC", 1, 2, opINC_BC)
	set(0x04, "INC B", 1, 1, opINC_B)
	set(0x05, "DEC B", 1, 1, opDEC_B)
	set(0x06, "LD B,d8", 2, 2, opLD_B_d8)
	set(0x07, "RLCA", 1, 1, opRLCA)
	set(0x08, "LD (a16),SP", 3, 5, opLD_a16_SP)
	set(0x09, "ADD HL,BC", 1, 2, opADD_HL_BC)
	set(0x0A, "LD A,(BC)", 1, 2, opLD_A_BC)
	set(0x0B, "DEC BC", 1, 2, opDEC_BC)
	set(0x0C, "INC C", 1, 1, opINC_C)
	set(0x0D, "DEC C", 1, 1, opDEC_C)
	set(0x0E, "LD C,d8", 2, 2, opLD_C_d8)
	set(0x0F, "RRCA", 1, 1, opRRCA)

	set(0x10, "STOP", 2, 1, opSTOP)
	set(0x11, "LD DE,d16", 3, 3, opLD_DE_d16)
	set(0x12, "LD (DE),A", 1, 2, opLD_DE_A)
	set(0x13, "INC DE", 1, 2, opINC_DE)
	set(0x14, "INC D", 1, 1, opINC_D)
	set(0x15, "DEC D", 1, 1, opDEC_D)
	set(0x16, "LD D,d8", 2, 2, opLD_D_d8)
	set(0x17, "RLA", 1, 1, opRLA)
	set(0x18, "JR r8", 2, 3, opJR_s8)
	set(0x19, "ADD HL,DE", 1, 2, opADD_HL_DE)
	set(0x1A, "LD A,(DE)", 1, 2, opLD_A_DE)
	set(0x1B, "DEC DE", 1, 2, opDEC_DE)
	set(0x1C, "INC E", 1, 1, opINC_E)
	set(0x1D, "DEC E", 1, 1, opDEC_E)
	set(0x1E, "LD E,d8", 2, 2, opLD_E_d8)

	set(0x21, "LD HL,d16", 3, 3, opLD_HL_d16)
	set(0x3E, "LD A,d8", 2, 2, opLD_A_d8)
	set(0x47, "LD B,A", 1, 1, opLD_B_A)
	set(0x76, "HALT", 1, 1, opHALT)
	set(0x78, "LD A,B", 1, 1, opLD_A_B)
	set(0xC3, "JP a16", 3, 4, opJP_d16)
}

// installLoadRegisterBlock generates the 0x40-0x7F LD r,r' block (64
// opcodes, skipping 0x76 which HALT already occupies) from regGet/regSet.
func installLoadRegisterBlock() {
	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			op := 0x40 + dst*8 + src
			if op == 0x76 {
				continue // HALT, not LD (HL),(HL)
			}
			if opcodeTable[op].handler != nil {
				continue // literal table already covered it (LD B,A / LD A,B)
			}
			d, s := dst, src
			length, cycles := byte(1), uint32(1)
			if d == 6 || s == 6 {
				cycles = 2
			}
			opcodeTable[op] = opcodeEntry{
				name:   "LD " + regNames[d] + "," + regNames[s],
				length: length,
				cycles: cycles,
				handler: func(c *Cpu) uint32 {
					c.regSet(d, c.regGet(s))
					return 0
				},
			}
		}
	}
}

// installALUBlock generates the 0x80-0xBF register/(HL) ALU block and its
// eight 0xC6-row immediate-operand siblings, from the five ALU
// primitives (aluAdd, aluSub, aluAnd, aluXor, aluOr) in instructions.go.
func installALUBlock() {
	type aluOp struct {
		name string
		fn   func(c *Cpu, v byte)
	}
	ops := [8]aluOp{
		{"ADD", func(c *Cpu, v byte) { c.aluAdd(v, false) }},
		{"ADC", func(c *Cpu, v byte) { c.aluAdd(v, true) }},
		{"SUB", func(c *Cpu, v byte) { c.A = c.aluSub(v, false) }},
		{"SBC", func(c *Cpu, v byte) { c.A = c.aluSub(v, true) }},
		{"AND", func(c *Cpu, v byte) { c.aluAnd(v) }},
		{"XOR", func(c *Cpu, v byte) { c.aluXor(v) }},
		{"OR", func(c *Cpu, v byte) { c.aluOr(v) }},
		{"CP", func(c *Cpu, v byte) { c.aluSub(v, false) }}, // CP: flags only
	}

	for row := byte(0); row < 8; row++ {
		op := ops[row]
		for src := byte(0); src < 8; src++ {
			code := 0x80 + row*8 + src
			s := src
			fn := op.fn
			cycles := uint32(1)
			if s == 6 {
				cycles = 2
			}
			opcodeTable[code] = opcodeEntry{
				name:   op.name + " A," + regNames[s],
				length: 1,
				cycles: cycles,
				handler: func(c *Cpu) uint32 {
					fn(c, c.regGet(s))
					return 0
				},
			}
		}

		immCode := [8]byte{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE}[row]
		fn := op.fn
		opcodeTable[immCode] = opcodeEntry{
			name:   op.name + " A,d8",
			length: 2,
			cycles: 2,
			handler: func(c *Cpu) uint32 {
				fn(c, c.fetch8())
				return 0
			},
		}
	}
}

// installIncDecBlock generates INC r/DEC r for the four 8-bit operands
// spec.md's literal table didn't already cover (H, L, (HL) and A),
// following the same stride-8 opcode pattern as B/C/D/E above.
func installIncDecBlock() {
	targets := [4]byte{4, 5, 6, 7} // H, L, (HL), A
	for _, idx := range targets {
		t := idx
		incOp := 0x04 + t*8
		decOp := 0x05 + t*8
		cycles := uint32(1)
		if t == 6 {
			cycles = 3
		}
		opcodeTable[incOp] = opcodeEntry{
			name: "INC " + regNames[t], length: 1, cycles: cycles,
			handler: func(c *Cpu) uint32 { c.regSet(t, incReg(c, c.regGet(t))); return 0 },
		}
		opcodeTable[decOp] = opcodeEntry{
			name: "DEC " + regNames[t], length: 1, cycles: cycles,
			handler: func(c *Cpu) uint32 { c.regSet(t, decReg(c, c.regGet(t))); return 0 },
		}
	}

	// (HL) costs two cycles more than the plain-register form (the loop
	// above already charges 3); these entries replace the loop's index-6
	// handlers with the dedicated opINC_HLind/opDEC_HLind.
	opcodeTable[0x34] = opcodeEntry{name: "INC (HL)", length: 1, cycles: 3, handler: opINC_HLind}
	opcodeTable[0x35] = opcodeEntry{name: "DEC (HL)", length: 1, cycles: 3, handler: opDEC_HLind}

	opcodeTable[0x2A] = opcodeEntry{name: "LD A,(HL+)", length: 1, cycles: 2, handler: opLD_A_HL_inc}
	opcodeTable[0x22] = opcodeEntry{name: "LD (HL+),A", length: 1, cycles: 2, handler: opLD_HL_inc_A}
	opcodeTable[0x3A] = opcodeEntry{name: "LD A,(HL-)", length: 1, cycles: 2, handler: opLD_A_HL_dec}
	opcodeTable[0x32] = opcodeEntry{name: "LD (HL-),A", length: 1, cycles: 2, handler: opLD_HL_dec_A}
	opcodeTable[0x36] = opcodeEntry{name: "LD (HL),d8", length: 2, cycles: 3, handler: opLD_HLind_d8}
}

// installPairBlock generates LD rr,d16 / INC rr / DEC rr / ADD HL,rr for
// BC, DE, HL and SP from the pairs accessor table. BC/DE's forms and LD
// HL,d16 are already in the literal table above and are skipped, so this
// adds INC/DEC/ADD for HL and all four forms for SP.
func installPairBlock() {
	base := [4]byte{0x00, 0x10, 0x20, 0x30} // row base for BC,DE,HL,SP
	for i, p := range pairs {
		row := base[i]
		pr := p

		ldOp := row + 0x01
		incOp := row + 0x03
		decOp := row + 0x0B
		addOp := row + 0x09

		if opcodeTable[ldOp].handler == nil {
			opcodeTable[ldOp] = opcodeEntry{
				name: "LD " + pr.name + ",d16", length: 3, cycles: 3,
				handler: func(c *Cpu) uint32 { pr.set(c, c.fetch16()); return 0 },
			}
		}
		if opcodeTable[incOp].handler == nil {
			opcodeTable[incOp] = opcodeEntry{
				name: "INC " + pr.name, length: 1, cycles: 2,
				handler: func(c *Cpu) uint32 { pr.set(c, pr.get(c)+1); return 0 },
			}
		}
		if opcodeTable[decOp].handler == nil {
			opcodeTable[decOp] = opcodeEntry{
				name: "DEC " + pr.name, length: 1, cycles: 2,
				handler: func(c *Cpu) uint32 { pr.set(c, pr.get(c)-1); return 0 },
			}
		}
		if opcodeTable[addOp].handler == nil {
			opcodeTable[addOp] = opcodeEntry{
				name: "ADD HL," + pr.name, length: 1, cycles: 2,
				handler: func(c *Cpu) uint32 { addHL(c, pr.get(c)); return 0 },
			}
		}
	}

	opcodeTable[0xF9] = opcodeEntry{name: "LD SP,HL", length: 1, cycles: 2, handler: opLD_SP_HL}
	opcodeTable[0xE8] = opcodeEntry{name: "ADD SP,r8", length: 2, cycles: 4, handler: opADD_SP_s8}
	opcodeTable[0xF8] = opcodeEntry{name: "LD HL,SP+r8", length: 2, cycles: 3, handler: opLD_HL_SPs8}
}

// installStackBlock generates PUSH rr/POP rr for BC, DE, HL, AF.
func installStackBlock() {
	pushBase := [4]byte{0xC5, 0xD5, 0xE5, 0xF5}
	popBase := [4]byte{0xC1, 0xD1, 0xE1, 0xF1}
	for i, s := range stackPairs {
		sp := s
		opcodeTable[pushBase[i]] = opcodeEntry{
			name: "PUSH " + sp.name, length: 1, cycles: 4,
			handler: func(c *Cpu) uint32 { c.push16(sp.get(c)); return 0 },
		}
		opcodeTable[popBase[i]] = opcodeEntry{
			name: "POP " + sp.name, length: 1, cycles: 3,
			handler: func(c *Cpu) uint32 { sp.set(c, c.pop16()); return 0 },
		}
	}
}

// installBranchBlock generates the conditional JR/JP/CALL/RET quartets
// and the always-taken control-flow instructions (JP, CALL, RET, RETI,
// RST, JP (HL)) that round out spec.md's single literal JP a16 entry.
func installBranchBlock() {
	for i, cond := range conditions {
		cnd := cond

		jrOp := byte(0x20 + i*8)
		opcodeTable[jrOp] = opcodeEntry{
			name: "JR " + cnd.name + ",r8", length: 2, cycles: 2,
			handler: func(c *Cpu) uint32 {
				s := c.fetchSigned8()
				if cnd.test(c) {
					c.PC = uint16(int32(c.PC) + int32(s))
					return 1
				}
				return 0
			},
		}

		jpOp := byte(0xC2 + i*8)
		opcodeTable[jpOp] = opcodeEntry{
			name: "JP " + cnd.name + ",a16", length: 3, cycles: 3,
			handler: func(c *Cpu) uint32 {
				target := c.fetch16()
				if cnd.test(c) {
					c.PC = target
					return 1
				}
				return 0
			},
		}

		callOp := byte(0xC4 + i*8)
		opcodeTable[callOp] = opcodeEntry{
			name: "CALL " + cnd.name + ",a16", length: 3, cycles: 3,
			handler: func(c *Cpu) uint32 {
				target := c.fetch16()
				if cnd.test(c) {
					c.push16(c.PC)
					c.PC = target
					return 3
				}
				return 0
			},
		}

		retOp := byte(0xC0 + i*8)
		opcodeTable[retOp] = opcodeEntry{
			name: "RET " + cnd.name, length: 1, cycles: 2,
			handler: func(c *Cpu) uint32 {
				if cnd.test(c) {
					c.PC = c.pop16()
					return 3
				}
				return 0
			},
		}
	}

	opcodeTable[0xCD] = opcodeEntry{
		name: "CALL a16", length: 3, cycles: 6,
		handler: func(c *Cpu) uint32 {
			target := c.fetch16()
			c.push16(c.PC)
			c.PC = target
			return 0
		},
	}
	opcodeTable[0xC9] = opcodeEntry{
		name: "RET", length: 1, cycles: 4,
		handler: func(c *Cpu) uint32 { c.PC = c.pop16(); return 0 },
	}
	opcodeTable[0xD9] = opcodeEntry{
		name: "RETI", length: 1, cycles: 4,
		handler: func(c *Cpu) uint32 { c.PC = c.pop16(); c.IME = true; return 0 },
	}
	opcodeTable[0xE9] = opcodeEntry{name: "JP (HL)", length: 1, cycles: 1, handler: opJP_HL}

	for n := byte(0); n < 8; n++ {
		vec := uint16(n) * 8
		op := byte(0xC7 + n*8)
		opcodeTable[op] = opcodeEntry{
			name: "RST " + hexByte(byte(vec)) + "H", length: 1, cycles: 4,
			handler: func(c *Cpu) uint32 { c.push16(c.PC); c.PC = vec; return 0 },
		}
	}
}

// installMiscOpcodes wires the remaining single-purpose opcodes: flag
// instructions, DI/EI, the LDH/LD(C) family, DAA/CPL, and the 0xCB
// prefix itself.
func installMiscOpcodes() {
	opcodeTable[0x27] = opcodeEntry{name: "DAA", length: 1, cycles: 1, handler: opDAA}
	opcodeTable[0x2F] = opcodeEntry{name: "CPL", length: 1, cycles: 1, handler: opCPL}
	opcodeTable[0x37] = opcodeEntry{name: "SCF", length: 1, cycles: 1, handler: opSCF}
	opcodeTable[0x3F] = opcodeEntry{name: "CCF", length: 1, cycles: 1, handler: opCCF}
	opcodeTable[0xF3] = opcodeEntry{name: "DI", length: 1, cycles: 1, handler: opDI}
	opcodeTable[0xFB] = opcodeEntry{name: "EI", length: 1, cycles: 1, handler: opEI}

	opcodeTable[0xE0] = opcodeEntry{name: "LDH (a8),A", length: 2, cycles: 3, handler: opLDH_a8_A}
	opcodeTable[0xF0] = opcodeEntry{name: "LDH A,(a8)", length: 2, cycles: 3, handler: opLDH_A_a8}
	opcodeTable[0xE2] = opcodeEntry{name: "LD (C),A", length: 1, cycles: 2, handler: opLD_Cind_A}
	opcodeTable[0xF2] = opcodeEntry{name: "LD A,(C)", length: 1, cycles: 2, handler: opLD_A_Cind}
	opcodeTable[0xEA] = opcodeEntry{name: "LD (a16),A", length: 3, cycles: 4, handler: opLD_a16_A}
	opcodeTable[0xFA] = opcodeEntry{name: "LD A,(a16)", length: 3, cycles: 4, handler: opLD_A_a16}

	opcodeTable[0xCB] = opcodeEntry{name: "PREFIX CB", length: 2, cycles: 1, handler: opCB}
}

func hexByte(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0x0F]})
}

// installCBTable generates every 0xCB-prefixed opcode: the eight
// rotate/shift/swap operations over all eight operand registers (rows
// 0x00-0x3F), then BIT/RES/SET over all eight bits and all eight operand
// registers (rows 0x40-0xFF). This is the one place a loop generates a
// full opcode block wholesale rather than filling in gaps a literal
// table left open, since the CB page is entirely regular.
func installCBTable() {
	type rotOp struct {
		name string
		fn   func(c *Cpu, v byte) byte
	}
	rotOps := [8]rotOp{
		{"RLC", rlc},
		{"RRC", rrc},
		{"RL", rl},
		{"RR", rr},
		{"SLA", sla},
		{"SRA", sra},
		{"SWAP", swap},
		{"SRL", srl},
	}

	for row := byte(0); row < 8; row++ {
		op := rotOps[row]
		for r := byte(0); r < 8; r++ {
			code := row*8 + r
			reg := r
			fn := op.fn
			cycles := uint32(2)
			if reg == 6 {
				cycles = 4
			}
			cbTable[code] = opcodeEntry{
				name: op.name + " " + regNames[reg], length: 2, cycles: cycles,
				handler: func(c *Cpu) uint32 {
					c.regSet(reg, fn(c, c.regGet(reg)))
					return 0
				},
			}
		}
	}

	for bit := byte(0); bit < 8; bit++ {
		for r := byte(0); r < 8; r++ {
			reg := r
			b := bit

			bitCode := 0x40 + bit*8 + r
			cbTable[bitCode] = opcodeEntry{
				name: "BIT " + hexDigit(bit) + "," + regNames[reg], length: 2, cycles: cbCycles(reg, 2, 3),
				handler: func(c *Cpu) uint32 {
					c.setFlag(FlagZ, !maskTestBit(c.regGet(reg), b))
					c.setFlag(FlagN, false)
					c.setFlag(FlagH, true)
					return 0
				},
			}

			resCode := 0x80 + bit*8 + r
			cbTable[resCode] = opcodeEntry{
				name: "RES " + hexDigit(bit) + "," + regNames[reg], length: 2, cycles: cbCycles(reg, 2, 4),
				handler: func(c *Cpu) uint32 {
					c.regSet(reg, maskClearBit(c.regGet(reg), b))
					return 0
				},
			}

			setCode := 0xC0 + bit*8 + r
			cbTable[setCode] = opcodeEntry{
				name: "SET " + hexDigit(bit) + "," + regNames[reg], length: 2, cycles: cbCycles(reg, 2, 4),
				handler: func(c *Cpu) uint32 {
					c.regSet(reg, maskSetBit(c.regGet(reg), b))
					return 0
				},
			}
		}
	}
}

// maskTestBit, maskClearBit and maskSetBit translate the CB page's
// 0-indexed-from-LSB bit numbering into mask's 1-indexed-from-MSB
// byteIndex constants (mask.I1 = bit 7 downward to mask.I8 = bit 0), so
// BIT/RES/SET go through the same bit-range primitives as the rest of
// the cpu package's flag and nibble math.
func maskTestBit(v byte, bit byte) bool {
	switch bit {
	case 0:
		return mask.IsSet(v, mask.I8)
	case 1:
		return mask.IsSet(v, mask.I7)
	case 2:
		return mask.IsSet(v, mask.I6)
	case 3:
		return mask.IsSet(v, mask.I5)
	case 4:
		return mask.IsSet(v, mask.I4)
	case 5:
		return mask.IsSet(v, mask.I3)
	case 6:
		return mask.IsSet(v, mask.I2)
	default:
		return mask.IsSet(v, mask.I1)
	}
}

func maskClearBit(v byte, bit byte) byte {
	switch bit {
	case 0:
		return mask.Unset(v, mask.I8, mask.I8)
	case 1:
		return mask.Unset(v, mask.I7, mask.I7)
	case 2:
		return mask.Unset(v, mask.I6, mask.I6)
	case 3:
		return mask.Unset(v, mask.I5, mask.I5)
	case 4:
		return mask.Unset(v, mask.I4, mask.I4)
	case 5:
		return mask.Unset(v, mask.I3, mask.I3)
	case 6:
		return mask.Unset(v, mask.I2, mask.I2)
	default:
		return mask.Unset(v, mask.I1, mask.I1)
	}
}

func maskSetBit(v byte, bit byte) byte {
	switch bit {
	case 0:
		return mask.Set(v, mask.I8, 1)
	case 1:
		return mask.Set(v, mask.I7, 1)
	case 2:
		return mask.Set(v, mask.I6, 1)
	case 3:
		return mask.Set(v, mask.I5, 1)
	case 4:
		return mask.Set(v, mask.I4, 1)
	case 5:
		return mask.Set(v, mask.I3, 1)
	case 6:
		return mask.Set(v, mask.I2, 1)
	default:
		return mask.Set(v, mask.I1, 1)
	}
}

func cbCycles(reg byte, plain, indirect uint32) uint32 {
	if reg == 6 {
		return indirect
	}
	return plain
}

func hexDigit(b byte) string {
	const digits = "0123456789ABCDEF"
	return string(digits[b&0x0F])
}

func rlc(c *Cpu, v byte) byte {
	result := v<<1 | v>>7
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, v&0x80 != 0)
	return result
}

func rrc(c *Cpu, v byte) byte {
	result := v>>1 | v<<7
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, v&0x01 != 0)
	return result
}

func rl(c *Cpu, v byte) byte {
	var cin byte
	if c.getFlag(FlagC) {
		cin = 1
	}
	result := v<<1 | cin
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, v&0x80 != 0)
	return result
}

func rr(c *Cpu, v byte) byte {
	var cin byte
	if c.getFlag(FlagC) {
		cin = 0x80
	}
	result := v>>1 | cin
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, v&0x01 != 0)
	return result
}

func sla(c *Cpu, v byte) byte {
	result := v << 1
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, v&0x80 != 0)
	return result
}

func sra(c *Cpu, v byte) byte {
	result := v>>1 | v&0x80
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, v&0x01 != 0)
	return result
}

func swap(c *Cpu, v byte) byte {
	result := v<<4 | v>>4
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, false)
	return result
}

func srl(c *Cpu, v byte) byte {
	result := v >> 1
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, v&0x01 != 0)
	return result
}
