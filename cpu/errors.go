package cpu

import "fmt"

// UnimplementedOpcodeError reports that Step dispatched an opcode with no
// handler installed in the table. It carries the opcode byte and the PC
// at which it was fetched, so a driver can cite both in hexadecimal.
type UnimplementedOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}
