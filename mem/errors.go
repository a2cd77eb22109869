package mem

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidAddressError reports a read or write that falls outside every
// decoded region of the address space.
type InvalidAddressError struct {
	Address uint16
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address: 0x%04X", e.Address)
}

// ProhibitedWriteError reports a write into 0xFEA0-0xFEFF.
type ProhibitedWriteError struct {
	Address uint16
}

func (e *ProhibitedWriteError) Error() string {
	return fmt.Sprintf("prohibited write to 0x%04X", e.Address)
}

// UnsupportedMapperError reports a ROM header byte (0x0147) this core does
// not model.
type UnsupportedMapperError struct {
	Code byte
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper type: 0x%02X", e.Code)
}

func invalidAddress(addr uint16) error {
	return errors.WithStack(&InvalidAddressError{Address: addr})
}

func prohibitedWrite(addr uint16) error {
	return errors.WithStack(&ProhibitedWriteError{Address: addr})
}

func unsupportedMapper(code byte) error {
	return errors.WithStack(&UnsupportedMapperError{Code: code})
}
