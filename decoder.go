package abibind

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	revertSelector = crypto.Keccak256([]byte("Error(string)"))[:4]
	panicSelector  = crypto.Keccak256([]byte("Panic(uint256)"))[:4]

	panicArgs = abi.Arguments{{Type: mustType("uint256")}}
)

func mustType(s string) abi.Type {
	t, err := abi.NewType(s, "", nil)
	if err != nil {
		panic(err)
	}
	return t
}

// InterfaceDecoder encodes call arguments and decodes call, return and
// revert data for the functions of a single Table.
type InterfaceDecoder struct {
	table *Table
}

// DecodedCall is calldata matched back to its function.
type DecodedCall struct {
	Function FunctionDescriptor
	Args     []any
}

// NewInterfaceDecoder creates a decoder bound to t.
func NewInterfaceDecoder(t *Table) (*InterfaceDecoder, error) {
	if !t.initialized() {
		return nil, &MalformedAbiError{Entry: -1, Err: errors.New("table not initialized, use ParseTable")}
	}
	return &InterfaceDecoder{table: t}, nil
}

// Table returns the table the decoder is bound to.
func (d *InterfaceDecoder) Table() *Table {
	return d.table
}

// Selector returns the 4-byte selector of a function.
func (d *InterfaceDecoder) Selector(sigOrName string) ([4]byte, error) {
	fn, err := d.table.Lookup(sigOrName)
	if err != nil {
		return [4]byte{}, err
	}
	return fn.Selector(), nil
}

// EncodeCall returns the selector followed by the ABI-encoded arguments.
func (d *InterfaceDecoder) EncodeCall(sigOrName string, args ...any) ([]byte, error) {
	fn, err := d.table.Lookup(sigOrName)
	if err != nil {
		return nil, err
	}
	return encodeFunction(fn, args)
}

func encodeFunction(fn FunctionDescriptor, args []any) ([]byte, error) {
	inputs := fn.method.Inputs
	if len(args) != len(inputs) {
		return nil, &ArgumentError{
			Method: fn.signature,
			Index:  min(len(args), len(inputs)),
			Err:    fmt.Errorf("%w: want %d, got %d", ErrArity, len(inputs), len(args)),
		}
	}

	converted := make([]any, len(args))
	for i, arg := range args {
		v, err := convertArg(inputs[i].Type, arg)
		if err != nil {
			return nil, &ArgumentError{Method: fn.signature, Index: i, Err: err}
		}
		converted[i] = v
	}

	packed, err := inputs.Pack(converted...)
	if err != nil {
		return nil, &EncodingError{Type: fn.signature, Value: args, Err: err}
	}

	sel := fn.Selector()
	data := make([]byte, 0, len(sel)+len(packed))
	data = append(data, sel[:]...)
	return append(data, packed...), nil
}

// DecodeCall matches calldata to a function by selector and unpacks its arguments.
func (d *InterfaceDecoder) DecodeCall(data []byte) (*DecodedCall, error) {
	if len(data) < 4 {
		return nil, &EncodingError{Type: "calldata", Value: data, Err: fmt.Errorf("need at least 4 bytes, got %d", len(data))}
	}

	var sel [4]byte
	copy(sel[:], data[:4])
	fn, ok := d.table.LookupSelector(sel)
	if !ok {
		return nil, &MethodNotFoundError{Method: fmt.Sprintf("0x%x", sel)}
	}

	args, err := fn.method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, &EncodingError{Type: fn.signature, Value: data, Err: err}
	}
	return &DecodedCall{Function: fn, Args: args}, nil
}

// DecodeResult unpacks the return data of a function.
func (d *InterfaceDecoder) DecodeResult(sigOrName string, data []byte) ([]any, error) {
	fn, err := d.table.Lookup(sigOrName)
	if err != nil {
		return nil, err
	}
	out, err := fn.method.Outputs.Unpack(data)
	if err != nil {
		return nil, &EncodingError{Type: fn.signature, Value: data, Err: err}
	}
	return out, nil
}

// DecodeRevert decodes revert data into a *RevertError. Error(string),
// Panic(uint256) and the custom errors declared in the table are recognised.
func (d *InterfaceDecoder) DecodeRevert(data []byte) *RevertError {
	rerr := &RevertError{Data: bytes.Clone(data)}
	if len(data) < 4 {
		return rerr
	}

	switch {
	case bytes.Equal(data[:4], revertSelector):
		if reason, err := abi.UnpackRevert(data); err == nil {
			rerr.Reason = reason
		}
	case bytes.Equal(data[:4], panicSelector):
		if out, err := panicArgs.Unpack(data[4:]); err == nil && len(out) == 1 {
			if code, ok := out[0].(*big.Int); ok {
				rerr.Code = code
			}
		}
	default:
		for name, e := range d.table.abi.Errors {
			if !bytes.Equal(data[:4], e.ID[:4]) {
				continue
			}
			if args, err := e.Inputs.Unpack(data[4:]); err == nil {
				rerr.Name = name
				rerr.Args = args
			}
			break
		}
	}
	return rerr
}
