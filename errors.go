package abibind

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for common failure conditions.
var (
	// ErrReadOnly indicates a write was dispatched through a read-only execution context.
	ErrReadOnly = errors.New("abibind: execution context is read-only")

	// ErrNoExecutionContext indicates a dispatch on a binding connected without a context.
	ErrNoExecutionContext = errors.New("abibind: no execution context")

	// ErrNotPayable indicates value was attached to a non-payable function.
	ErrNotPayable = errors.New("abibind: function is not payable")

	// ErrConstantMethod indicates a transaction was requested for a pure or view function.
	ErrConstantMethod = errors.New("abibind: function is pure or view")

	// ErrArity indicates the number of arguments doesn't match the function inputs.
	ErrArity = errors.New("abibind: wrong number of arguments")

	// ErrGasEstimation indicates the execution context cannot estimate gas.
	ErrGasEstimation = errors.New("abibind: execution context does not support gas estimation")
)

// InvalidAddressError indicates a string that is not a well-formed chain address.
type InvalidAddressError struct {
	Address string
	Reason  string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("abibind: invalid address %q: %s", e.Address, e.Reason)
}

// MalformedAbiError indicates a structurally invalid ABI description.
type MalformedAbiError struct {
	Entry int // -1 when the error concerns the whole document
	Name  string
	Err   error
}

func (e *MalformedAbiError) Error() string {
	switch {
	case e.Entry < 0:
		return fmt.Sprintf("abibind: malformed abi: %v", e.Err)
	case e.Name != "":
		return fmt.Sprintf("abibind: malformed abi entry %d (%s): %v", e.Entry, e.Name, e.Err)
	default:
		return fmt.Sprintf("abibind: malformed abi entry %d: %v", e.Entry, e.Err)
	}
}

func (e *MalformedAbiError) Unwrap() error {
	return e.Err
}

// EncodingError indicates a value that cannot be encoded as the declared type.
type EncodingError struct {
	Type  string
	Value any
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("abibind: cannot encode %T as %s: %v", e.Value, e.Type, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// MethodNotFoundError indicates the table doesn't have the requested function.
type MethodNotFoundError struct {
	Method string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("abibind: method %q not found", e.Method)
}

// AmbiguousMethodError indicates a bare name matched several overloads.
type AmbiguousMethodError struct {
	Method     string
	Candidates []string
}

func (e *AmbiguousMethodError) Error() string {
	return fmt.Sprintf("abibind: method %q is overloaded, use one of: %s",
		e.Method, strings.Join(e.Candidates, ", "))
}

// ArgumentError indicates an issue with a function argument.
type ArgumentError struct {
	Method string
	Index  int
	Err    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("abibind: argument %d for method %q: %v", e.Index, e.Method, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// RevertError is a decoded revert payload.
type RevertError struct {
	Reason string   // Error(string) message, if any
	Code   *big.Int // Panic(uint256) code, if any
	Name   string   // custom error name, if any
	Args   []any    // custom error arguments
	Data   []byte   // raw revert data
}

func (e *RevertError) Error() string {
	switch {
	case e.Code != nil:
		return fmt.Sprintf("abibind: execution reverted: panic 0x%x", e.Code)
	case e.Name != "":
		return fmt.Sprintf("abibind: execution reverted: %s%v", e.Name, e.Args)
	case e.Reason != "":
		return fmt.Sprintf("abibind: execution reverted: %s", e.Reason)
	default:
		return fmt.Sprintf("abibind: execution reverted: 0x%s", common.Bytes2Hex(e.Data))
	}
}
