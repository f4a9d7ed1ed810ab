package abibind

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Call represents an encoded contract call that has not been dispatched.
// Call is immutable - modifier methods return new instances.
type Call struct {
	contract *Contract
	function FunctionDescriptor
	data     []byte
	value    *big.Int // nil unless WithValue was used
	static   bool     // force eth_call even for state-changing functions
}

// newCall encodes args for fn and wraps the result.
func newCall(contract *Contract, fn FunctionDescriptor, args []any) (*Call, error) {
	data, err := encodeFunction(fn, args)
	if err != nil {
		return nil, err
	}
	return &Call{
		contract: contract,
		function: fn,
		data:     data,
	}, nil
}

// Contract returns the target contract for this call.
func (c *Call) Contract() *Contract {
	return c.contract
}

// Function returns the descriptor of the called function.
func (c *Call) Function() FunctionDescriptor {
	return c.function
}

// Data returns a copy of the calldata.
func (c *Call) Data() []byte {
	return bytes.Clone(c.data)
}

// Selector returns the 4-byte function selector.
func (c *Call) Selector() [4]byte {
	return c.function.Selector()
}

// Value returns the attached value (nil if none).
func (c *Call) Value() *big.Int {
	if c.value == nil {
		return nil
	}
	return new(big.Int).Set(c.value)
}

// IsStatic returns true if the call will be dispatched as eth_call.
func (c *Call) IsStatic() bool {
	return c.static || c.function.IsConstant()
}

// WithValue attaches value to the call. Only valid for payable functions;
// the check happens when the call is dispatched.
//
// Returns a new Call with the value set.
func (c *Call) WithValue(amount *big.Int) *Call {
	clone := *c
	if amount != nil {
		clone.value = new(big.Int).Set(amount)
	} else {
		clone.value = nil
	}
	return &clone
}

// Static forces the call to be simulated with eth_call, even for
// state-changing functions.
//
// Returns a new Call with the static flag set.
func (c *Call) Static() *Call {
	clone := *c
	clone.static = true
	return &clone
}

// Request returns the dispatchable form of the call.
func (c *Call) Request() *CallRequest {
	req := &CallRequest{
		To:        c.contract.address,
		Data:      c.data,
		Value:     c.value,
		Signature: c.function.signature,
	}
	return req.clone()
}

// validate checks the attached value against the function mutability.
func (c *Call) validate() error {
	if c.value != nil && c.value.Sign() > 0 && !c.function.IsPayable() {
		return fmt.Errorf("%w: %s", ErrNotPayable, c.function.signature)
	}
	if c.contract.exec == nil {
		return ErrNoExecutionContext
	}
	return nil
}

// Read dispatches the call as a read and decodes the outputs.
func (c *Call) Read(ctx context.Context) ([]any, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	log := c.contract.logger()
	log.Debug("calling contract",
		zap.String("method", c.function.signature),
		zap.Stringer("to", c.contract.address),
		zap.Int("calldata", len(c.data)),
	)

	out, err := c.contract.exec.CallContract(ctx, c.Request())
	if err != nil {
		if data, ok := revertData(err); ok {
			return nil, c.contract.decoder.DecodeRevert(data)
		}
		return nil, fmt.Errorf("abibind: call %s: %w", c.function.signature, err)
	}

	results, err := c.function.method.Outputs.Unpack(out)
	if err != nil {
		return nil, &EncodingError{Type: c.function.signature, Value: out, Err: err}
	}
	return results, nil
}

// Send dispatches the call as a transaction.
func (c *Call) Send(ctx context.Context) (*types.Transaction, error) {
	if c.IsStatic() {
		return nil, fmt.Errorf("%w: %s", ErrConstantMethod, c.function.signature)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	log := c.contract.logger()
	log.Debug("sending transaction",
		zap.String("method", c.function.signature),
		zap.Stringer("to", c.contract.address),
		zap.Int("calldata", len(c.data)),
	)

	tx, err := c.contract.exec.SendTransaction(ctx, c.Request())
	if err != nil {
		if data, ok := revertData(err); ok {
			return nil, c.contract.decoder.DecodeRevert(data)
		}
		return nil, fmt.Errorf("abibind: transact %s: %w", c.function.signature, err)
	}

	log.Debug("transaction sent",
		zap.String("method", c.function.signature),
		zap.Stringer("hash", tx.Hash()),
	)
	return tx, nil
}

// EstimateGas estimates the gas the call would use.
func (c *Call) EstimateGas(ctx context.Context) (uint64, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	estimator, ok := c.contract.exec.(GasEstimator)
	if !ok {
		return 0, ErrGasEstimation
	}
	return estimator.EstimateGas(ctx, c.Request())
}
