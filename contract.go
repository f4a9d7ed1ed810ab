package abibind

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Contract is a Table bound to an address and an execution context.
// Contract values are immutable; Attach and WithExecutionContext return copies.
type Contract struct {
	address common.Address
	table   *Table
	decoder *InterfaceDecoder
	exec    ExecutionContext
	config  *contractConfig
}

// Connect validates address and binds it, together with exec, to t.
// exec may be nil, in which case the contract can only encode calls.
func Connect(t *Table, address string, exec ExecutionContext, opts ...ContractOption) (*Contract, error) {
	decoder, err := NewInterfaceDecoder(t)
	if err != nil {
		return nil, err
	}

	cfg := defaultContractConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	addr, err := parseAddress(address, cfg.strictChecksum)
	if err != nil {
		return nil, err
	}

	return &Contract{
		address: addr,
		table:   t,
		decoder: decoder,
		exec:    exec,
		config:  cfg,
	}, nil
}

// Address returns the contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

// Table returns the contract's ABI table.
func (c *Contract) Table() *Table {
	return c.table
}

// Interface returns the decoder for the contract's table.
func (c *Contract) Interface() *InterfaceDecoder {
	return c.decoder
}

// ExecutionContext returns the execution context, or nil.
func (c *Contract) ExecutionContext() ExecutionContext {
	return c.exec
}

// Attach returns a copy of the contract bound to another address.
func (c *Contract) Attach(address string) (*Contract, error) {
	addr, err := parseAddress(address, c.config.strictChecksum)
	if err != nil {
		return nil, err
	}
	clone := *c
	clone.address = addr
	return &clone, nil
}

// WithExecutionContext returns a copy of the contract using exec.
func (c *Contract) WithExecutionContext(exec ExecutionContext) *Contract {
	clone := *c
	clone.exec = exec
	return &clone
}

// HasMethod returns true if sigOrName resolves to exactly one function.
func (c *Contract) HasMethod(sigOrName string) bool {
	_, err := c.table.Lookup(sigOrName)
	return err == nil
}

// MethodNames returns the function names in declaration order.
// Overloaded names appear once per overload.
func (c *Contract) MethodNames() []string {
	names := make([]string, 0, c.table.Len())
	for _, fn := range c.table.functions {
		names = append(names, fn.Name)
	}
	return names
}

// Signatures returns the function signatures in declaration order.
func (c *Contract) Signatures() []string {
	sigs := make([]string, 0, c.table.Len())
	for _, fn := range c.table.functions {
		sigs = append(sigs, fn.signature)
	}
	return sigs
}

// Invoke encodes a call of the given function with args.
func (c *Contract) Invoke(sigOrName string, args ...any) (*Call, error) {
	fn, err := c.table.Lookup(sigOrName)
	if err != nil {
		return nil, err
	}
	return newCall(c, fn, args)
}

// MustInvoke is like Invoke but panics on error.
func (c *Contract) MustInvoke(sigOrName string, args ...any) *Call {
	call, err := c.Invoke(sigOrName, args...)
	if err != nil {
		panic(err)
	}
	return call
}

// Populate returns the request that would be dispatched for the call.
func (c *Contract) Populate(sigOrName string, args ...any) (*CallRequest, error) {
	call, err := c.Invoke(sigOrName, args...)
	if err != nil {
		return nil, err
	}
	return call.Request(), nil
}

// Call performs a read-only call and returns the decoded outputs.
func (c *Contract) Call(ctx context.Context, sigOrName string, args ...any) ([]any, error) {
	call, err := c.Invoke(sigOrName, args...)
	if err != nil {
		return nil, err
	}
	return call.Read(ctx)
}

// Transact submits a state-changing call.
func (c *Contract) Transact(ctx context.Context, sigOrName string, args ...any) (*types.Transaction, error) {
	call, err := c.Invoke(sigOrName, args...)
	if err != nil {
		return nil, err
	}
	return call.Send(ctx)
}

// EstimateGas estimates the gas of a call if the execution context supports it.
func (c *Contract) EstimateGas(ctx context.Context, sigOrName string, args ...any) (uint64, error) {
	call, err := c.Invoke(sigOrName, args...)
	if err != nil {
		return 0, err
	}
	return call.EstimateGas(ctx)
}

func (c *Contract) logger() *zap.Logger {
	return c.config.logger
}

// revertData extracts revert data carried by an rpc error, if any.
func revertData(err error) ([]byte, bool) {
	var de interface{ ErrorData() interface{} }
	if !errors.As(err, &de) {
		return nil, false
	}
	s, ok := de.ErrorData().(string)
	if !ok {
		return nil, false
	}
	data, decodeErr := hexutil.Decode(s)
	if decodeErr != nil || len(data) < 4 {
		return nil, false
	}
	return data, true
}
