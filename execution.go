package abibind

import (
	"bytes"
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CallRequest is a fully encoded call ready to be dispatched.
type CallRequest struct {
	To        common.Address
	Data      []byte
	Value     *big.Int // nil means no value
	Signature string   // informational, e.g. "transfer(address,uint256)"
}

// clone returns a deep copy so execution contexts can't alter a Call.
func (r *CallRequest) clone() *CallRequest {
	out := *r
	out.Data = bytes.Clone(r.Data)
	if r.Value != nil {
		out.Value = new(big.Int).Set(r.Value)
	}
	return &out
}

// ExecutionContext dispatches encoded calls to a chain. Implementations own
// signing, transport, gas and nonce handling; bindings never retry.
type ExecutionContext interface {
	// CallContract executes a read-only call and returns the raw return data.
	CallContract(ctx context.Context, req *CallRequest) ([]byte, error)

	// SendTransaction signs and submits a state-changing call.
	// Read-only contexts return ErrReadOnly.
	SendTransaction(ctx context.Context, req *CallRequest) (*types.Transaction, error)
}

// GasEstimator is implemented by execution contexts that can estimate gas.
type GasEstimator interface {
	EstimateGas(ctx context.Context, req *CallRequest) (uint64, error)
}
