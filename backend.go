package abibind

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// BackendContext is an ExecutionContext backed by a go-ethereum contract backend.
// Without transact options it is read-only.
type BackendContext struct {
	backend bind.ContractBackend
	opts    *bind.TransactOpts
}

var (
	_ ExecutionContext = (*BackendContext)(nil)
	_ GasEstimator     = (*BackendContext)(nil)
)

// NewBackendContext creates an execution context that reads and writes through
// backend. A nil opts makes the context read-only.
func NewBackendContext(backend bind.ContractBackend, opts *bind.TransactOpts) *BackendContext {
	return &BackendContext{backend: backend, opts: opts}
}

// NewReadOnlyContext creates an execution context that can only read.
func NewReadOnlyContext(backend bind.ContractBackend) *BackendContext {
	return &BackendContext{backend: backend}
}

// NewKeyedContext creates an execution context that signs with key for chainID.
func NewKeyedContext(backend bind.ContractBackend, key *ecdsa.PrivateKey, chainID *big.Int) *BackendContext {
	return &BackendContext{backend: backend, opts: keyedTransactor(key, chainID)}
}

// Dial connects to an RPC endpoint. With a nil key the context is read-only;
// with a nil chainID the chain ID is queried from the node.
func Dial(ctx context.Context, rawurl string, key *ecdsa.PrivateKey, chainID *big.Int) (*BackendContext, *ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, nil, fmt.Errorf("abibind: dial %s: %w", rawurl, err)
	}
	if key == nil {
		return NewReadOnlyContext(client), client, nil
	}
	if chainID == nil {
		chainID, err = client.ChainID(ctx)
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("abibind: chain id: %w", err)
		}
	}
	return NewKeyedContext(client, key, chainID), client, nil
}

func keyedTransactor(key *ecdsa.PrivateKey, chainID *big.Int) *bind.TransactOpts {
	from := crypto.PubkeyToAddress(key.PublicKey)
	signer := types.LatestSignerForChainID(chainID)
	return &bind.TransactOpts{
		From: from,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != from {
				return nil, fmt.Errorf("abibind: key for %s cannot sign for %s", from.Hex(), addr.Hex())
			}
			return types.SignTx(tx, signer, key)
		},
	}
}

// ReadOnly returns true if the context cannot send transactions.
func (b *BackendContext) ReadOnly() bool {
	return b.opts == nil
}

// From returns the sending account, or the zero address if read-only.
func (b *BackendContext) From() common.Address {
	if b.opts == nil {
		return common.Address{}
	}
	return b.opts.From
}

func (b *BackendContext) bound(to common.Address) *bind.BoundContract {
	return bind.NewBoundContract(to, abi.ABI{}, b.backend, b.backend, b.backend)
}

// CallContract implements ExecutionContext.
func (b *BackendContext) CallContract(ctx context.Context, req *CallRequest) ([]byte, error) {
	opts := &bind.CallOpts{Context: ctx, From: b.From()}
	return bind.Call(b.bound(req.To), opts, req.Data, func(out []byte) ([]byte, error) {
		return out, nil
	})
}

// SendTransaction implements ExecutionContext.
func (b *BackendContext) SendTransaction(ctx context.Context, req *CallRequest) (*types.Transaction, error) {
	if b.opts == nil {
		return nil, ErrReadOnly
	}
	opts := *b.opts
	opts.Context = ctx
	opts.Value = req.Value
	return bind.Transact(b.bound(req.To), &opts, req.Data)
}

// EstimateGas implements GasEstimator.
func (b *BackendContext) EstimateGas(ctx context.Context, req *CallRequest) (uint64, error) {
	to := req.To
	return b.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  b.From(),
		To:    &to,
		Data:  req.Data,
		Value: req.Value,
	})
}
