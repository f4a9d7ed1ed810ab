package abibind

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
)

// Same table the bedroomnft artifact is generated from.
const bedroomABIJSON = `[{"inputs":[{"internalType":"uint256","name":"_designId","type":"uint256"},{"internalType":"uint256","name":"_price","type":"uint256"},{"internalType":"uint256","name":"_categorie","type":"uint256"},{"internalType":"address","name":"_owner","type":"address"}],"name":"mintingBedroomNft","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"uint256","name":"_tokenId","type":"uint256"},{"internalType":"uint256","name":"_newDesignId","type":"uint256"},{"internalType":"uint256","name":"_amount","type":"uint256"}],"name":"upgradeBedroomNft","outputs":[],"stateMutability":"nonpayable","type":"function"}]`

// Sample ABI JSON exercising overloads, outputs, payable functions and errors.
const testABIJSON = `[
	{
		"name": "add",
		"type": "function",
		"stateMutability": "pure",
		"inputs": [
			{"name": "a", "type": "uint256"},
			{"name": "b", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "uint256"}
		]
	},
	{
		"name": "transfer",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "bool"}
		]
	},
	{
		"name": "transfer",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "amount", "type": "uint256"},
			{"name": "memo", "type": "bytes"}
		],
		"outputs": [
			{"name": "", "type": "bool"}
		]
	},
	{
		"name": "deposit",
		"type": "function",
		"stateMutability": "payable",
		"inputs": [],
		"outputs": []
	},
	{
		"name": "getInfo",
		"type": "function",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [
			{"name": "owner", "type": "address"},
			{"name": "count", "type": "uint64"}
		]
	},
	{
		"name": "Transfer",
		"type": "event",
		"anonymous": false,
		"inputs": [
			{"name": "from", "type": "address", "indexed": true},
			{"name": "to", "type": "address", "indexed": true},
			{"name": "value", "type": "uint256", "indexed": false}
		]
	},
	{
		"name": "Unauthorized",
		"type": "error",
		"inputs": [
			{"name": "caller", "type": "address"}
		]
	}
]`

func bedroomTable(t *testing.T) *Table {
	t.Helper()
	table, err := ParseTable([]byte(bedroomABIJSON))
	if err != nil {
		t.Fatalf("Failed to parse bedroom table: %v", err)
	}
	return table
}

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := ParseTable([]byte(testABIJSON))
	if err != nil {
		t.Fatalf("Failed to parse test table: %v", err)
	}
	return table
}

// fakeExec records dispatched requests and replies with canned data.
type fakeExec struct {
	calls []*CallRequest
	sent  []*CallRequest
	ret   []byte
	err   error
	gas   uint64
	nonce uint64
}

func (f *fakeExec) CallContract(_ context.Context, req *CallRequest) ([]byte, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.ret, nil
}

func (f *fakeExec) SendTransaction(_ context.Context, req *CallRequest) (*types.Transaction, error) {
	f.sent = append(f.sent, req)
	if f.err != nil {
		return nil, f.err
	}
	value := req.Value
	if value == nil {
		value = new(big.Int)
	}
	to := req.To
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    f.nonce,
		To:       &to,
		Value:    value,
		Gas:      100000,
		GasPrice: big.NewInt(1),
		Data:     req.Data,
	})
	f.nonce++
	return tx, nil
}

// estimatingExec adds gas estimation to fakeExec.
type estimatingExec struct {
	fakeExec
}

func (e *estimatingExec) EstimateGas(_ context.Context, req *CallRequest) (uint64, error) {
	e.calls = append(e.calls, req)
	return e.gas, nil
}

// dataError mimics an rpc error carrying revert data.
type dataError struct {
	data string
}

func (e *dataError) Error() string          { return "execution reverted" }
func (e *dataError) ErrorData() interface{} { return e.data }
