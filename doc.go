// Package abibind provides typed, ABI-driven bindings for Ethereum smart
// contracts and the runtime that generated bindings delegate to.
//
// A binding is built from three pieces:
//
//   - a Table, the parsed and validated ABI description, kept byte-for-byte
//   - an InterfaceDecoder, which encodes calls and decodes call, return and
//     revert data for the functions of a Table
//   - a Contract, a Table bound to an address and an ExecutionContext
//
// # Basic Usage
//
//	table := abibind.MustParseTable([]byte(tokenABIJSON))
//
//	// Encode offline
//	dec, _ := abibind.NewInterfaceDecoder(table)
//	data, err := dec.EncodeCall("transfer(address,uint256)", recipient, big.NewInt(10))
//
//	// Dispatch through a node
//	exec, client, err := abibind.Dial(ctx, "http://localhost:8545", key, nil)
//	defer client.Close()
//	token, err := abibind.Connect(table, "0x2222222222222222222222222222222222222222", exec)
//	tx, err := token.Transact(ctx, "transfer", recipient, big.NewInt(10))
//
// # Function Lookup
//
// Functions are looked up by full signature, e.g. "transfer(address,uint256)".
// A bare name is accepted when it is not overloaded; otherwise an
// *AmbiguousMethodError lists the candidate signatures.
//
// # Argument Conversion
//
// Arguments are converted to the declared Solidity types before packing.
// Integers accept any Go integer kind, *big.Int, *uint256.Int and numeric
// strings; addresses accept common.Address and hex strings. Negative values
// for unsigned types, non-integral numbers and out-of-range values are
// rejected with an *EncodingError instead of being truncated.
//
// # Execution Contexts
//
// Signing, transport, gas and nonce management belong to the ExecutionContext.
// BackendContext adapts any go-ethereum bind.ContractBackend, such as an
// *ethclient.Client; tests can supply their own implementation.
//
// # Code Generation
//
// The bindgen package and the abibind command generate a typed Go artifact
// from an ABI. See the bedroomnft package for a generated example.
package abibind
