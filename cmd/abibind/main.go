// Command abibind generates typed contract bindings and encodes, decodes and
// dispatches calls from the command line.
//
//	abibind generate --abi bedroomnft.abi.json --pkg bedroomnft --type BedroomNftInterface --out bedroomnft.go
//	abibind encode --abi bedroomnft.abi.json mintingBedroomNft 1 100 2 0xAbC1230000000000000000000000000000000000
//	abibind decode --abi bedroomnft.abi.json 0x385c34c6...
//	abibind call --abi erc20.abi.json --rpc http://localhost:8545 --address 0x... balanceOf 0x...
//
// Every flag can also be set through an ABIBIND_ environment variable
// (ABIBIND_RPC, ABIBIND_ABI, ...) or a YAML file passed with --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "abibind: %v\n", err)
		os.Exit(1)
	}
}
