// Package bedroomnft is the generated binding of the BedroomNftInterface
// contract, which mints and upgrades bedroom NFTs.
//
// Both functions are state-changing and non-payable:
//
//	mintingBedroomNft(uint256 _designId, uint256 _price, uint256 _categorie, address _owner)
//	upgradeBedroomNft(uint256 _tokenId, uint256 _newDesignId, uint256 _amount)
//
// Regenerate bedroomnft.go after editing bedroomnft.abi.json.
package bedroomnft

//go:generate go run github.com/branched-services/go-abibind/cmd/abibind generate --abi bedroomnft.abi.json --pkg bedroomnft --type BedroomNftInterface --out bedroomnft.go
