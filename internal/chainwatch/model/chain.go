package model

import "fmt"

// Chain identifies a supported blockchain network.
type Chain string

var (
	Sui      Chain = "sui"
	Near     Chain = "near"
	Bitcoin  Chain = "bitcoin"
	Ethereum Chain = "ethereum"
)

// Chains lists every chain the indexer knows how to parse.
var Chains = []Chain{Sui, Near, Bitcoin, Ethereum}

// ParseChain converts a configuration value to a Chain.
func ParseChain(s string) (Chain, error) {
	for _, c := range Chains {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported chain %q", s)
}

// AssetID returns the native asset identifier of the chain.
func (c Chain) AssetID() string {
	return string(c)
}
