package types

// Network represents supported chain networks.
type Network string

const (
	NetworkStacksMainnet Network = "stacks-mainnet"
	NetworkStacksTestnet Network = "stacks-testnet"
)

func (n Network) String() string {
	return string(n)
}
