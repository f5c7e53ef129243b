package entity

// NetworkID identifies an explorer deployment (e.g. "bsc", "bsc-testnet").
type NetworkID string

const (
	// NetworkBSC is the BNB Smart Chain mainnet explorer.
	NetworkBSC NetworkID = "bsc"
	// NetworkBSCTestnet is the BNB Smart Chain testnet explorer.
	NetworkBSCTestnet NetworkID = "bsc-testnet"
)

// NetworkDefinition binds a network identifier to the explorer API endpoint serving it.
type NetworkDefinition struct {
	ID          NetworkID `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	BaseURL     string    `json:"baseUrl" yaml:"baseURL"`
	ExplorerURL string    `json:"explorerUrl,omitempty" yaml:"explorerURL,omitempty"`
}
