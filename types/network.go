package types

// Network is a network known to the platform, either a public chain or a
// project-visible virtual one.
type Network struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	Slug          string `json:"slug,omitempty"`
	ChainID       string `json:"chain_id,omitempty"`
	Currency      string `json:"native_currency,omitempty"`
	ExplorerURL   string `json:"explorer_url,omitempty"`
	ForkSupported bool   `json:"fork_supported,omitempty"`
}
