package networkdefinition

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"bscscan_node/internal/app/port"
	"bscscan_node/internal/domain/entity"
)

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	BSC = entity.NetworkDefinition{
		ID:          entity.NetworkBSC,
		Name:        "BNB Smart Chain Mainnet",
		BaseURL:     "https://api.bscscan.com/api",
		ExplorerURL: "https://bscscan.com",
	}
	BSCTestnet = entity.NetworkDefinition{
		ID:          entity.NetworkBSCTestnet,
		Name:        "BNB Smart Chain Testnet",
		BaseURL:     "https://api-testnet.bscscan.com/api",
		ExplorerURL: "https://testnet.bscscan.com",
	}
)

// DefaultDefinitions returns the built-in explorer endpoints.
func DefaultDefinitions() []entity.NetworkDefinition {
	return []entity.NetworkDefinition{BSC, BSCTestnet}
}

// NetworkResolver resolves network identifiers against an immutable table.
type NetworkResolver struct {
	defs map[entity.NetworkID]entity.NetworkDefinition
}

var _ port.NetworkResolver = (*NetworkResolver)(nil)

// NewNetworkResolver builds a resolver from the built-in definitions plus overrides.
// An override with a known id replaces the built-in entry. Duplicate ids within
// overrides and unusable base URLs are rejected here so Resolve never hands out
// an empty or malformed URL.
func NewNetworkResolver(overrides []entity.NetworkDefinition) (*NetworkResolver, error) {
	defs := make(map[entity.NetworkID]entity.NetworkDefinition, len(overrides)+2)
	for _, def := range DefaultDefinitions() {
		defs[def.ID] = def
	}

	seen := make(map[entity.NetworkID]struct{}, len(overrides))
	for _, def := range overrides {
		def.ID = entity.NetworkID(strings.TrimSpace(string(def.ID)))
		if def.ID == "" {
			return nil, fmt.Errorf("network definition with base URL %q has no id", def.BaseURL)
		}
		if _, dup := seen[def.ID]; dup {
			return nil, fmt.Errorf("duplicate network definition %q", def.ID)
		}
		seen[def.ID] = struct{}{}

		if err := validateBaseURL(def.BaseURL); err != nil {
			return nil, fmt.Errorf("network %q: %w", def.ID, err)
		}
		if def.Name == "" {
			def.Name = string(def.ID)
		}
		defs[def.ID] = def
	}

	return &NetworkResolver{defs: defs}, nil
}

// Resolve returns the base URL registered for id.
func (r *NetworkResolver) Resolve(id entity.NetworkID) (string, error) {
	if id == "" {
		return "", entity.PreconditionError("network is required")
	}
	def, ok := r.defs[id]
	if !ok {
		return "", entity.ConfigurationError("unsupported network %q", id)
	}
	return def.BaseURL, nil
}

// Networks returns every known network definition, ordered by identifier.
func (r *NetworkResolver) Networks() []entity.NetworkDefinition {
	out := make([]entity.NetworkDefinition, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func validateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("base URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base URL %q must be an absolute http(s) URL", raw)
	}
	return nil
}
