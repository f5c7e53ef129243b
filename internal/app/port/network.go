package port

import "bscscan_node/internal/domain/entity"

// NetworkResolver maps a network identifier to the explorer base URL serving it.
type NetworkResolver interface {
	// Resolve returns the base URL for id, or a configuration error for unknown ids.
	Resolve(id entity.NetworkID) (string, error)
	// Networks returns every known network definition, ordered by identifier.
	Networks() []entity.NetworkDefinition
}
