package port

import (
	"context"

	"bscscan_node/internal/domain/entity"
)

// OperationRegistry is the static table of supported explorer operations.
type OperationRegistry interface {
	// Lookup returns the descriptor registered under id or one of its aliases.
	Lookup(id string) (entity.OperationDescriptor, error)
	// All returns every descriptor in table order.
	All() []entity.OperationDescriptor
}

// HTTPExecutor performs the single outbound call of an invocation and returns
// the decoded JSON payload.
type HTTPExecutor interface {
	Execute(ctx context.Context, spec entity.RequestSpec) (any, error)
}

// ActionService runs one action-node invocation end to end.
type ActionService interface {
	Execute(ctx context.Context, execCtx entity.ExecutionContext) (entity.ResultEnvelope, error)
}
