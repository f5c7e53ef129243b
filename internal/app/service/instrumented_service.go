package service

import (
	"context"
	"errors"
	"time"

	"bscscan_node/internal/app/port"
	"bscscan_node/internal/domain/entity"
	"bscscan_node/internal/pkg/metrics"
)

const unknownLabel = "unknown"

type instrumentedActionService struct {
	next     port.ActionService
	registry port.OperationRegistry
	networks port.NetworkResolver
	metrics  *metrics.ActionMetrics
}

// NewInstrumentedActionService records Prometheus metrics around next. Label
// values are limited to ids known to registry and networks.
func NewInstrumentedActionService(
	next port.ActionService,
	registry port.OperationRegistry,
	networks port.NetworkResolver,
	m *metrics.ActionMetrics,
) port.ActionService {
	return &instrumentedActionService{next: next, registry: registry, networks: networks, metrics: m}
}

func (s *instrumentedActionService) Execute(ctx context.Context, execCtx entity.ExecutionContext) (entity.ResultEnvelope, error) {
	start := time.Now()
	envelope, err := s.next.Execute(ctx, execCtx)
	elapsed := time.Since(start)

	operation, network := s.labels(execCtx)
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = string(entity.KindTransport)
		var actionErr *entity.ActionError
		if errors.As(err, &actionErr) {
			outcome = string(actionErr.Kind)
		}
	} else {
		s.metrics.Records.WithLabelValues(operation).Observe(float64(len(envelope)))
	}
	s.metrics.Duration.WithLabelValues(operation, network).Observe(elapsed.Seconds())
	s.metrics.Executions.WithLabelValues(operation, network, outcome).Inc()

	return envelope, err
}

// labels maps the requested ids onto registered ones. Aliases report under the
// canonical operation; anything unrecognised becomes "unknown".
func (s *instrumentedActionService) labels(execCtx entity.ExecutionContext) (string, string) {
	operation, network := unknownLabel, unknownLabel
	if op, err := s.registry.Lookup(execCtx.OperationID); err == nil {
		operation = op.ID
	}
	if _, err := s.networks.Resolve(execCtx.NetworkID); err == nil {
		network = string(execCtx.NetworkID)
	}
	return operation, network
}
