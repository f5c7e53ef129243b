package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bscscan_node/internal/app/port"
	"bscscan_node/internal/domain/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// actionServiceImpl implements port.ActionService as one pass through
// registry -> network -> params -> request -> executor -> normalizer.
type actionServiceImpl struct {
	registry port.OperationRegistry
	networks port.NetworkResolver
	executor    port.HTTPExecutor
	credentials port.CredentialProvider
	logger      *zap.Logger
}

// NewActionService creates a new instance of the action dispatch engine.
// credentials is consulted only when the execution context carries no API key
// and the operation, network and fields have already been accepted. It may be nil.
func NewActionService(
	registry port.OperationRegistry,
	networks port.NetworkResolver,
	executor port.HTTPExecutor,
	credentials port.CredentialProvider,
	logger *zap.Logger,
) port.ActionService {
	return &actionServiceImpl{
		registry:    registry,
		networks:    networks,
		executor:    executor,
		credentials: credentials,
		logger:      logger.Named("ActionService"),
	}
}

// Execute runs a single invocation. On failure no envelope is returned and the
// error is always an *entity.ActionError.
func (s *actionServiceImpl) Execute(ctx context.Context, execCtx entity.ExecutionContext) (entity.ResultEnvelope, error) {
	log := s.logger.With(
		zap.String("executionID", uuid.NewString()),
		zap.String("operation", execCtx.OperationID),
		zap.String("network", string(execCtx.NetworkID)),
	)

	envelope, err := s.execute(ctx, execCtx, log)
	if err != nil {
		actionErr := TranslateError(err, execCtx.OperationID, execCtx.NetworkID)
		log.Warn("Action failed", zap.String("kind", string(actionErr.Kind)), zap.Error(actionErr))
		return nil, actionErr
	}
	return envelope, nil
}

func (s *actionServiceImpl) execute(ctx context.Context, execCtx entity.ExecutionContext, log *zap.Logger) (entity.ResultEnvelope, error) {
	op, err := s.registry.Lookup(execCtx.OperationID)
	if err != nil {
		return nil, err
	}

	baseURL, err := s.networks.Resolve(execCtx.NetworkID)
	if err != nil {
		return nil, err
	}

	params, err := ResolveParams(op, execCtx.Fields)
	if err != nil {
		return nil, err
	}

	apiKey, err := s.apiKey(execCtx)
	if err != nil {
		return nil, err
	}

	spec := BuildRequest(op, params, baseURL, apiKey)
	log.Debug("Dispatching explorer request",
		zap.String("url", spec.URL),
		zap.String("module", op.Module),
		zap.String("action", op.Action))

	start := time.Now()
	payload, err := s.executor.Execute(ctx, spec)
	if err != nil {
		return nil, err
	}

	envelope := Normalize(payload)
	log.Debug("Explorer request completed",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("records", len(envelope)))
	return envelope, nil
}

func (s *actionServiceImpl) apiKey(execCtx entity.ExecutionContext) (string, error) {
	apiKey := strings.TrimSpace(execCtx.APIKey)
	if apiKey == "" && s.credentials != nil {
		key, err := s.credentials.APIKey()
		if err != nil {
			return "", &entity.ActionError{
				Kind:    entity.KindPrecondition,
				Message: fmt.Sprintf("failed to resolve API key: %v", err),
				Cause:   err,
			}
		}
		apiKey = strings.TrimSpace(key)
	}
	if apiKey == "" {
		return "", entity.PreconditionError("API key is required")
	}
	return apiKey, nil
}
