package service

import (
	"errors"

	"bscscan_node/internal/domain/entity"
)

// TranslateError converts any pipeline failure into the single *entity.ActionError
// surfaced to the host. The upstream message wins over the local cause when a
// response body was available.
func TranslateError(err error, operation string, network entity.NetworkID) *entity.ActionError {
	if err == nil {
		return nil
	}

	var actionErr *entity.ActionError
	if errors.As(err, &actionErr) {
		out := *actionErr
		if out.Operation == "" {
			out.Operation = operation
		}
		if out.Network == "" {
			out.Network = network
		}
		return &out
	}

	out := &entity.ActionError{
		Kind:      entity.KindTransport,
		Operation: operation,
		Network:   network,
		Message:   err.Error(),
		Cause:     err,
	}

	var transportErr *entity.TransportError
	if errors.As(err, &transportErr) {
		out.StatusCode = transportErr.StatusCode
		if transportErr.UpstreamMessage != "" {
			out.Message = transportErr.UpstreamMessage
		}
	}
	return out
}
