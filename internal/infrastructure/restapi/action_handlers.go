package restapi

import (
	"errors"
	"net/http"
	"strings"

	"bscscan_node/internal/app/port"
	"bscscan_node/internal/domain/entity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIKeyHeader carries a per-request explorer API key.
const APIKeyHeader = "X-API-Key"

// ActionRequest is the JSON body of POST /api/v1/actions.
type ActionRequest struct {
	Operation string            `json:"operation"`
	Network   string            `json:"network"`
	Fields    map[string]string `json:"fields"`
}

// ActionResponse wraps a successful envelope.
type ActionResponse struct {
	Operation string                `json:"operation"`
	Network   string                `json:"network"`
	Records   entity.ResultEnvelope `json:"records"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// ActionHandler exposes the action node over HTTP.
type ActionHandler struct {
	actions  port.ActionService
	registry port.OperationRegistry
	networks port.NetworkResolver
	logger   *zap.Logger
}

// NewActionHandler creates a new instance of ActionHandler.
func NewActionHandler(
	actions port.ActionService,
	registry port.OperationRegistry,
	networks port.NetworkResolver,
	logger *zap.Logger,
) *ActionHandler {
	return &ActionHandler{
		actions:  actions,
		registry: registry,
		networks: networks,
		logger:   logger.Named("ActionHandler"),
	}
}

// ExecuteActionHandler runs one action. The API key comes from the X-API-Key
// header; without it the engine falls back to the configured credentials.
func (h *ActionHandler) ExecuteActionHandler(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	apiKey := strings.TrimSpace(c.GetHeader(APIKeyHeader))

	fields := make(map[entity.FieldName]string, len(req.Fields))
	for k, v := range req.Fields {
		fields[entity.FieldName(k)] = v
	}

	execCtx := entity.ExecutionContext{
		OperationID: req.Operation,
		NetworkID:   entity.NetworkID(req.Network),
		APIKey:      apiKey,
		Fields:      fields,
	}

	envelope, err := h.actions.Execute(c.Request.Context(), execCtx)
	if err != nil {
		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Action failed", zap.String("operation", req.Operation), zap.Error(err))
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, ActionResponse{
		Operation: req.Operation,
		Network:   req.Network,
		Records:   envelope,
	})
}

// ListOperationsHandler returns the operation table.
func (h *ActionHandler) ListOperationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"operations": h.registry.All()})
}

// ListNetworksHandler returns the known networks.
func (h *ActionHandler) ListNetworksHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"networks": h.networks.Networks()})
}

func errorResponse(err error) (int, ErrorResponse) {
	var actionErr *entity.ActionError
	if !errors.As(err, &actionErr) {
		return http.StatusInternalServerError, ErrorResponse{Error: err.Error()}
	}

	body := ErrorResponse{Error: actionErr.Error(), Kind: string(actionErr.Kind)}
	switch actionErr.Kind {
	case entity.KindConfiguration, entity.KindPrecondition:
		return http.StatusBadRequest, body
	default:
		return http.StatusBadGateway, body
	}
}
