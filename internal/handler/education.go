// Package handler provides HTTP handlers for the API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mentorai/backend/internal/gateway"
	"github.com/mentorai/backend/internal/middleware"
	"github.com/mentorai/backend/internal/model"
	"github.com/mentorai/backend/pkg/logger"
)

// Answerer is the gateway surface the handler depends on.
type Answerer interface {
	Answer(ctx context.Context, question, conversationID string) (*gateway.Result, error)
}

// EducationHandler handles the question-answering endpoint.
type EducationHandler struct {
	gateway Answerer
	logger  *logger.Logger
}

// NewEducationHandler creates a new education handler.
func NewEducationHandler(gw Answerer, log *logger.Logger) *EducationHandler {
	return &EducationHandler{
		gateway: gw,
		logger:  log,
	}
}

// Ask handles POST /education/ask
func (h *EducationHandler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateQuestion(req.Question); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.gateway.Answer(ctx, req.Question, req.ConversationID)
	if err != nil {
		h.writeGatewayError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &model.AskResponse{
		Answer:         res.Answer,
		ConversationID: res.ConversationID,
	})
}

// writeGatewayError maps the gateway's error taxonomy to transport
// status codes.
func (h *EducationHandler) writeGatewayError(w http.ResponseWriter, r *http.Request, err error) {
	correlationID := middleware.GetCorrelationID(r.Context())

	switch {
	case errors.Is(err, gateway.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "question cannot be empty")
	case errors.Is(err, gateway.ErrModelConnection):
		h.logger.Error("model connection failed", "error", err, "correlation_id", correlationID)
		writeError(w, http.StatusServiceUnavailable, "the AI service is unreachable, please try again later")
	case errors.Is(err, gateway.ErrModelResponse):
		h.logger.Error("model returned an invalid reply", "error", err, "correlation_id", correlationID)
		writeError(w, http.StatusInternalServerError, "the AI service returned an invalid response")
	case errors.Is(err, gateway.ErrAuthentication),
		errors.Is(err, gateway.ErrRateLimit),
		errors.Is(err, gateway.ErrService):
		h.logger.Error("model service error", "error", err, "correlation_id", correlationID)
		writeError(w, http.StatusInternalServerError, "failed to process request")
	default:
		h.logger.Error("unexpected error", "error", err, "correlation_id", correlationID)
		writeError(w, http.StatusInternalServerError, "failed to process request")
	}
}
