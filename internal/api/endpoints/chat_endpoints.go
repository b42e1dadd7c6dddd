package endpoints

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"support-chat-backend/internal/dto"
	"support-chat-backend/internal/service/orchestrator"
)

type ChatEndpoints interface {
	Messages(http.ResponseWriter, *http.Request) error
}

// MessageProcessor is the slice of the orchestrator the chat endpoints need.
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, message, conversationID string) (orchestrator.Result, error)
}

type chatEndpoints struct {
	processor MessageProcessor
}

func NewChatEndpoints(processor MessageProcessor) ChatEndpoints {
	return &chatEndpoints{processor: processor}
}

func (h *chatEndpoints) Messages(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handlePostMessage,
	})
}

func (h *chatEndpoints) handlePostMessage(w http.ResponseWriter, r *http.Request) error {
	var req dto.ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			ErrorLog:   fmt.Errorf("decode chat message request: %w", err),
		}
	}

	result, err := h.processor.ProcessMessage(r.Context(), req.Message, req.ConversationID)
	if err != nil {
		return h.serviceError(err)
	}

	return WriteJSON(w, http.StatusOK, dto.ChatMessageResponse{
		Response:       result.Response,
		ConversationID: result.ConversationID,
		Intent:         result.Intent,
	})
}

func (h *chatEndpoints) serviceError(err error) error {
	if err == nil {
		return nil
	}

	svcErr, ok := err.(*orchestrator.Error)
	if !ok {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   fmt.Errorf("orchestrator: %w", err),
		}
	}

	var logErr error
	if svcErr.Err != nil {
		logErr = fmt.Errorf("%s: %w", svcErr.Message, svcErr.Err)
	} else {
		logErr = svcErr
	}

	switch svcErr.Code {
	case orchestrator.ErrorCodeValidation:
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: svcErr.Message, ErrorLog: logErr}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "Internal server error", ErrorLog: logErr}
	}
}
