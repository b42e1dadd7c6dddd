package endpoints

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"support-chat-backend/internal/dto"
	"support-chat-backend/internal/model"

	"github.com/google/uuid"
)

type FAQEndpoints interface {
	FAQs(http.ResponseWriter, *http.Request) error
}

// FAQIndexer is the slice of the FAQ service the indexing endpoint needs.
type FAQIndexer interface {
	IndexFAQs(ctx context.Context, faqs []model.FAQ) error
}

type faqEndpoints struct {
	indexer FAQIndexer
}

func NewFAQEndpoints(indexer FAQIndexer) FAQEndpoints {
	return &faqEndpoints{indexer: indexer}
}

func (h *faqEndpoints) FAQs(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleIndexFAQs,
	})
}

func (h *faqEndpoints) handleIndexFAQs(w http.ResponseWriter, r *http.Request) error {
	var req dto.IndexFAQsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			ErrorLog:   fmt.Errorf("decode index faqs request: %w", err),
		}
	}

	if len(req.FAQs) == 0 {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "At least one FAQ is required",
			ErrorLog:   fmt.Errorf("index faqs: empty list"),
		}
	}

	faqs := make([]model.FAQ, 0, len(req.FAQs))
	for _, item := range req.FAQs {
		if strings.TrimSpace(item.Question) == "" || strings.TrimSpace(item.Answer) == "" {
			return &HTTPError{
				StatusCode: http.StatusBadRequest,
				Message:    "Each FAQ needs a question and an answer",
				ErrorLog:   fmt.Errorf("index faqs: missing question or answer"),
			}
		}
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		faqs = append(faqs, model.FAQ{
			ID:       id,
			Question: item.Question,
			Answer:   item.Answer,
		})
	}

	if err := h.indexer.IndexFAQs(r.Context(), faqs); err != nil {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   fmt.Errorf("index faqs: %w", err),
		}
	}

	return WriteJSON(w, http.StatusOK, dto.IndexFAQsResponse{Indexed: len(faqs)})
}
