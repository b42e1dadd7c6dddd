package dto

import "support-chat-backend/internal/model"

type ChatMessageRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
}

type ChatMessageResponse struct {
	Response       model.StructuredResponse `json:"response"`
	ConversationID string                   `json:"conversationId"`
	Intent         model.Intent             `json:"intent"`
}

type FAQPayload struct {
	ID       string `json:"id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type IndexFAQsRequest struct {
	FAQs []FAQPayload `json:"faqs"`
}

type IndexFAQsResponse struct {
	Indexed int `json:"indexed"`
}
