package orchestrator

import (
	"support-chat-backend/internal/model"
)

// Reserved literal payloads the chat widget sends for its buttons. They
// bypass enrichment and generation entirely.
const (
	CommandFeedbackHelpful   = "FEEDBACK_HELPFUL"
	CommandFeedbackUnhelpful = "FEEDBACK_UNHELPFUL"
	CommandTicketCreate      = "TICKET_CREATE"
)

const (
	helpfulAcknowledgment = "I'm glad I could help! Is there anything else you need assistance with?"
	unhelpfulEmailPrompt  = "I'm sorry the answer wasn't helpful. Could you please provide your email address so I can create a support ticket for you?"
	ticketEmailPrompt     = "Could you please provide your email address so I can create a support ticket for you?"
)

// handleCommand resolves the short-circuit literals. It returns the fixed
// response and the resulting intent, or ok=false for ordinary messages.
func handleCommand(message string, conversation *model.Conversation, currentIntent model.Intent) (model.StructuredResponse, model.Intent, bool) {
	switch message {
	case CommandFeedbackHelpful:
		conversation.TransitionStatus(model.ConversationStatusHelpful)
		return model.StructuredResponse{Text: helpfulAcknowledgment}, currentIntent, true
	case CommandFeedbackUnhelpful:
		conversation.TransitionStatus(model.ConversationStatusTicket)
		return model.StructuredResponse{Text: unhelpfulEmailPrompt}, model.IntentTicketing, true
	case CommandTicketCreate:
		conversation.TransitionStatus(model.ConversationStatusTicket)
		return model.StructuredResponse{Text: ticketEmailPrompt}, model.IntentTicketing, true
	}
	return model.StructuredResponse{}, currentIntent, false
}
