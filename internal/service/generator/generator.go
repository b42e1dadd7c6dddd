package generator

import (
	"context"
	"fmt"
	"strings"

	"support-chat-backend/internal/model"
)

// Service renders structured responses from the resolved intent and
// enrichment payload. Wording is deterministic; the pipeline has already
// decided every branch that matters.
type Service struct{}

func New() *Service {
	return &Service{}
}

func (s *Service) Generate(ctx context.Context, input model.GenerateInput) (model.StructuredResponse, error) {
	switch {
	case input.Intent.IsOrderRelated():
		return s.orderResponse(input), nil
	case input.Intent == model.IntentTicketing:
		return s.ticketResponse(input.Conversation), nil
	case input.Intent == model.IntentOther:
		return s.faqResponse(input), nil
	default:
		return model.StructuredResponse{
			Text: "I apologize, but I'm having trouble understanding. Could you please rephrase your question?",
		}, nil
	}
}

func (s *Service) orderResponse(input model.GenerateInput) model.StructuredResponse {
	if input.Enrichment.Kind != model.EnrichmentOrder {
		if input.Conversation.Metadata.OrderNumber == "" {
			return model.StructuredResponse{
				Text: "To assist you better, could you please provide your order number?",
			}
		}
		return model.StructuredResponse{
			Text: "I couldn't find that order. Please verify your order number and try again.",
		}
	}

	details := input.Enrichment.Order

	var b strings.Builder
	fmt.Fprintf(&b, "Order #%s\n", details.OrderNumber)
	fmt.Fprintf(&b, "Status: %s\n", details.Status)
	fmt.Fprintf(&b, "Total: $%.2f", details.Totals.Total)

	links := make([]model.Link, 0, len(details.Shipping.Tracking))
	for _, track := range details.Shipping.Tracking {
		links = append(links, model.Link{
			Label: fmt.Sprintf("%s: %s", track.Carrier, track.Number),
			URL:   trackingURL(track.Carrier, track.Number),
			Type:  model.LinkTypeTracking,
		})
	}

	return model.StructuredResponse{
		Text:   b.String(),
		Links:  links,
		Action: &model.Action{Type: model.ActionTypeFeedback},
	}
}

func (s *Service) faqResponse(input model.GenerateInput) model.StructuredResponse {
	if input.Enrichment.Kind != model.EnrichmentFAQ {
		return model.StructuredResponse{
			Text:   "I apologize, but I couldn't find a specific answer to your question. Would you like me to create a support ticket for further assistance?",
			Action: &model.Action{Type: model.ActionTypeTicket},
		}
	}

	result := input.Enrichment.FAQ
	response := model.StructuredResponse{
		Text:   result.ShortAnswer,
		Action: &model.Action{Type: model.ActionTypeFeedback},
	}
	if response.Text == "" {
		response.Text = result.Answer
	}
	if result.LinkURL != "" {
		response.Links = []model.Link{{
			Label: "Read more",
			URL:   result.LinkURL,
			Type:  model.LinkTypeFAQ,
		}}
	}
	return response
}

func (s *Service) ticketResponse(conversation *model.Conversation) model.StructuredResponse {
	if conversation.Metadata.TicketID != "" {
		return model.StructuredResponse{
			Text: "I've created a support ticket for you. Our team will contact you at the provided email address shortly.",
		}
	}
	return model.StructuredResponse{
		Text: "To create a support ticket, I'll need your email address. Could you please provide it?",
	}
}

var carrierTracking = map[string]string{
	"ups":   "https://www.ups.com/track?tracknum=",
	"usps":  "https://tools.usps.com/go/TrackConfirmAction?tLabels=",
	"fedex": "https://www.fedex.com/fedextrack/?trknbr=",
	"dhl":   "https://www.dhl.com/en/express/tracking.html?AWB=",
}

func trackingURL(carrier, number string) string {
	if base, ok := carrierTracking[strings.ToLower(carrier)]; ok {
		return base + number
	}
	return "https://www.google.com/search?q=" + number
}
