package generator

import (
	"context"
	"strings"
	"testing"

	"support-chat-backend/internal/model"
)

func generate(t *testing.T, input model.GenerateInput) model.StructuredResponse {
	t.Helper()
	response, err := New().Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return response
}

func TestOrderResponseWithDetails(t *testing.T) {
	conversation := model.NewConversation("conv")
	conversation.Metadata.OrderNumber = "000141624567"

	response := generate(t, model.GenerateInput{
		Conversation: conversation,
		Intent:       model.IntentStatus,
		Enrichment: model.OrderEnrichment(&model.OrderDetails{
			OrderNumber: "000141624567",
			Status:      "complete",
			Totals:      model.OrderTotals{Total: 123.4},
			Shipping: model.OrderShipping{
				Tracking: []model.TrackingInfo{
					{Number: "1Z999AA10123456784", Carrier: "UPS"},
					{Number: "9400100000000000000000", Carrier: "USPS"},
				},
			},
		}),
	})

	if !strings.Contains(response.Text, "Order #000141624567") {
		t.Fatalf("missing order number: %q", response.Text)
	}
	if !strings.Contains(response.Text, "Status: complete") {
		t.Fatalf("missing status: %q", response.Text)
	}
	if !strings.Contains(response.Text, "Total: $123.40") {
		t.Fatalf("missing total: %q", response.Text)
	}
	if len(response.Links) != 2 {
		t.Fatalf("expected 2 tracking links, got %d", len(response.Links))
	}
	if !strings.HasPrefix(response.Links[0].URL, "https://www.ups.com/track?tracknum=") {
		t.Fatalf("unexpected UPS link: %q", response.Links[0].URL)
	}
	if response.Action == nil || response.Action.Type != model.ActionTypeFeedback {
		t.Fatalf("expected feedback action, got %+v", response.Action)
	}
}

func TestOrderResponseAsksForNumber(t *testing.T) {
	response := generate(t, model.GenerateInput{
		Conversation: model.NewConversation("conv"),
		Intent:       model.IntentTracking,
		Enrichment:   model.NoEnrichment(),
	})

	if response.Text != "To assist you better, could you please provide your order number?" {
		t.Fatalf("unexpected text: %q", response.Text)
	}
}

func TestOrderResponseNotFound(t *testing.T) {
	conversation := model.NewConversation("conv")
	conversation.Metadata.OrderNumber = "000141624567"

	response := generate(t, model.GenerateInput{
		Conversation: conversation,
		Intent:       model.IntentStatus,
		Enrichment:   model.NoEnrichment(),
	})

	if response.Text != "I couldn't find that order. Please verify your order number and try again." {
		t.Fatalf("unexpected text: %q", response.Text)
	}
}

func TestFAQResponse(t *testing.T) {
	response := generate(t, model.GenerateInput{
		Conversation: model.NewConversation("conv"),
		Intent:       model.IntentOther,
		Enrichment: model.FAQEnrichment(&model.FAQResult{
			Question:    "What is your return policy?",
			Answer:      "You can return items within 30 days of delivery.",
			ShortAnswer: "Items can be returned within 30 days.",
			LinkURL:     "https://shop.example.com/faq#returns",
			Confidence:  0.9,
		}),
	})

	if response.Text != "Items can be returned within 30 days." {
		t.Fatalf("unexpected text: %q", response.Text)
	}
	if len(response.Links) != 1 || response.Links[0].Label != "Read more" || response.Links[0].Type != model.LinkTypeFAQ {
		t.Fatalf("unexpected links: %+v", response.Links)
	}
	if response.Action == nil || response.Action.Type != model.ActionTypeFeedback {
		t.Fatalf("expected feedback action, got %+v", response.Action)
	}
}

func TestFAQResponseFallsBackToFullAnswer(t *testing.T) {
	response := generate(t, model.GenerateInput{
		Conversation: model.NewConversation("conv"),
		Intent:       model.IntentOther,
		Enrichment: model.FAQEnrichment(&model.FAQResult{
			Answer: "Full answer text.",
		}),
	})

	if response.Text != "Full answer text." {
		t.Fatalf("unexpected text: %q", response.Text)
	}
	if len(response.Links) != 0 {
		t.Fatalf("no link expected without a link url, got %+v", response.Links)
	}
}

func TestFAQResponseNoMatch(t *testing.T) {
	response := generate(t, model.GenerateInput{
		Conversation: model.NewConversation("conv"),
		Intent:       model.IntentOther,
		Enrichment:   model.NoEnrichment(),
	})

	if !strings.Contains(response.Text, "couldn't find a specific answer") {
		t.Fatalf("unexpected text: %q", response.Text)
	}
	if response.Action == nil || response.Action.Type != model.ActionTypeTicket {
		t.Fatalf("expected ticket action, got %+v", response.Action)
	}
}

func TestTicketResponse(t *testing.T) {
	withTicket := model.NewConversation("conv")
	withTicket.Metadata.TicketID = "ticket-1"

	response := generate(t, model.GenerateInput{
		Conversation: withTicket,
		Intent:       model.IntentTicketing,
		Enrichment:   model.NoEnrichment(),
	})
	if !strings.Contains(response.Text, "created a support ticket") {
		t.Fatalf("unexpected text: %q", response.Text)
	}

	response = generate(t, model.GenerateInput{
		Conversation: model.NewConversation("conv"),
		Intent:       model.IntentTicketing,
		Enrichment:   model.NoEnrichment(),
	})
	if !strings.Contains(response.Text, "email address") {
		t.Fatalf("unexpected text: %q", response.Text)
	}
}

func TestTrackingURL(t *testing.T) {
	if got := trackingURL("FedEx", "12345"); got != "https://www.fedex.com/fedextrack/?trknbr=12345" {
		t.Fatalf("unexpected FedEx url: %q", got)
	}
	if got := trackingURL("unknown-carrier", "12345"); got != "https://www.google.com/search?q=12345" {
		t.Fatalf("unexpected fallback url: %q", got)
	}
}
