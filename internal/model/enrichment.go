package model

// EnrichmentKind tags which enrichment payload, if any, was fetched for
// the current message.
type EnrichmentKind string

const (
	EnrichmentNone  EnrichmentKind = "none"
	EnrichmentOrder EnrichmentKind = "order"
	EnrichmentFAQ   EnrichmentKind = "faq"
)

// Enrichment is a tagged union over the enrichment payloads. Exactly one
// of Order/FAQ is set, and only when Kind says so.
type Enrichment struct {
	Kind  EnrichmentKind
	Order *OrderDetails
	FAQ   *FAQResult
}

func NoEnrichment() Enrichment {
	return Enrichment{Kind: EnrichmentNone}
}

func OrderEnrichment(details *OrderDetails) Enrichment {
	if details == nil {
		return NoEnrichment()
	}
	return Enrichment{Kind: EnrichmentOrder, Order: details}
}

func FAQEnrichment(result *FAQResult) Enrichment {
	if result == nil {
		return NoEnrichment()
	}
	return Enrichment{Kind: EnrichmentFAQ, FAQ: result}
}

// GenerateInput is everything the response generator sees.
type GenerateInput struct {
	UserMessage  string
	Conversation *Conversation
	Intent       Intent
	Enrichment   Enrichment
}

type ValidationResult struct {
	IsValid bool
	Reason  string
}
