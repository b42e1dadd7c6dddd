package model

type LinkType string

const (
	LinkTypeTracking LinkType = "tracking"
	LinkTypeFAQ      LinkType = "faq"
	LinkTypeOther    LinkType = "other"
)

type Link struct {
	Label string   `dynamodbav:"label" json:"label"`
	URL   string   `dynamodbav:"url" json:"url"`
	Type  LinkType `dynamodbav:"type" json:"type"`
}

type ActionType string

const (
	ActionTypeFeedback ActionType = "feedback"
	ActionTypeTicket   ActionType = "ticket"
	ActionTypeOther    ActionType = "other"
)

type Action struct {
	Type ActionType `dynamodbav:"type" json:"type"`
}

// StructuredResponse is the bot's reply: text plus optional actionable
// links and an action tag the widget can render.
type StructuredResponse struct {
	Text   string  `dynamodbav:"text" json:"text"`
	Links  []Link  `dynamodbav:"links,omitempty" json:"links,omitempty"`
	Action *Action `dynamodbav:"action,omitempty" json:"action,omitempty"`
}
