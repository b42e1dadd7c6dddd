package model

type ConversationStatus string

const (
	ConversationStatusOpen    ConversationStatus = "open"
	ConversationStatusTicket  ConversationStatus = "ticket"
	ConversationStatusHelpful ConversationStatus = "helpful"
	ConversationStatusClosed  ConversationStatus = "closed"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ConversationMetadata accumulates facts the visitor has provided. Fields
// are write-once by convention: a set field is only replaced by a newer
// successfully extracted value of the same kind, never cleared.
type ConversationMetadata struct {
	Email       string `dynamodbav:"email,omitempty" json:"email,omitempty"`
	OrderNumber string `dynamodbav:"orderNumber,omitempty" json:"orderNumber,omitempty"`
	TicketID    string `dynamodbav:"ticketId,omitempty" json:"ticketId,omitempty"`
}

// Message is immutable once appended to a conversation.
type Message struct {
	Sender    Sender             `dynamodbav:"sender" json:"sender"`
	Content   StructuredResponse `dynamodbav:"content" json:"structuredContent"`
	Intent    Intent             `dynamodbav:"intent,omitempty" json:"intent,omitempty"`
	Timestamp int64              `dynamodbav:"timestamp" json:"timestamp"`
}

// Conversation is the aggregate the pipeline reads and mutates. The
// orchestrator owns the in-memory instance for the duration of a single
// ProcessMessage call; nothing retains a reference across calls.
type Conversation struct {
	ID       string
	Status   ConversationStatus
	Metadata ConversationMetadata
	Messages []Message
}

func NewConversation(id string) *Conversation {
	return &Conversation{
		ID:     id,
		Status: ConversationStatusOpen,
	}
}

func (c *Conversation) AppendUserMessage(text string, timestamp int64) {
	c.append(Message{
		Sender:    SenderUser,
		Content:   StructuredResponse{Text: text},
		Timestamp: timestamp,
	})
}

func (c *Conversation) AppendBotMessage(content StructuredResponse, intent Intent, timestamp int64) {
	c.append(Message{
		Sender:    SenderBot,
		Content:   content,
		Intent:    intent,
		Timestamp: timestamp,
	})
}

// append keeps the message sequence strictly non-decreasing by timestamp.
func (c *Conversation) append(msg Message) {
	if n := len(c.Messages); n > 0 && msg.Timestamp < c.Messages[n-1].Timestamp {
		msg.Timestamp = c.Messages[n-1].Timestamp
	}
	c.Messages = append(c.Messages, msg)
}

// TransitionStatus applies the conversation state machine and reports
// whether the transition was taken. A ticket conversation never reverts
// to open; helpful and closed are terminal.
func (c *Conversation) TransitionStatus(next ConversationStatus) bool {
	if next == c.Status {
		return true
	}
	switch c.Status {
	case ConversationStatusOpen:
		c.Status = next
		return true
	case ConversationStatusTicket:
		if next == ConversationStatusHelpful || next == ConversationStatusClosed {
			c.Status = next
			return true
		}
	}
	return false
}

// FirstUserMessage returns the text of the earliest user message, used
// as the subject when a support ticket is raised.
func (c *Conversation) FirstUserMessage() (string, bool) {
	for _, msg := range c.Messages {
		if msg.Sender == SenderUser {
			return msg.Content.Text, true
		}
	}
	return "", false
}
