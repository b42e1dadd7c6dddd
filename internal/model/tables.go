package model

import "fmt"

const (
	ConversationsTable = "SupportConversations"
	MessagesTable      = "SupportMessages"
)

// MessagePK orders messages within a conversation by zero-padded sequence
// number, so a plain key-ordered query returns conversation order.
func MessagePK(conversationID string, seq int) string {
	return fmt.Sprintf("%s#%08d", conversationID, seq)
}

type ConversationItem struct {
	ConversationID string               `dynamodbav:"conversationId"`
	Status         ConversationStatus   `dynamodbav:"status"`
	Metadata       ConversationMetadata `dynamodbav:"metadata"`
	MessageCount   int                  `dynamodbav:"messageCount"`
	CreatedAt      string               `dynamodbav:"createdAt"`
	UpdatedAt      string               `dynamodbav:"updatedAt"`
}

type MessageItem struct {
	PK             string             `dynamodbav:"pk"`
	ConversationID string             `dynamodbav:"conversationId"`
	Seq            int                `dynamodbav:"seq"`
	Sender         Sender             `dynamodbav:"sender"`
	Content        StructuredResponse `dynamodbav:"content"`
	Intent         Intent             `dynamodbav:"intent,omitempty"`
	Timestamp      int64              `dynamodbav:"timestamp"`
}
