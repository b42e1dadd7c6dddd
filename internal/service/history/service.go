package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"support-chat-backend/internal/database"
	"support-chat-backend/internal/model"

	"github.com/google/uuid"
)

// Service is the conversation store: load by id, create, save. The save
// contract appends only messages that are not yet durable and rewrites
// status and metadata. Concurrent saves on the same conversation are
// last-write-wins; the store is eventually consistent, not linearizable.
type Service struct {
	repo Repository
	now  func() time.Time
}

func New(db *database.Database) *Service {
	return &Service{
		repo: NewDynamoRepository(db),
		now:  time.Now,
	}
}

func NewWithRepository(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo: repo,
		now:  now,
	}
}

// Load returns the conversation for the given id, or (nil, nil) when no
// conversation exists for it.
func (s *Service) Load(ctx context.Context, conversationID string) (*model.Conversation, error) {
	item, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load conversation %s: %w", conversationID, err)
	}

	messageItems, err := s.repo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("load messages %s: %w", conversationID, err)
	}

	conversation := &model.Conversation{
		ID:       item.ConversationID,
		Status:   item.Status,
		Metadata: item.Metadata,
		Messages: make([]model.Message, 0, len(messageItems)),
	}
	for _, msg := range messageItems {
		conversation.Messages = append(conversation.Messages, model.Message{
			Sender:    msg.Sender,
			Content:   msg.Content,
			Intent:    msg.Intent,
			Timestamp: msg.Timestamp,
		})
	}
	return conversation, nil
}

// Create persists and returns a fresh open conversation with a generated id.
func (s *Service) Create(ctx context.Context) (*model.Conversation, error) {
	conversation := model.NewConversation(uuid.NewString())

	nowStr := s.now().UTC().Format(time.RFC3339)
	item := model.ConversationItem{
		ConversationID: conversation.ID,
		Status:         conversation.Status,
		Metadata:       conversation.Metadata,
		MessageCount:   0,
		CreatedAt:      nowStr,
		UpdatedAt:      nowStr,
	}
	if err := s.repo.CreateConversation(ctx, item); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	return conversation, nil
}

// Save commits the conversation: status, metadata and any messages past
// the durable count, in a single transaction.
func (s *Service) Save(ctx context.Context, conversation *model.Conversation) error {
	if conversation == nil || conversation.ID == "" {
		return errors.New("save conversation: missing id")
	}

	durable := 0
	createdAt := s.now().UTC().Format(time.RFC3339)
	existing, err := s.repo.GetConversation(ctx, conversation.ID)
	switch {
	case err == nil:
		durable = existing.MessageCount
		createdAt = existing.CreatedAt
	case errors.Is(err, ErrNotFound):
		// first save of a conversation created elsewhere
	default:
		return fmt.Errorf("save conversation %s: %w", conversation.ID, err)
	}

	if durable > len(conversation.Messages) {
		return fmt.Errorf("save conversation %s: %d messages durable but only %d in memory",
			conversation.ID, durable, len(conversation.Messages))
	}

	newMessages := make([]model.MessageItem, 0, len(conversation.Messages)-durable)
	for i := durable; i < len(conversation.Messages); i++ {
		msg := conversation.Messages[i]
		newMessages = append(newMessages, model.MessageItem{
			PK:             model.MessagePK(conversation.ID, i),
			ConversationID: conversation.ID,
			Seq:            i,
			Sender:         msg.Sender,
			Content:        msg.Content,
			Intent:         msg.Intent,
			Timestamp:      msg.Timestamp,
		})
	}

	item := model.ConversationItem{
		ConversationID: conversation.ID,
		Status:         conversation.Status,
		Metadata:       conversation.Metadata,
		MessageCount:   len(conversation.Messages),
		CreatedAt:      createdAt,
		UpdatedAt:      s.now().UTC().Format(time.RFC3339),
	}

	if err := s.repo.CommitConversation(ctx, item, newMessages); err != nil {
		return fmt.Errorf("save conversation %s: %w", conversation.ID, err)
	}
	return nil
}
