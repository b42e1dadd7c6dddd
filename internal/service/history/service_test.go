package history

import (
	"context"
	"sync"
	"testing"
	"time"

	"support-chat-backend/internal/model"
)

type memoryRepository struct {
	mu            sync.Mutex
	conversations map[string]model.ConversationItem
	messages      map[string][]model.MessageItem
	commits       int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		conversations: make(map[string]model.ConversationItem),
		messages:      make(map[string][]model.MessageItem),
	}
}

func (m *memoryRepository) GetConversation(ctx context.Context, conversationID string) (model.ConversationItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conversation, ok := m.conversations[conversationID]
	if !ok {
		return model.ConversationItem{}, ErrNotFound
	}
	return conversation, nil
}

func (m *memoryRepository) CreateConversation(ctx context.Context, conversation model.ConversationItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations[conversation.ConversationID] = conversation
	return nil
}

func (m *memoryRepository) ListMessages(ctx context.Context, conversationID string) ([]model.MessageItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.MessageItem(nil), m.messages[conversationID]...), nil
}

func (m *memoryRepository) CommitConversation(ctx context.Context, conversation model.ConversationItem, newMessages []model.MessageItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commits++
	m.conversations[conversation.ConversationID] = conversation
	m.messages[conversation.ConversationID] = append(m.messages[conversation.ConversationID], newMessages...)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestLoadUnknownConversation(t *testing.T) {
	service := NewWithRepository(newMemoryRepository(), fixedNow)

	conversation, err := service.Load(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conversation != nil {
		t.Fatalf("expected nil for unknown id, got %+v", conversation)
	}
}

func TestCreateAndLoad(t *testing.T) {
	repo := newMemoryRepository()
	service := NewWithRepository(repo, fixedNow)

	created, err := service.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created conversation must have an id")
	}
	if created.Status != model.ConversationStatusOpen {
		t.Fatalf("new conversation must be open, got %s", created.Status)
	}

	loaded, err := service.Load(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded == nil || loaded.ID != created.ID {
		t.Fatalf("expected to load %s, got %+v", created.ID, loaded)
	}
	if len(loaded.Messages) != 0 {
		t.Fatalf("fresh conversation must have no messages, got %d", len(loaded.Messages))
	}
}

func TestSaveAppendsOnlyNewMessages(t *testing.T) {
	repo := newMemoryRepository()
	service := NewWithRepository(repo, fixedNow)

	created, err := service.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created.AppendUserMessage("first", 1000)
	created.AppendBotMessage(model.StructuredResponse{Text: "reply one"}, model.IntentOther, 2000)
	if err := service.Save(context.Background(), created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := service.Load(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded.AppendUserMessage("second", 3000)
	loaded.AppendBotMessage(model.StructuredResponse{Text: "reply two"}, model.IntentOther, 4000)
	if err := service.Save(context.Background(), loaded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.messages[created.ID]
	if len(stored) != 4 {
		t.Fatalf("expected 4 stored messages, got %d", len(stored))
	}
	for i, msg := range stored {
		if msg.Seq != i {
			t.Fatalf("message %d has seq %d", i, msg.Seq)
		}
	}
	if repo.conversations[created.ID].MessageCount != 4 {
		t.Fatalf("expected message count 4, got %d", repo.conversations[created.ID].MessageCount)
	}
}

func TestSaveRejectsTruncatedConversation(t *testing.T) {
	repo := newMemoryRepository()
	service := NewWithRepository(repo, fixedNow)

	created, err := service.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created.AppendUserMessage("first", 1000)
	created.AppendBotMessage(model.StructuredResponse{Text: "reply"}, model.IntentOther, 2000)
	if err := service.Save(context.Background(), created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	truncated := model.NewConversation(created.ID)
	truncated.AppendUserMessage("only one", 3000)
	if err := service.Save(context.Background(), truncated); err == nil {
		t.Fatal("saving fewer messages than are durable must fail")
	}
}

func TestSaveMetadataAndStatus(t *testing.T) {
	repo := newMemoryRepository()
	service := NewWithRepository(repo, fixedNow)

	created, err := service.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created.Metadata.Email = "john@example.com"
	created.Metadata.TicketID = "ticket-9"
	created.TransitionStatus(model.ConversationStatusTicket)
	if err := service.Save(context.Background(), created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := service.Load(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Status != model.ConversationStatusTicket {
		t.Fatalf("status not persisted, got %s", loaded.Status)
	}
	if loaded.Metadata.Email != "john@example.com" || loaded.Metadata.TicketID != "ticket-9" {
		t.Fatalf("metadata not persisted, got %+v", loaded.Metadata)
	}
}
