package history

import (
	"context"
	"errors"
	"sort"
	"strings"

	"support-chat-backend/internal/database"
	"support-chat-backend/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrNotFound = errors.New("history repository: not found")

type Repository interface {
	GetConversation(ctx context.Context, conversationID string) (model.ConversationItem, error)
	CreateConversation(ctx context.Context, conversation model.ConversationItem) error
	ListMessages(ctx context.Context, conversationID string) ([]model.MessageItem, error)
	// CommitConversation persists the updated conversation item and the new
	// message tail atomically: either all of it becomes durable or none.
	CommitConversation(ctx context.Context, conversation model.ConversationItem, newMessages []model.MessageItem) error
}

type DynamoRepository struct {
	db *database.Database
}

func NewDynamoRepository(db *database.Database) Repository {
	return &DynamoRepository{db: db}
}

func (r *DynamoRepository) GetConversation(ctx context.Context, conversationID string) (model.ConversationItem, error) {
	var conversation model.ConversationItem
	err := r.db.Client.GetItem(
		ctx,
		model.ConversationsTable,
		map[string]types.AttributeValue{
			"conversationId": &types.AttributeValueMemberS{Value: conversationID},
		},
		&conversation,
	)
	if err != nil {
		if isNotFound(err) {
			return model.ConversationItem{}, ErrNotFound
		}
		return model.ConversationItem{}, err
	}
	return conversation, nil
}

func (r *DynamoRepository) CreateConversation(ctx context.Context, conversation model.ConversationItem) error {
	return r.db.Client.PutItem(ctx, model.ConversationsTable, conversation)
}

func (r *DynamoRepository) ListMessages(ctx context.Context, conversationID string) ([]model.MessageItem, error) {
	scanForward := true
	items, err := r.db.Client.QueryItems(
		ctx,
		model.MessagesTable,
		aws.String("byConversation"),
		"conversationId = :conversationId",
		map[string]types.AttributeValue{
			":conversationId": &types.AttributeValueMemberS{Value: conversationID},
		},
		nil,
		&scanForward,
	)
	if err != nil {
		return nil, err
	}

	messages := make([]model.MessageItem, 0, len(items))
	for _, item := range items {
		var message model.MessageItem
		if err := attributevalue.UnmarshalMap(item, &message); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Seq < messages[j].Seq
	})

	return messages, nil
}

func (r *DynamoRepository) CommitConversation(ctx context.Context, conversation model.ConversationItem, newMessages []model.MessageItem) error {
	writes := make([]types.TransactWriteItem, 0, len(newMessages)+1)

	convWrite, err := database.TransactPut(model.ConversationsTable, conversation)
	if err != nil {
		return err
	}
	writes = append(writes, convWrite)

	for _, message := range newMessages {
		write, err := database.TransactPut(model.MessagesTable, message)
		if err != nil {
			return err
		}
		writes = append(writes, write)
	}

	return r.db.Client.TransactWrite(ctx, writes)
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "item not found")
}
