package conversationRepo

import (
	"context"

	"bookwise/database"
	"bookwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ConversationRepository persists chat sessions and their message log.
type ConversationRepository interface {
	Create(ctx context.Context) (*models.Conversation, error)
	GetByID(ctx context.Context, id string) (*models.Conversation, error)
	UpdateState(ctx context.Context, id string, state models.ConversationState) error
	List(ctx context.Context, limit int64) ([]models.Conversation, error)
	AddMessage(ctx context.Context, conversationID, role, content string) (*models.Message, error)
	Messages(ctx context.Context, conversationID string) ([]models.Message, error)
}

type mongoConversationRepo struct {
	conversations *mongo.Collection
	messages      *mongo.Collection
}

// NewMongoConversationRepo returns a new ConversationRepository instance using MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	db := database.MongoClient.Database("bookwise")
	return &mongoConversationRepo{
		conversations: db.Collection("conversations"),
		messages:      db.Collection("messages"),
	}
}
