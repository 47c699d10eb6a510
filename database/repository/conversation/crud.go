package conversationRepo

import (
	"context"
	"errors"
	"time"

	"bookwise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a fresh conversation with an all-default state.
func (r *mongoConversationRepo) Create(ctx context.Context) (*models.Conversation, error) {
	now := time.Now()
	conv := models.Conversation{
		ID:        uuid.New().String(),
		State:     *models.NewConversationState(),
		CreatedAt: now,
		UpdatedAt: now,
		Active:    true,
	}
	if _, err := r.conversations.InsertOne(ctx, conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetByID returns a conversation by its ID, or nil when absent.
func (r *mongoConversationRepo) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.conversations.FindOne(ctx, bson.M{"id": id}).Decode(&conv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// UpdateState mirrors the latest turn state onto the conversation document.
func (r *mongoConversationRepo) UpdateState(ctx context.Context, id string, state models.ConversationState) error {
	res, err := r.conversations.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"state": state, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("conversation not found")
	}
	return nil
}

// List returns the most recently updated conversations.
func (r *mongoConversationRepo) List(ctx context.Context, limit int64) ([]models.Conversation, error) {
	opts := options.Find().SetSort(bson.M{"updatedAt": -1}).SetLimit(limit)
	cursor, err := r.conversations.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var convs []models.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

// AddMessage appends a message to a conversation's log.
func (r *mongoConversationRepo) AddMessage(ctx context.Context, conversationID, role, content string) (*models.Message, error) {
	msg := models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Messages fetches a conversation's message log in chronological order.
func (r *mongoConversationRepo) Messages(ctx context.Context, conversationID string) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.messages.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
