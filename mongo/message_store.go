package mongo

import (
	"context"
	"errors"

	"github.com/ONSdigital/dp-sdmx-api/apierrors"
	"github.com/ONSdigital/dp-sdmx-api/config"
	"github.com/ONSdigital/dp-sdmx-api/models"
	"github.com/ONSdigital/log.go/v2/log"
	"go.mongodb.org/mongo-driver/bson"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
)

func (m *Mongo) messages() *mongodriver.Collection {
	return m.Connection.Collection(m.ActualCollectionName(config.MessagesCollection))
}

func buildMessageQuery(id string) bson.M {
	return bson.M{"_id": id}
}

// AddMessage stores a message document. Raw messages that cannot fit in one document are
// rejected with ErrMessageTooLarge.
func (m *Mongo) AddMessage(ctx context.Context, message *models.Message) error {
	if len(message.Raw) > config.MaxStoredMessageSize {
		return apierrors.ErrMessageTooLarge
	}
	if _, err := m.messages().Insert(ctx, message); err != nil {
		log.Error(ctx, "failed to insert message", err, log.Data{"message_id": message.ID})
		return err
	}
	return nil
}

// GetMessage retrieves a message document, including the raw message
func (m *Mongo) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	var message models.Message
	if err := m.messages().FindOne(ctx, buildMessageQuery(id), &message); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return nil, apierrors.ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// GetMessages retrieves a page of message documents, most recent first, without the raw messages.
// It also returns the total number of stored messages.
func (m *Mongo) GetMessages(ctx context.Context, offset, limit int) ([]*models.Message, int, error) {
	var messages []*models.Message
	totalCount, err := m.messages().Find(ctx, bson.M{}, &messages,
		mongodriver.Sort(bson.M{"last_updated": -1}),
		mongodriver.Projection(bson.M{"raw": 0}),
		mongodriver.Offset(offset),
		mongodriver.Limit(limit),
	)
	if err != nil {
		return nil, 0, err
	}
	if messages == nil {
		messages = []*models.Message{}
	}
	return messages, totalCount, nil
}

// DeleteMessage removes a message document
func (m *Mongo) DeleteMessage(ctx context.Context, id string) error {
	if _, err := m.messages().Must().Delete(ctx, buildMessageQuery(id)); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocumentFound) {
			return apierrors.ErrMessageNotFound
		}
		return err
	}
	return nil
}
