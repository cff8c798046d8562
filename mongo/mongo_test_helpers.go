package mongo

import (
	"context"
	"time"

	mim "github.com/ONSdigital/dp-mongodb-in-memory"
	mongoDriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
	"github.com/ONSdigital/dp-sdmx-api/config"
	"github.com/ONSdigital/dp-sdmx-api/models"
)

// getTestMongoDB initializes a MongoDB connection for use in tests
func getTestMongoDB(ctx context.Context) (*Mongo, *mim.Server, error) {
	mongoVersion := "4.4.8"

	cfg, err := config.Get()
	if err != nil {
		return nil, nil, err
	}

	mongoServer, err := mim.Start(ctx, mongoVersion)
	if err != nil {
		return nil, nil, err
	}
	mongoConfig := getTestMongoDriverConfig(mongoServer, cfg.Database, cfg.Collections)
	conn, err := mongoDriver.Open(mongoConfig)
	if err != nil {
		return nil, nil, err
	}

	return &Mongo{
		MongoConfig: config.MongoConfig{MongoDriverConfig: *mongoConfig},
		Connection:  conn,
	}, mongoServer, nil
}

// Custom config to work with mongo in memory
func getTestMongoDriverConfig(mongoServer *mim.Server, database string, collections map[string]string) *mongoDriver.MongoDriverConfig {
	return &mongoDriver.MongoDriverConfig{
		ConnectTimeout:  5 * time.Second,
		QueryTimeout:    5 * time.Second,
		ClusterEndpoint: mongoServer.URI(),
		Database:        database,
		Collections:     collections,
	}
}

func setupMessagesTestData(ctx context.Context, mongoStore *Mongo) ([]*models.Message, error) {
	if err := mongoStore.Connection.DropDatabase(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)

	messages := []*models.Message{
		{ID: "message1", ETag: "etag1", DataSets: 1, LastUpdated: now.Add(-2 * time.Hour), Raw: `{"errors": []}`},
		{ID: "message2", ETag: "etag2", DataSets: 2, LastUpdated: now.Add(-time.Hour), Raw: `{"errors": []}`},
		{ID: "message3", ETag: "etag3", HasErrors: true, LastUpdated: now, Raw: `{"errors": []}`},
	}

	for _, m := range messages {
		if err := mongoStore.AddMessage(ctx, m); err != nil {
			return nil, err
		}
	}

	return messages, nil
}
