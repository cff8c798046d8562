package store

import (
	"context"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-sdmx-api/models"
)

// DataStore provides a datastore.Storer interface used to store, retrieve and remove messages
type DataStore struct {
	Backend Storer
}

//go:generate moq -out datastoretest/datastore.go -pkg storetest . Storer

// Storer represents basic data access via Add, Get and Delete methods, plus its lifecycle
type Storer interface {
	AddMessage(ctx context.Context, message *models.Message) error
	GetMessage(ctx context.Context, id string) (*models.Message, error)
	GetMessages(ctx context.Context, offset, limit int) ([]*models.Message, int, error)
	DeleteMessage(ctx context.Context, id string) error
	Checker(ctx context.Context, state *healthcheck.CheckState) error
	Close(ctx context.Context) error
}

func (ds *DataStore) AddMessage(ctx context.Context, message *models.Message) error {
	return ds.Backend.AddMessage(ctx, message)
}

func (ds *DataStore) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	return ds.Backend.GetMessage(ctx, id)
}

func (ds *DataStore) GetMessages(ctx context.Context, offset, limit int) ([]*models.Message, int, error) {
	return ds.Backend.GetMessages(ctx, offset, limit)
}

func (ds *DataStore) DeleteMessage(ctx context.Context, id string) error {
	return ds.Backend.DeleteMessage(ctx, id)
}
