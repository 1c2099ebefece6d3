package database

import (
	"context"
	"errors"
	"fmt"

	"gingallery/gallery"
	"gingallery/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SettingsStore wraps the singleton global_settings document.
type SettingsStore struct {
	col *mongo.Collection
}

func NewSettingsStore(client *mongo.Client, dbName string) *SettingsStore {
	return &SettingsStore{col: client.Database(dbName).Collection("global_settings")}
}

// Get returns the stored settings, or the defaults when none exist yet.
func (s *SettingsStore) Get(ctx context.Context) (*models.GlobalSettings, error) {
	settings := &models.GlobalSettings{}
	err := s.col.FindOne(ctx, bson.M{"id": models.GlobalSettingsID}).Decode(settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		defaults := models.DefaultGlobalSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding settings: %w", err)
	}
	return settings, nil
}

// Update upserts the provided fields and returns the resulting document.
func (s *SettingsStore) Update(ctx context.Context, update models.GlobalSettingsUpdate) (*models.GlobalSettings, error) {
	fields := bson.M{}
	if update.BeforeAcceptMusic != nil {
		fields["before_accept_music"] = *update.BeforeAcceptMusic
	}
	if update.AfterAcceptMusic != nil {
		fields["after_accept_music"] = *update.AfterAcceptMusic
	}
	if len(fields) == 0 {
		return nil, &gallery.ValidationError{Reason: "No fields to update"}
	}

	_, err := s.col.UpdateOne(ctx,
		bson.M{"id": models.GlobalSettingsID},
		bson.M{"$set": fields},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}
	return s.Get(ctx)
}
