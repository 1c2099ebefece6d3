package database

import (
	"context"
	"errors"
	"fmt"

	"gingallery/gallery"
	"gingallery/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CategoryStore wraps the categories collection. The photo push/pull
// methods are single-document atomic updates, which is what lets concurrent
// uploads to the same category interleave safely without any in-process
// locking.
type CategoryStore struct {
	col *mongo.Collection
}

func NewCategoryStore(client *mongo.Client, dbName string) *CategoryStore {
	return &CategoryStore{col: client.Database(dbName).Collection("categories")}
}

func (s *CategoryStore) Insert(ctx context.Context, category *models.Category) error {
	if _, err := s.col.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (s *CategoryStore) FindByID(ctx context.Context, id string) (*models.Category, error) {
	category := &models.Category{}
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, gallery.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding category: %w", err)
	}
	return category, nil
}

func (s *CategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	return categories, nil
}

// Update sets only the fields present in the update.
func (s *CategoryStore) Update(ctx context.Context, id string, update models.CategoryUpdate) error {
	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Sentences != nil {
		fields["sentences"] = *update.Sentences
	}
	if len(fields) == 0 {
		return &gallery.ValidationError{Reason: "No fields to update"}
	}

	result, err := s.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	if result.MatchedCount == 0 {
		return gallery.ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if result.DeletedCount == 0 {
		return gallery.ErrCategoryNotFound
	}
	return nil
}

// PushPhoto appends the photo to the named array field. The matched count
// reports whether the category exists.
func (s *CategoryStore) PushPhoto(ctx context.Context, categoryID, field string, photo models.Photo) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"id": categoryID},
		bson.M{"$push": bson.M{field: photo}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// PullPhoto removes the entry with the given photo id from the named array
// field. Matched count only reflects the category, so pulling an absent
// photo id from an existing category still matches.
func (s *CategoryStore) PullPhoto(ctx context.Context, categoryID, field, photoID string) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"id": categoryID},
		bson.M{"$pull": bson.M{field: bson.M{"id": photoID}}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
