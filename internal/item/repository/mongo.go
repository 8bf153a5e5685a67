package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guestara/menu-service/internal/model"
)

const itemsCollection = "items"

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(itemsCollection)}
}

func (r *MongoRepository) Create(ctx context.Context, it *model.Item) error {
	if _, err := r.collection.InsertOne(ctx, it); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) FindByName(ctx context.Context, name string) (*model.Item, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*model.Item, error) {
	var it model.Item
	err := r.collection.FindOne(ctx, filter).Decode(&it)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return &it, nil
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]model.Item, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoRepository) FindByCategory(ctx context.Context, categoryID string) ([]model.Item, error) {
	return r.findMany(ctx, bson.M{"categoryId": categoryID})
}

func (r *MongoRepository) FindBySubcategory(ctx context.Context, subcategoryID string) ([]model.Item, error) {
	return r.findMany(ctx, bson.M{"subcategoryId": subcategoryID})
}

// SearchByName does a case-insensitive partial match on the item name.
func (r *MongoRepository) SearchByName(ctx context.Context, name string) ([]model.Item, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}
	return r.findMany(ctx, bson.M{"name": bson.M{"$regex": pattern}})
}

func (r *MongoRepository) findMany(ctx context.Context, filter bson.M) ([]model.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []model.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

func (r *MongoRepository) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*model.Item, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Item
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return &updated, nil
}
