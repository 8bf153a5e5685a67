package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guestara/menu-service/internal/model"
)

const subcategoriesCollection = "subcategories"

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(subcategoriesCollection)}
}

func (r *MongoRepository) Create(ctx context.Context, s *model.Subcategory) error {
	if _, err := r.collection.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*model.Subcategory, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) FindByName(ctx context.Context, name string) (*model.Subcategory, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoRepository) FindByCategoryAndName(ctx context.Context, categoryID, name string) (*model.Subcategory, error) {
	return r.findOne(ctx, bson.M{"categoryId": categoryID, "name": name})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*model.Subcategory, error) {
	var s model.Subcategory
	err := r.collection.FindOne(ctx, filter).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find subcategory: %w", err)
	}
	return &s, nil
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]model.Subcategory, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoRepository) FindByCategory(ctx context.Context, categoryID string) ([]model.Subcategory, error) {
	return r.findMany(ctx, bson.M{"categoryId": categoryID})
}

func (r *MongoRepository) findMany(ctx context.Context, filter bson.M) ([]model.Subcategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer cursor.Close(ctx)

	subcategories := []model.Subcategory{}
	if err := cursor.All(ctx, &subcategories); err != nil {
		return nil, fmt.Errorf("decode subcategories: %w", err)
	}
	return subcategories, nil
}

func (r *MongoRepository) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*model.Subcategory, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Subcategory
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update subcategory: %w", err)
	}
	return &updated, nil
}
