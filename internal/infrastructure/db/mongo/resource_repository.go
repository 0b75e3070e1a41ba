package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifebit/platform/internal/core/domain"
)

const resourceCollection = "resources"

type MongoResourceRepository struct {
	coll *mongo.Collection
}

func NewResourceRepository(db *mongo.Database) *MongoResourceRepository {
	return &MongoResourceRepository{coll: db.Collection(resourceCollection)}
}

func (r *MongoResourceRepository) Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	resource.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, resource); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateResource
		}
		return nil, fmt.Errorf("insert resource: %w", err)
	}
	return resource, nil
}

func (r *MongoResourceRepository) FindByID(ctx context.Context, condoID, id string) (*domain.Resource, error) {
	var resource domain.Resource
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "condo_id": condoID}).Decode(&resource)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("find resource: %w", err)
	}
	return &resource, nil
}

func (r *MongoResourceRepository) List(ctx context.Context, condoID string, onlyActive bool) ([]domain.Resource, error) {
	filter := bson.M{"condo_id": condoID}
	if onlyActive {
		filter["active"] = true
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer cur.Close(ctx)

	resources := make([]domain.Resource, 0)
	if err := cur.All(ctx, &resources); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}
	return resources, nil
}

func (r *MongoResourceRepository) Update(ctx context.Context, resource *domain.Resource) error {
	update := bson.M{"$set": bson.M{
		"name":        resource.Name,
		"description": resource.Description,
		"capacity":    resource.Capacity,
		"opens_at":    resource.OpensAt,
		"closes_at":   resource.ClosesAt,
		"active":      resource.Active,
		"updated_at":  resource.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": resource.ID, "condo_id": resource.CondoID}, update)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

func (r *MongoResourceRepository) Delete(ctx context.Context, condoID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "condo_id": condoID})
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}
