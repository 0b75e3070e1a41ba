package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifebit/platform/internal/core/domain"
)

const condoCollection = "condominiums"

// Condominium IDs are assigned at registration, so the document keeps the
// string ID as-is instead of an ObjectID.
type MongoCondoRepository struct {
	coll *mongo.Collection
}

func NewCondoRepository(db *mongo.Database) *MongoCondoRepository {
	return &MongoCondoRepository{coll: db.Collection(condoCollection)}
}

func (r *MongoCondoRepository) FindByID(ctx context.Context, id string) (*domain.Condominium, error) {
	var condo domain.Condominium
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&condo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCondoNotFound
		}
		return nil, fmt.Errorf("find condominium: %w", err)
	}
	condo.ID = id
	return &condo, nil
}

func (r *MongoCondoRepository) Upsert(ctx context.Context, condo *domain.Condominium) (*domain.Condominium, error) {
	update := bson.M{"$set": bson.M{
		"name":           condo.Name,
		"address":        condo.Address,
		"city":           condo.City,
		"units":          condo.Units,
		"setup_complete": condo.SetupComplete,
		"created_at":     condo.CreatedAt,
		"updated_at":     condo.UpdatedAt,
	}}

	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": condo.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert condominium: %w", err)
	}
	return condo, nil
}
