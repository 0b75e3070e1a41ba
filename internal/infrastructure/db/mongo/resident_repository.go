package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

const residentCollection = "residents"

type MongoResidentRepository struct {
	coll *mongo.Collection
}

func NewResidentRepository(db *mongo.Database) *MongoResidentRepository {
	return &MongoResidentRepository{coll: db.Collection(residentCollection)}
}

// Create inserts a new resident. IDs are generated here so the document
// round-trips without an ObjectID/string mismatch.
func (r *MongoResidentRepository) Create(ctx context.Context, resident *domain.Resident) (*domain.Resident, error) {
	resident.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, resident); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateResident
		}
		return nil, fmt.Errorf("insert resident: %w", err)
	}
	return resident, nil
}

func (r *MongoResidentRepository) FindByID(ctx context.Context, condoID, id string) (*domain.Resident, error) {
	var resident domain.Resident
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "condo_id": condoID}).Decode(&resident)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResidentNotFound
		}
		return nil, fmt.Errorf("find resident: %w", err)
	}
	return &resident, nil
}

func (r *MongoResidentRepository) List(ctx context.Context, f ports.ResidentFilter) ([]domain.Resident, int64, error) {
	filter := bson.M{"condo_id": f.CondoID}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count residents: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "surname", Value: 1}, {Key: "name", Value: 1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list residents: %w", err)
	}
	defer cur.Close(ctx)

	residents := make([]domain.Resident, 0, f.Limit)
	if err := cur.All(ctx, &residents); err != nil {
		return nil, 0, fmt.Errorf("decode residents: %w", err)
	}
	return residents, total, nil
}

func (r *MongoResidentRepository) Update(ctx context.Context, resident *domain.Resident) error {
	update := bson.M{"$set": bson.M{
		"name":       resident.Name,
		"surname":    resident.Surname,
		"email":      resident.Email,
		"unit":       resident.Unit,
		"phone":      resident.Phone,
		"status":     resident.Status,
		"updated_at": resident.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": resident.ID, "condo_id": resident.CondoID}, update)
	if err != nil {
		return fmt.Errorf("update resident: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrResidentNotFound
	}
	return nil
}

func (r *MongoResidentRepository) Delete(ctx context.Context, condoID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "condo_id": condoID})
	if err != nil {
		return fmt.Errorf("delete resident: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrResidentNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the resident queries rely on.
func (r *MongoResidentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "condo_id", Value: 1}, {Key: "surname", Value: 1}}},
		{
			Keys:    bson.D{{Key: "condo_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
