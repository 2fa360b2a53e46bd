package users

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

const mongoCollection = "users"

type MongoRepository struct {
	c *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{c: db.Collection(mongoCollection)}
}

func (r *MongoRepository) GetByKey(ctx context.Context, key string) (*models.User, error) {
	user := &models.User{}
	err := r.c.FindOne(ctx, bson.M{"key": key}).Decode(user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("mongo error: %w", err)
	}

	return user, nil
}

func (r *MongoRepository) SetFingerprint(ctx context.Context, key string, kind models.FingerprintKind, value string) error {
	update := bson.M{"$set": bson.M{fingerprintField(kind): value}}
	res := r.c.FindOneAndUpdate(ctx, bson.M{"key": key}, update)

	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("mongo error: %w", err)
	}

	return nil
}

// fingerprintField maps a kind onto its BSON field name.
func fingerprintField(kind models.FingerprintKind) string {
	if kind == models.FingerprintSw {
		return "swFingerprint"
	}
	return "synFingerprint"
}
