package versions

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emeraldsys/acidity-backend/internal/common"
	"github.com/emeraldsys/acidity-backend/internal/server/models"
)

const mongoCollection = "versions"

// MongoRepository stores version records in the versions collection. Mongo
// cannot express the flag-clear + insert pair as a single document update,
// so InsertAsLatest serializes publishes per channel with a mutex. Publish
// volume is low and not latency-sensitive.
type MongoRepository struct {
	c        *mongo.Collection
	muStable sync.Mutex
	muPre    sync.Mutex
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{c: db.Collection(mongoCollection)}
}

func (r *MongoRepository) GetLatest(ctx context.Context, ch models.Channel) (*models.Version, error) {
	return r.findOne(ctx, bson.M{flagField(ch): true})
}

func (r *MongoRepository) GetByVersion(ctx context.Context, version string) (*models.Version, error) {
	return r.findOne(ctx, bson.M{"version": version})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Version, error) {
	v := &models.Version{}
	err := r.c.FindOne(ctx, filter).Decode(v)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("mongo error: %w", err)
	}

	return v, nil
}

func (r *MongoRepository) InsertAsLatest(ctx context.Context, version string, ch models.Channel) error {
	mu := r.lockFor(ch)
	mu.Lock()
	defer mu.Unlock()

	field := flagField(ch)

	err := r.c.FindOneAndUpdate(ctx,
		bson.M{field: true},
		bson.M{"$set": bson.M{field: false}},
	).Err()
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("mongo error: %w", err)
	}

	doc := &models.Version{
		Version:      version,
		LatestStable: ch == models.ChannelStable,
		LatestPre:    ch == models.ChannelPre,
	}
	if _, err := r.c.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongo error: %w", err)
	}

	return nil
}

func (r *MongoRepository) lockFor(ch models.Channel) *sync.Mutex {
	if ch == models.ChannelPre {
		return &r.muPre
	}
	return &r.muStable
}

// flagField maps a channel onto its BSON flag field name.
func flagField(ch models.Channel) string {
	if ch == models.ChannelPre {
		return "latestPre"
	}
	return "latestStable"
}
