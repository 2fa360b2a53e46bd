package repomanager

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emeraldsys/acidity-backend/internal/server/repositories/users"
	"github.com/emeraldsys/acidity-backend/internal/server/repositories/versions"
)

// MongoRepositoryManager vends MongoDB-backed repository implementations
// bound to a single database handle.
type MongoRepositoryManager struct {
	users    *users.MongoRepository
	versions *versions.MongoRepository
}

// NewMongoRepositoryManager constructs a MongoDB-backed RepositoryManager.
func NewMongoRepositoryManager(db *mongo.Database) *MongoRepositoryManager {
	return &MongoRepositoryManager{
		users:    users.NewMongoRepository(db),
		versions: versions.NewMongoRepository(db),
	}
}

func (m *MongoRepositoryManager) Users() users.Repository { return m.users }

func (m *MongoRepositoryManager) Versions() versions.Repository { return m.versions }
