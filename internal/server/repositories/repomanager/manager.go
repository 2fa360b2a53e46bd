// Package repomanager vends the repository set for a configured store
// backend: MongoDB (the primary document store) or PostgreSQL.
package repomanager

import (
	"github.com/emeraldsys/acidity-backend/internal/server/repositories/users"
	"github.com/emeraldsys/acidity-backend/internal/server/repositories/versions"
)

// RepositoryManager hands out one repository per persisted entity.
type RepositoryManager interface {
	Users() users.Repository
	Versions() versions.Repository
}
