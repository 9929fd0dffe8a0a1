package postgresadapter

import (
	"context"

	"github.com/google/uuid"

	"storefront/contexts/content-studio/landing-page-service/domain/entities"
)

// UUIDGenerator implements ports.IDGenerator and ports.BlockIDGenerator using
// RFC 4122 UUID v4 values.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (UUIDGenerator) NewBlockID() string {
	return uuid.NewString()
}

func (UUIDGenerator) ScopedBlockIDs(_ string) entities.IDFunc {
	return uuid.NewString
}
