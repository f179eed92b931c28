package inmemdb

import (
	"context"

	"github.com/zenflowhq/zenflow/core/studio"
)

type studioRepository struct {
	db *studioTable
}

var _ studio.Repository = (*studioRepository)(nil) // interface compliance check

func NewStudioRepository(db *DB) studio.Repository {
	return &studioRepository{db: db.studio}
}

func (repo *studioRepository) GetProfile(_ context.Context) (studio.Profile, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.profile, nil
}

func (repo *studioRepository) ReplaceProfile(_ context.Context, p studio.Profile) (studio.Profile, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.profile = p
	return p, nil
}
