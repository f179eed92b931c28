package studio

import (
	"context"
)

type (
	Repository interface {
		GetProfile(ctx context.Context) (Profile, error)
		// ReplaceProfile swaps the whole singleton; there is no field merge.
		ReplaceProfile(ctx context.Context, p Profile) (Profile, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Get(ctx context.Context) (Profile, error) {
	return svc.repo.GetProfile(ctx)
}

func (svc *Service) Update(ctx context.Context, p Profile) (Profile, error) {
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return svc.repo.ReplaceProfile(ctx, p)
}
