package usecase

import (
	"context"

	"air-cargo-assistant/internal/model"
)

// Routes returns the full priced-lane table.
func (uc *implUseCase) Routes(ctx context.Context) ([]model.Route, error) {
	routes, err := uc.repo.ListRoutes(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Routes ListRoutes: %v", err)
		return nil, err
	}
	return routes, nil
}
