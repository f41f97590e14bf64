package postgre

import (
	"context"
	"database/sql"

	repo "air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/internal/model"
)

// GetRoute retrieves the route for an exact (origin, destination) pair.
// Returns zero-value Route (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetRoute(ctx context.Context, opt repo.GetRouteOptions) (model.Route, error) {
	const query = `
		SELECT id, origin, destination, base_price_per_kg, transit_days
		FROM routes
		WHERE origin = $1 AND destination = $2
		LIMIT 1`

	var route model.Route
	err := r.db.QueryRowContext(ctx, query, opt.Origin, opt.Destination).Scan(
		&route.ID, &route.Origin, &route.Destination, &route.BasePricePerKg, &route.TransitDays,
	)
	if err == sql.ErrNoRows {
		return model.Route{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRoute"), err)
		return model.Route{}, repo.ErrFailedToGet
	}
	return route, nil
}

// ListRoutes returns every lane, ordered for stable display.
func (r *implRepository) ListRoutes(ctx context.Context) ([]model.Route, error) {
	const query = `
		SELECT id, origin, destination, base_price_per_kg, transit_days
		FROM routes
		ORDER BY origin, destination`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRoutes"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var routes []model.Route
	for rows.Next() {
		var route model.Route
		if err := rows.Scan(&route.ID, &route.Origin, &route.Destination, &route.BasePricePerKg, &route.TransitDays); err != nil {
			return nil, repo.ErrFailedToList
		}
		routes = append(routes, route)
	}
	return routes, nil
}
