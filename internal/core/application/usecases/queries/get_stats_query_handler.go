package queries

import (
	"context"

	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStatsQueryHandler computes the global statistics by a full scan of
// the shipments table. No materialized state; the table is small enough
// that the aggregate query is the simplest correct answer.
type GetStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatsQueryHandler creates the handler.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStatsQuery,
) (GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	if !query.Actor().IsAdmin() {
		return GetStatsQueryResponse{}, errs.NewNotAuthorizedError(query.Actor().Role().String(), "getStats")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(price), 0)
		FROM shipments
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetStatsQueryResponse{}, err
	}
	defer rows.Close()

	resp := GetStatsQueryResponse{
		CountsByStatus: make(map[string]int64),
	}

	for rows.Next() {
		var (
			status  string
			count   int64
			revenue float64
		)
		if err = rows.Scan(&status, &count, &revenue); err != nil {
			return GetStatsQueryResponse{}, err
		}

		resp.CountsByStatus[status] = count
		resp.TotalShipments += count
		resp.TotalRevenue += revenue
	}

	if err = rows.Err(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	return resp, nil
}
