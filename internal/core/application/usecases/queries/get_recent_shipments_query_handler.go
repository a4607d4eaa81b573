package queries

import (
	"context"
	"fmt"

	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRecentShipmentsQueryHandler serves the recent-activity feed, ordered
// by last update. Admin only.
type GetRecentShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentShipmentsQueryHandler creates the handler.
func NewGetRecentShipmentsQueryHandler(db *gorm.DB) GetRecentShipmentsQueryHandler {
	return GetRecentShipmentsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetRecentShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetRecentShipmentsQuery,
) ([]ShipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin() {
		return nil, errs.NewNotAuthorizedError(query.Actor().Role().String(), "getRecentShipments")
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM shipments
		ORDER BY updated_at DESC
		LIMIT ?
	`, shipmentSummaryColumns), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentSummaries(rows)
}
