package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler serves scoped shipment lists from the read
// model.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment list queries.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query. Rows come back most recently created first.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, args := shipmentScope(query.Actor())
	where := scope
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM shipments
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, shipmentSummaryColumns, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentSummaries(rows)
}
