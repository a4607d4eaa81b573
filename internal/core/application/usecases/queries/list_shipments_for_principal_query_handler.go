package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListShipmentsForPrincipalQueryHandler serves the "my shipments" view.
type ListShipmentsForPrincipalQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsForPrincipalQueryHandler creates the handler.
func NewListShipmentsForPrincipalQueryHandler(db *gorm.DB) ListShipmentsForPrincipalQueryHandler {
	return ListShipmentsForPrincipalQueryHandler{db: db}
}

// Handle executes the query, newest bookings first.
func (h ListShipmentsForPrincipalQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsForPrincipalQuery,
) ([]ShipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, args := shipmentScope(query.Actor())
	args = append(args, DefaultListLimit)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM shipments
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ?
	`, shipmentSummaryColumns, scope), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentSummaries(rows)
}
