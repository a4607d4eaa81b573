package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SearchShipmentsQueryHandler serves substring search over the fields the
// counter staff actually search by: tracking id, receiver name, receiver
// phone.
type SearchShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewSearchShipmentsQueryHandler creates the handler.
func NewSearchShipmentsQueryHandler(db *gorm.DB) SearchShipmentsQueryHandler {
	return SearchShipmentsQueryHandler{db: db}
}

// Handle executes the search, newest matches first.
func (h SearchShipmentsQueryHandler) Handle(
	ctx context.Context,
	query SearchShipmentsQuery,
) ([]ShipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, args := shipmentScope(query.Actor())
	pattern := "%" + query.Term() + "%"
	args = append(args, pattern, pattern, pattern, DefaultListLimit)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM shipments
		WHERE %s
		  AND (tracking_id ILIKE ? OR receiver_name ILIKE ? OR receiver_phone LIKE ?)
		ORDER BY created_at DESC
		LIMIT ?
	`, shipmentSummaryColumns, scope), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShipmentSummaries(rows)
}
