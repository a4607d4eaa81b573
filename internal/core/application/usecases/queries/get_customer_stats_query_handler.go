package queries

import (
	"context"
	"strings"

	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerStatsQueryHandler computes the per-customer counts. The
// in-transit bucket covers every moving state: picked up, in transit and
// out for delivery.
type GetCustomerStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerStatsQueryHandler creates the handler.
func NewGetCustomerStatsQueryHandler(db *gorm.DB) GetCustomerStatsQueryHandler {
	return GetCustomerStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCustomerStatsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerStatsQuery,
) (GetCustomerStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerStatsQueryResponse{}, err
	}

	actor := query.Actor()
	if actor.Role() == principal.RoleAgent {
		return GetCustomerStatsQueryResponse{}, errs.NewNotAuthorizedError(actor.Role().String(), "getCustomerStats")
	}

	var clauses []string
	var args []any
	if query.Name() != "" {
		clauses = append(clauses, "sender_name = ?", "receiver_name = ?")
		args = append(args, query.Name(), query.Name())
	}
	if query.Phone() != "" {
		clauses = append(clauses, "sender_phone = ?", "receiver_phone = ?")
		args = append(args, query.Phone(), query.Phone())
	}
	match := "(" + strings.Join(clauses, " OR ") + ")"

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status IN ('picked_up', 'in_transit', 'out_for_delivery')),
			COUNT(*) FILTER (WHERE status = 'delivered')
		FROM shipments
		WHERE `+match, args...).Row()

	var resp GetCustomerStatsQueryResponse
	if err := row.Scan(&resp.TotalShipments, &resp.Pending, &resp.InTransit, &resp.Delivered); err != nil {
		return GetCustomerStatsQueryResponse{}, err
	}

	return resp, nil
}
