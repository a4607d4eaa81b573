package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler serves the single-shipment detail view.
// Returns ObjectNotFoundError both for a missing shipment and for one the
// actor may not read, so the response does not leak existence.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment detail queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			sender_name,
			sender_phone,
			receiver_name,
			receiver_phone,
			pickup_address,
			delivery_address,
			branch_id,
			status,
			assigned_to,
			weight,
			distance,
			price,
			payment_status,
			payment_method,
			delivery_type,
			pod_id,
			invoice_id,
			booked_by,
			notes,
			expected_delivery_date,
			created_at,
			updated_at
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	resp, err := scanShipmentDetail(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
		}
		return GetShipmentQueryResponse{}, err
	}

	if !canReadShipmentRow(query.Actor(), resp) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}

	return resp, nil
}

func scanShipmentDetail(row *sql.Row) (GetShipmentQueryResponse, error) {
	var (
		resp          GetShipmentQueryResponse
		id            uuid.UUID
		senderPhone   sql.NullString
		branchID      uuid.NullUUID
		assignedTo    uuid.NullUUID
		weight        sql.NullFloat64
		distance      sql.NullFloat64
		price         sql.NullFloat64
		paymentStatus sql.NullString
		paymentMethod sql.NullString
		podID         uuid.NullUUID
		invoiceID     uuid.NullUUID
		bookedBy      uuid.NullUUID
	)

	err := row.Scan(
		&id,
		&resp.TrackingID,
		&resp.SenderName,
		&senderPhone,
		&resp.ReceiverName,
		&resp.ReceiverPhone,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&branchID,
		&resp.Status,
		&assignedTo,
		&weight,
		&distance,
		&price,
		&paymentStatus,
		&paymentMethod,
		&resp.DeliveryType,
		&podID,
		&invoiceID,
		&bookedBy,
		&resp.Notes,
		&resp.ExpectedDeliveryDate,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	shipmentID, err := kernelUUID(id)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.ID = shipmentID

	if resp.BranchID, err = optionalUUID(branchID); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if resp.AssignedTo, err = optionalUUID(assignedTo); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if resp.PodID, err = optionalUUID(podID); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if resp.InvoiceID, err = optionalUUID(invoiceID); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if resp.BookedBy, err = optionalUUID(bookedBy); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp.SenderPhone = optionalString(senderPhone)
	resp.PaymentStatus = optionalString(paymentStatus)
	resp.PaymentMethod = optionalString(paymentMethod)
	resp.Weight = optionalFloat(weight)
	resp.Distance = optionalFloat(distance)
	resp.Price = optionalFloat(price)

	return resp, nil
}
