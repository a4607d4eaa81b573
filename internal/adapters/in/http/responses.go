package http

import (
	"time"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
)

// ShipmentSummaryResponse is the list row shape for shipment collections.
type ShipmentSummaryResponse struct {
	ID            string    `json:"id"`
	TrackingID    string    `json:"trackingId"`
	SenderName    string    `json:"senderName"`
	ReceiverName  string    `json:"receiverName"`
	ReceiverPhone string    `json:"receiverPhone"`
	Status        string    `json:"status"`
	AssignedTo    *string   `json:"assignedTo,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	DeliveryType  string    `json:"deliveryType"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ShipmentDetailResponse is the full shipment view for single reads.
type ShipmentDetailResponse struct {
	ID         string `json:"id"`
	TrackingID string `json:"trackingId"`

	SenderName    string  `json:"senderName"`
	SenderPhone   *string `json:"senderPhone,omitempty"`
	ReceiverName  string  `json:"receiverName"`
	ReceiverPhone string  `json:"receiverPhone"`

	PickupAddress   string  `json:"pickupAddress"`
	DeliveryAddress string  `json:"deliveryAddress"`
	BranchID        *string `json:"branchId,omitempty"`

	Status     string  `json:"status"`
	AssignedTo *string `json:"assignedTo,omitempty"`

	Weight        *float64 `json:"weight,omitempty"`
	Distance      *float64 `json:"distance,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	PaymentStatus *string  `json:"paymentStatus,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	DeliveryType  string   `json:"deliveryType"`

	PodID     *string `json:"podId,omitempty"`
	InvoiceID *string `json:"invoiceId,omitempty"`
	BookedBy  *string `json:"bookedBy,omitempty"`

	Notes                string `json:"notes,omitempty"`
	ExpectedDeliveryDate string `json:"expectedDeliveryDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuditEntryView is one audit trail row.
type AuditEntryView struct {
	ID          string    `json:"id"`
	ShipmentID  *string   `json:"shipmentId,omitempty"`
	TrackingID  string    `json:"trackingId"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	PerformedBy *string   `json:"performedBy,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// BranchView is one branch row.
type BranchView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	ManagerID *string   `json:"managerId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AgentView is one agent directory row.
type AgentView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// StatsResponse is the system-wide dashboard payload.
type StatsResponse struct {
	TotalShipments int64            `json:"totalShipments"`
	CountsByStatus map[string]int64 `json:"countsByStatus"`
	TotalRevenue   float64          `json:"totalRevenue"`
}

// AgentStatsResponse is the per-agent performance payload.
type AgentStatsResponse struct {
	AgentID        string  `json:"agentId"`
	TotalAssigned  int64   `json:"totalAssigned"`
	Completed      int64   `json:"completed"`
	Active         int64   `json:"active"`
	Earnings       float64 `json:"earnings"`
	MonthlyTarget  int     `json:"monthlyTarget"`
	TargetProgress float64 `json:"targetProgress"`
}

// CustomerStatsResponse is the per-customer shipment count payload.
type CustomerStatsResponse struct {
	TotalShipments int64 `json:"totalShipments"`
	Pending        int64 `json:"pending"`
	InTransit      int64 `json:"inTransit"`
	Delivered      int64 `json:"delivered"`
}

func toSummaryResponses(summaries []queries.ShipmentSummary) []ShipmentSummaryResponse {
	out := make([]ShipmentSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = ShipmentSummaryResponse{
			ID:            s.ID.String(),
			TrackingID:    s.TrackingID,
			SenderName:    s.SenderName,
			ReceiverName:  s.ReceiverName,
			ReceiverPhone: s.ReceiverPhone,
			Status:        s.Status,
			AssignedTo:    uuidString(s.AssignedTo),
			Price:         s.Price,
			DeliveryType:  s.DeliveryType,
			CreatedAt:     s.CreatedAt,
			UpdatedAt:     s.UpdatedAt,
		}
	}
	return out
}

func toDetailResponse(d queries.GetShipmentQueryResponse) ShipmentDetailResponse {
	return ShipmentDetailResponse{
		ID:                   d.ID.String(),
		TrackingID:           d.TrackingID,
		SenderName:           d.SenderName,
		SenderPhone:          d.SenderPhone,
		ReceiverName:         d.ReceiverName,
		ReceiverPhone:        d.ReceiverPhone,
		PickupAddress:        d.PickupAddress,
		DeliveryAddress:      d.DeliveryAddress,
		BranchID:             uuidString(d.BranchID),
		Status:               d.Status,
		AssignedTo:           uuidString(d.AssignedTo),
		Weight:               d.Weight,
		Distance:             d.Distance,
		Price:                d.Price,
		PaymentStatus:        d.PaymentStatus,
		PaymentMethod:        d.PaymentMethod,
		DeliveryType:         d.DeliveryType,
		PodID:                uuidString(d.PodID),
		InvoiceID:            uuidString(d.InvoiceID),
		BookedBy:             uuidString(d.BookedBy),
		Notes:                d.Notes,
		ExpectedDeliveryDate: d.ExpectedDeliveryDate,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

func toAuditViews(entries []queries.AuditEntryResponse) []AuditEntryView {
	out := make([]AuditEntryView, len(entries))
	for i, e := range entries {
		out[i] = AuditEntryView{
			ID:          e.ID.String(),
			ShipmentID:  uuidString(e.ShipmentID),
			TrackingID:  e.TrackingID,
			Action:      e.Action,
			Description: e.Description,
			PerformedBy: uuidString(e.PerformedBy),
			Timestamp:   e.Timestamp,
		}
	}
	return out
}

func toBranchViews(branches []queries.BranchResponse) []BranchView {
	out := make([]BranchView, len(branches))
	for i, b := range branches {
		out[i] = BranchView{
			ID:        b.ID.String(),
			Name:      b.Name,
			Address:   b.Address,
			Phone:     b.Phone,
			ManagerID: uuidString(b.ManagerID),
			CreatedAt: b.CreatedAt,
		}
	}
	return out
}

func toAgentViews(agents []queries.AgentResponse) []AgentView {
	out := make([]AgentView, len(agents))
	for i, a := range agents {
		out[i] = AgentView{
			ID:    a.ID.String(),
			Name:  a.Name,
			Phone: a.Phone,
		}
	}
	return out
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
