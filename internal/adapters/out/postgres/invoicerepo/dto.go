// Package invoicerepo persists invoice snapshots.
package invoicerepo

import (
	"time"

	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for invoices.
type InvoiceDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	InvoiceNumber   string    `gorm:"size:32;uniqueIndex"`
	Amount          float64
	CustomerName    string
	CustomerAddress string
	Status          string `gorm:"size:10"`
	GeneratedAt     time.Time
}

// TableName specifies the database table name for invoices.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:              aggregate.ID().Bytes(),
		ShipmentID:      aggregate.ShipmentID().Bytes(),
		InvoiceNumber:   aggregate.InvoiceNumber(),
		Amount:          aggregate.Amount(),
		CustomerName:    aggregate.CustomerName(),
		CustomerAddress: aggregate.CustomerAddress(),
		Status:          aggregate.Status().String(),
		GeneratedAt:     aggregate.GeneratedAt(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	status, err := invoice.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id,
		shipmentID,
		dto.InvoiceNumber,
		dto.Amount,
		dto.CustomerName,
		dto.CustomerAddress,
		status,
		dto.GeneratedAt,
	)
}
