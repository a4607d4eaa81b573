package ports

import (
	"context"

	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/kernel"
)

// InvoiceRepository is the persistence contract for invoices.
type InvoiceRepository interface {
	Add(ctx context.Context, inv *invoice.Invoice) error

	// Get retrieves an invoice by id. Returns an ObjectNotFoundError when
	// the invoice does not exist.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)
}
