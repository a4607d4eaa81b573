// Package invoice contains the Invoice entity: a billing snapshot taken
// from a shipment at generation time. Invoices are not kept in sync with
// later shipment edits.
package invoice

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// Status tracks the settlement state of an invoice.
type Status string

const (
	StatusPaid   Status = "paid"
	StatusUnpaid Status = "unpaid"
	StatusVoid   Status = "void"
)

// StatusFromString parses an invoice status value.
func StatusFromString(s string) (Status, error) {
	switch Status(s) {
	case StatusPaid, StatusUnpaid, StatusVoid:
		return Status(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("invoice status",
			fmt.Errorf("%q is not a valid invoice status", s))
	}
}

// Validate checks the status is one of the known values.
func (s Status) Validate() error {
	_, err := StatusFromString(string(s))
	return err
}

func (s Status) String() string {
	return string(s)
}

// ErrInvoiceIsNotConstructed is returned when an Invoice was not created
// through NewInvoice or RestoreInvoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")

// Invoice bills the sender of a shipment. Amount is the shipment's price at
// generation time (zero when the price was never computed).
type Invoice struct {
	id              kernel.UUID
	shipmentID      kernel.UUID
	invoiceNumber   string
	amount          float64
	customerName    string
	customerAddress string
	status          Status
	generatedAt     time.Time

	isConstructed bool
}

// NewInvoice creates an unpaid invoice snapshot for a shipment.
func NewInvoice(
	id kernel.UUID,
	shipmentID kernel.UUID,
	invoiceNumber string,
	amount float64,
	customerName string,
	customerAddress string,
	generatedAt time.Time,
) (*Invoice, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate()); err != nil {
		return nil, err
	}
	if invoiceNumber == "" {
		return nil, errs.NewValueIsRequiredError("invoiceNumber")
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}

	return &Invoice{
		id:              id,
		shipmentID:      shipmentID,
		invoiceNumber:   invoiceNumber,
		amount:          amount,
		customerName:    customerName,
		customerAddress: customerAddress,
		status:          StatusUnpaid,
		generatedAt:     generatedAt,
		isConstructed:   true,
	}, nil
}

// RestoreInvoice reconstructs an invoice from persistence.
func RestoreInvoice(
	id kernel.UUID,
	shipmentID kernel.UUID,
	invoiceNumber string,
	amount float64,
	customerName string,
	customerAddress string,
	status Status,
	generatedAt time.Time,
) (*Invoice, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Invoice{
		id:              id,
		shipmentID:      shipmentID,
		invoiceNumber:   invoiceNumber,
		amount:          amount,
		customerName:    customerName,
		customerAddress: customerAddress,
		status:          status,
		generatedAt:     generatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the invoice was built through a constructor.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

func (i *Invoice) ID() kernel.UUID         { return i.id }
func (i *Invoice) ShipmentID() kernel.UUID { return i.shipmentID }
func (i *Invoice) InvoiceNumber() string   { return i.invoiceNumber }
func (i *Invoice) Amount() float64         { return i.amount }
func (i *Invoice) CustomerName() string    { return i.customerName }
func (i *Invoice) CustomerAddress() string { return i.customerAddress }
func (i *Invoice) Status() Status          { return i.status }
func (i *Invoice) GeneratedAt() time.Time  { return i.generatedAt }
