// Package auditrepo persists the append-only audit trail. Entries are only
// ever inserted through the repository; reads go through the query layer.
package auditrepo

import (
	"time"

	"courier/internal/core/domain/model/auditlog"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuditLogDTO represents the database structure for audit entries. ShipmentID
// carries no foreign key so entries outlive the shipment they describe.
type AuditLogDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID  *uuid.UUID `gorm:"type:uuid;index"`
	TrackingID  string     `gorm:"size:32;index"`
	Action      string     `gorm:"size:20"`
	Description string
	PerformedBy *uuid.UUID `gorm:"type:uuid"`
	Timestamp   time.Time  `gorm:"index"`
}

// TableName specifies the database table name for audit entries.
func (AuditLogDTO) TableName() string {
	return "audit_logs"
}

func fromDomain(entry *auditlog.Entry) AuditLogDTO {
	return AuditLogDTO{
		ID:          entry.ID().Bytes(),
		ShipmentID:  rawUUID(entry.ShipmentID()),
		TrackingID:  entry.TrackingID(),
		Action:      entry.Action().String(),
		Description: entry.Description(),
		PerformedBy: rawUUID(entry.PerformedBy()),
		Timestamp:   entry.Timestamp(),
	}
}

func rawUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
