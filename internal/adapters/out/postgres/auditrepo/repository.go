package auditrepo

import (
	"context"

	"courier/internal/core/domain/model/auditlog"

	"gorm.io/gorm"
)

// GormAuditLogRepository implements AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GORM audit log repository.
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append inserts a new audit entry. Entries are never updated or deleted.
func (r *GormAuditLogRepository) Append(ctx context.Context, entry *auditlog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
