// Package userrepo resolves user references against the shared users table.
// The courier core does not manage accounts; it only reads them.
package userrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleAgent is the user role eligible for shipment assignment.
const RoleAgent = "agent"

// UserDTO represents the database structure for users.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Role  string `gorm:"size:10;index"`
	Phone string `gorm:"size:10"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserDirectory implements UserDirectory using GORM.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a new GORM user directory.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// GetAgent retrieves an agent by id. A user with any other role is reported
// as not found so callers cannot probe for non-agent accounts.
func (d *GormUserDirectory) GetAgent(ctx context.Context, id kernel.UUID) (ports.AgentRecord, error) {
	if err := id.Validate(); err != nil {
		return ports.AgentRecord{}, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.AgentRecord{}, errs.NewObjectNotFoundError("agent", id.String())
		}
		return ports.AgentRecord{}, err
	}

	if dto.Role != RoleAgent {
		return ports.AgentRecord{}, errs.NewObjectNotFoundError("agent", id.String())
	}

	agentID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.AgentRecord{}, err
	}

	return ports.AgentRecord{
		ID:    agentID,
		Name:  dto.Name,
		Phone: dto.Phone,
	}, nil
}
