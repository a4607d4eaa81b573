// Package branchrepo persists courier branches.
package branchrepo

import (
	"time"

	"courier/internal/core/domain/model/branch"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BranchDTO represents the database structure for branches.
type BranchDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;uniqueIndex"`
	Address   string
	Phone     string     `gorm:"size:10"`
	ManagerID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName specifies the database table name for branches.
func (BranchDTO) TableName() string {
	return "branches"
}

func fromDomain(aggregate *branch.Branch) BranchDTO {
	var managerID *uuid.UUID
	if id := aggregate.ManagerID(); id != nil {
		raw := id.Bytes()
		managerID = &raw
	}

	return BranchDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		Phone:     aggregate.Phone(),
		ManagerID: managerID,
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto BranchDTO) (*branch.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var managerID *kernel.UUID
	if dto.ManagerID != nil {
		m, mErr := kernel.UUIDFromBytes((*dto.ManagerID)[:])
		if mErr != nil {
			return nil, mErr
		}
		managerID = &m
	}

	return branch.RestoreBranch(
		id,
		dto.Name,
		dto.Address,
		dto.Phone,
		managerID,
		dto.CreatedAt,
	)
}
