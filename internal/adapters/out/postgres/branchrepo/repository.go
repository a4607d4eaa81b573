package branchrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/branch"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBranchRepository implements BranchRepository using GORM.
type GormBranchRepository struct {
	db *gorm.DB
}

// NewGormBranchRepository creates a new GORM branch repository.
func NewGormBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

// Add saves a new branch to the database.
func (r *GormBranchRepository) Add(ctx context.Context, aggregate *branch.Branch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a branch by ID.
func (r *GormBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BranchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a branch by its unique name.
func (r *GormBranchRepository) GetByName(ctx context.Context, name string) (*branch.Branch, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto BranchDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branch", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
