package podrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPodRepository implements PodRepository using GORM.
type GormPodRepository struct {
	db *gorm.DB
}

// NewGormPodRepository creates a new GORM proof of delivery repository.
func NewGormPodRepository(db *gorm.DB) *GormPodRepository {
	return &GormPodRepository{db: db}
}

// Add saves a new proof of delivery. Proofs are immutable, there is no
// update path.
func (r *GormPodRepository) Add(ctx context.Context, proof *shipment.ProofOfDelivery) error {
	if err := proof.Validate(); err != nil {
		return err
	}

	dto := fromDomain(proof)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a proof of delivery by ID.
func (r *GormPodRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.ProofOfDelivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("proofOfDelivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
