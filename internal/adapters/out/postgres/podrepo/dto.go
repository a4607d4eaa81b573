// Package podrepo persists proof of delivery records.
package podrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// PodDTO represents the database structure for proof of delivery records.
// Latitude and Longitude are stored flat and are either both set or both
// null.
type PodDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	SigneeName   string
	SignatureRef string
	PhotoRef     string
	Latitude     *float64
	Longitude    *float64
	Timestamp    time.Time
}

// TableName specifies the database table name for proof of delivery records.
func (PodDTO) TableName() string {
	return "pods"
}

func fromDomain(proof *shipment.ProofOfDelivery) PodDTO {
	var lat, lon *float64
	if loc := proof.Location(); loc != nil {
		lat = &loc.Latitude
		lon = &loc.Longitude
	}

	return PodDTO{
		ID:           proof.ID().Bytes(),
		ShipmentID:   proof.ShipmentID().Bytes(),
		SigneeName:   proof.SigneeName(),
		SignatureRef: proof.SignatureRef(),
		PhotoRef:     proof.PhotoRef(),
		Latitude:     lat,
		Longitude:    lon,
		Timestamp:    proof.Timestamp(),
	}
}

func toDomain(dto PodDTO) (*shipment.ProofOfDelivery, error) {
	id, err := kernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernelUUID(dto.ShipmentID)
	if err != nil {
		return nil, err
	}

	var location *shipment.Geolocation
	if dto.Latitude != nil && dto.Longitude != nil {
		location = &shipment.Geolocation{
			Latitude:  *dto.Latitude,
			Longitude: *dto.Longitude,
		}
	}

	return shipment.RestoreProofOfDelivery(
		id,
		shipmentID,
		dto.SigneeName,
		dto.SignatureRef,
		dto.PhotoRef,
		location,
		dto.Timestamp,
	)
}

func kernelUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}
