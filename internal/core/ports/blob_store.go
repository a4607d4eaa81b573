package ports

import (
	"context"
)

// BlobStore persists opaque proof of delivery artifacts (signature and
// photo images) outside the relational store and returns a reference
// that is kept on the ProofOfDelivery record.
type BlobStore interface {
	// Put stores data and returns a stable reference to it.
	Put(ctx context.Context, name string, data []byte) (string, error)

	// Get retrieves previously stored data by its reference. Returns an
	// ObjectNotFoundError when the reference is unknown.
	Get(ctx context.Context, ref string) ([]byte, error)
}
