// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// authorization, transaction management and persistence, with the audit
// entry written in the same transaction as the change it records.
package commands

import (
	"context"

	"courier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories its operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// AuditRepoFactory provides access to the audit log repository within a transaction.
	AuditRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// PodRepoFactory provides access to the proof of delivery repository within a transaction.
	PodRepoFactory interface {
		PodRepository() ports.PodRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// BranchRepoFactory provides access to the branch repository within a transaction.
	BranchRepoFactory interface {
		BranchRepository() ports.BranchRepository
	}

	// UserDirectoryFactory provides access to the user directory within a transaction.
	UserDirectoryFactory interface {
		UserDirectory() ports.UserDirectory
	}

	// ShipmentUoW manages transactions for shipment mutations that need no
	// lookups beyond the aggregate itself: status changes and deletion.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		AuditRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// BookingUoW manages transactions for booking and editing shipments,
	// where a referenced branch must be resolved.
	BookingUoW interface {
		TxManager
		ShipmentRepoFactory
		AuditRepoFactory
		BranchRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// AssignUoW manages transactions for agent assignment, where the
	// assignment target must be resolved through the user directory.
	AssignUoW interface {
		TxManager
		ShipmentRepoFactory
		AuditRepoFactory
		UserDirectoryFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// DeliveryUoW manages transactions for delivery completion, which writes
	// the proof of delivery record alongside the shipment.
	DeliveryUoW interface {
		TxManager
		ShipmentRepoFactory
		AuditRepoFactory
		PodRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// InvoiceUoW manages transactions for invoice generation.
	InvoiceUoW interface {
		TxManager
		ShipmentRepoFactory
		AuditRepoFactory
		InvoiceRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// BranchUoW manages transactions for branch administration.
	BranchUoW interface {
		TxManager
		BranchRepoFactory
	}

	// BranchUoWFactory creates new branch unit of work instances.
	BranchUoWFactory interface {
		Create() BranchUoW
	}
)
