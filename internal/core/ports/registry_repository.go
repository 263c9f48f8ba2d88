// Package ports defines the contracts between the application core and its
// adapters: repositories over the ledger store, the escrow service, the
// unit of work, and the event notifier. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/staff"
)

// RegistryRepository is the persistence contract for the identity registry:
// the owner, the company wallet, and the employee set. It is the sole
// authority an authorization check consults.
type RegistryRepository interface {
	// Owner returns the registry owner identity, fixed at construction.
	Owner(ctx context.Context) (kernel.Identity, error)

	// CompanyWallet returns the payout identity credited on completion.
	CompanyWallet(ctx context.Context) (kernel.Identity, error)

	// SetCompanyWallet replaces the payout identity.
	// The identity must be valid (non-zero).
	SetCompanyWallet(ctx context.Context, identity kernel.Identity) error

	// UpsertEmployee inserts or overwrites the employee record for the
	// employee's identity. Re-adding an identity overwrites its role.
	UpsertEmployee(ctx context.Context, employee *staff.Employee) error

	// RemoveEmployee deletes the employee record for the identity.
	// Returns a NotFoundError if no such employee exists.
	RemoveEmployee(ctx context.Context, identity kernel.Identity) error

	// GetEmployee retrieves the employee record for the identity.
	// Returns a NotFoundError if no such employee exists.
	GetEmployee(ctx context.Context, identity kernel.Identity) (*staff.Employee, error)

	// IsEmployee reports whether the identity is a registered employee.
	IsEmployee(ctx context.Context, identity kernel.Identity) (bool, error)
}
