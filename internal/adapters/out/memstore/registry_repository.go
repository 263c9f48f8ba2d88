package memstore

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/staff"
	"supplychain/internal/pkg/errs"
)

// memRegistryRepository implements ports.RegistryRepository over the
// staging area of a MemoryUnitOfWork.
type memRegistryRepository struct {
	uow *MemoryUnitOfWork
}

// Owner returns the registry owner. The owner is fixed at ledger
// construction and never staged.
func (r *memRegistryRepository) Owner(_ context.Context) (kernel.Identity, error) {
	return r.uow.ledger.OwnerIdentity(), nil
}

// CompanyWallet returns the payout identity, observing a staged update.
func (r *memRegistryRepository) CompanyWallet(_ context.Context) (kernel.Identity, error) {
	if r.uow.stagedWallet != nil {
		return *r.uow.stagedWallet, nil
	}
	return r.uow.ledger.CompanyWalletIdentity(), nil
}

// SetCompanyWallet stages a new payout identity.
func (r *memRegistryRepository) SetCompanyWallet(_ context.Context, identity kernel.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	wallet := identity
	r.uow.stagedWallet = &wallet
	return nil
}

// UpsertEmployee stages an insert-or-overwrite of the employee record.
func (r *memRegistryRepository) UpsertEmployee(_ context.Context, employee *staff.Employee) error {
	if err := employee.Validate(); err != nil {
		return err
	}

	record := employeeRecord{
		identity: employee.Identity(),
		role:     employee.Role(),
	}
	r.uow.stagedEmployees[employee.Identity()] = &record
	return nil
}

// RemoveEmployee stages the deletion of the employee record.
// Returns a NotFoundError if no such employee exists.
func (r *memRegistryRepository) RemoveEmployee(_ context.Context, identity kernel.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	if _, ok := r.uow.currentEmployee(identity); !ok {
		return errs.NewNotFoundError("employee", identity.String())
	}

	r.uow.stagedEmployees[identity] = nil
	return nil
}

// GetEmployee retrieves the employee record for the identity.
func (r *memRegistryRepository) GetEmployee(_ context.Context, identity kernel.Identity) (*staff.Employee, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	record, ok := r.uow.currentEmployee(identity)
	if !ok {
		return nil, errs.NewNotFoundError("employee", identity.String())
	}

	return staff.NewEmployee(record.identity, record.role)
}

// IsEmployee reports whether the identity is a registered employee.
func (r *memRegistryRepository) IsEmployee(_ context.Context, identity kernel.Identity) (bool, error) {
	if err := identity.Validate(); err != nil {
		return false, err
	}

	_, ok := r.uow.currentEmployee(identity)
	return ok, nil
}
