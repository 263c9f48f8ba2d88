package queries

import (
	"context"

	"supplychain/internal/adapters/out/memstore"
	"supplychain/internal/pkg/errs"
)

// GetOwnerQueryHandler serves the public owner lookup.
type GetOwnerQueryHandler struct {
	ledger *memstore.MemoryLedger
}

// NewGetOwnerQueryHandler creates a handler reading from the given ledger.
func NewGetOwnerQueryHandler(ledger *memstore.MemoryLedger) GetOwnerQueryHandler {
	return GetOwnerQueryHandler{ledger: ledger}
}

// Handle returns the registry owner.
func (h GetOwnerQueryHandler) Handle(ctx context.Context, query GetOwnerQuery) (GetOwnerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOwnerQueryResponse{}, err
	}

	return GetOwnerQueryResponse{Owner: h.ledger.OwnerIdentity().String()}, nil
}

// GetCompanyWalletQueryHandler serves the owner-only wallet lookup.
type GetCompanyWalletQueryHandler struct {
	ledger *memstore.MemoryLedger
}

// NewGetCompanyWalletQueryHandler creates a handler reading from the given ledger.
func NewGetCompanyWalletQueryHandler(ledger *memstore.MemoryLedger) GetCompanyWalletQueryHandler {
	return GetCompanyWalletQueryHandler{ledger: ledger}
}

// Handle returns the company wallet identity. Callers other than the owner
// receive an AuthorizationError.
func (h GetCompanyWalletQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyWalletQuery,
) (GetCompanyWalletQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCompanyWalletQueryResponse{}, err
	}

	if !h.ledger.OwnerIdentity().IsEqual(query.Actor()) {
		return GetCompanyWalletQueryResponse{},
			errs.NewAuthorizationError("only the owner can read the company wallet")
	}

	return GetCompanyWalletQueryResponse{Wallet: h.ledger.CompanyWalletIdentity().String()}, nil
}

// GetBalanceQueryHandler serves balance lookups.
type GetBalanceQueryHandler struct {
	ledger *memstore.MemoryLedger
}

// NewGetBalanceQueryHandler creates a handler reading from the given ledger.
func NewGetBalanceQueryHandler(ledger *memstore.MemoryLedger) GetBalanceQueryHandler {
	return GetBalanceQueryHandler{ledger: ledger}
}

// Handle returns the credited balance of the identity, zero if it never
// received a transfer.
func (h GetBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetBalanceQuery,
) (GetBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBalanceQueryResponse{}, err
	}

	balance := h.ledger.BalanceOf(query.Identity())

	return GetBalanceQueryResponse{
		Identity: query.Identity().String(),
		Balance:  balance.String(),
	}, nil
}
