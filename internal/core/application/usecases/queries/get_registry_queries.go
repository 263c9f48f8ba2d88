package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetOwnerQueryIsNotConstructed = errors.New(
		"GetOwnerQuery must be created via NewGetOwnerQuery constructor",
	)
	ErrGetCompanyWalletQueryIsNotConstructed = errors.New(
		"GetCompanyWalletQuery must be created via NewGetCompanyWalletQuery constructor",
	)
	ErrGetBalanceQueryIsNotConstructed = errors.New(
		"GetBalanceQuery must be created via NewGetBalanceQuery constructor",
	)
)

// GetOwnerQuery retrieves the registry owner. The owner is public.
type GetOwnerQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOwnerQuery creates a parameterless owner lookup.
func NewGetOwnerQuery() GetOwnerQuery {
	return GetOwnerQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerQueryIsNotConstructed)
}

// GetOwnerQueryResponse carries the owner identity.
type GetOwnerQueryResponse struct {
	Owner string `json:"owner"`
}

// GetCompanyWalletQuery retrieves the company wallet identity. The wallet
// is visible to the owner only.
type GetCompanyWalletQuery struct {
	actor kernel.Identity

	guard guard.ConstructorGuard
}

// NewGetCompanyWalletQuery creates a wallet lookup on behalf of the actor.
func NewGetCompanyWalletQuery(actor kernel.Identity) (GetCompanyWalletQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCompanyWalletQuery{}, err
	}

	return GetCompanyWalletQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyWalletQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyWalletQueryIsNotConstructed)
}

// Actor returns the caller identity.
func (q GetCompanyWalletQuery) Actor() kernel.Identity {
	return q.actor
}

// GetCompanyWalletQueryResponse carries the wallet identity.
type GetCompanyWalletQueryResponse struct {
	Wallet string `json:"wallet"`
}

// GetBalanceQuery retrieves the credited balance of an identity: released
// payouts for the company wallet, refunds for customers. Identities that
// never received a transfer read as zero.
type GetBalanceQuery struct {
	identity kernel.Identity

	guard guard.ConstructorGuard
}

// NewGetBalanceQuery creates a balance lookup for the given identity.
func NewGetBalanceQuery(identity kernel.Identity) (GetBalanceQuery, error) {
	if err := identity.Validate(); err != nil {
		return GetBalanceQuery{}, err
	}

	return GetBalanceQuery{identity: identity, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetBalanceQueryIsNotConstructed)
}

// Identity returns the looked-up identity.
func (q GetBalanceQuery) Identity() kernel.Identity {
	return q.identity
}

// GetBalanceQueryResponse carries the balance as a decimal string.
type GetBalanceQueryResponse struct {
	Identity string `json:"identity"`
	Balance  string `json:"balance"`
}
