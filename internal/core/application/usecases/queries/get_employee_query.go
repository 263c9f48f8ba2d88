package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrGetEmployeeQueryIsNotConstructed = errors.New(
	"GetEmployeeQuery must be created via NewGetEmployeeQuery constructor",
)

// GetEmployeeQuery retrieves the role record of a registered employee.
type GetEmployeeQuery struct {
	identity kernel.Identity

	guard guard.ConstructorGuard
}

// NewGetEmployeeQuery creates a query for the given employee identity.
func NewGetEmployeeQuery(identity kernel.Identity) (GetEmployeeQuery, error) {
	if err := identity.Validate(); err != nil {
		return GetEmployeeQuery{}, err
	}

	return GetEmployeeQuery{identity: identity, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeeQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeQueryIsNotConstructed)
}

// Identity returns the looked-up employee identity.
func (q GetEmployeeQuery) Identity() kernel.Identity {
	return q.identity
}

// GetEmployeeQueryResponse carries the employee record.
type GetEmployeeQueryResponse struct {
	Identity string `json:"identity"`
	Role     string `json:"role"`
}
