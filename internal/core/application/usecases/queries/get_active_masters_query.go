// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetActiveMastersQueryIsNotConstructed = errors.New(
		"GetActiveMastersQuery must be created via NewGetActiveMastersQuery constructor",
	)
)

// GetActiveMastersQuery retrieves every active master-tier actor.
// Dispatch staff use the result to pick an assignment target for an order.
//
// Example:
//
//	query := NewGetActiveMastersQuery()
//	handler := NewGetActiveMastersQueryHandler(db)
//
//	masters, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve masters: %w", err)
//	}
//
//	for _, m := range masters {
//	    fmt.Printf("%s (%s)\n", m.FullName, m.Role)
//	}
type GetActiveMastersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveMastersQuery creates a query to retrieve the active master roster.
// This is a parameterless query that fetches all assignable masters.
func NewGetActiveMastersQuery() GetActiveMastersQuery {
	return GetActiveMastersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveMastersQueryIsNotConstructed if validation fails.
func (q GetActiveMastersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveMastersQueryIsNotConstructed)
}

// GetActiveMastersQueryResponse represents master information in the read model.
// Contains the data dispatch staff need when choosing an assignee.
type GetActiveMastersQueryResponse struct {
	ID             kernel.UUID
	FullName       string
	Phone          string
	Role           actor.Role
	CommissionRate int
	CategoryID     *kernel.UUID
}
