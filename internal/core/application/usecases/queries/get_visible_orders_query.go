package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetVisibleOrdersQueryIsNotConstructed = errors.New(
		"GetVisibleOrdersQuery must be created via NewGetVisibleOrdersQuery constructor",
	)
)

// GetVisibleOrdersQuery retrieves the orders the acting actor is allowed to see.
// Staff see everything; masters see a role-dependent slice of the board.
//
// Example:
//
//	query, err := NewGetVisibleOrdersQuery(actorID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetVisibleOrdersQuery struct {
	guard guard.ConstructorGuard

	actingActorID kernel.UUID
}

// NewGetVisibleOrdersQuery creates a query scoped to the given actor.
// The actor determines which orders appear in the result.
func NewGetVisibleOrdersQuery(actingActorID kernel.UUID) (GetVisibleOrdersQuery, error) {
	query := GetVisibleOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := query.setActingActorID(actingActorID); err != nil {
		return GetVisibleOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVisibleOrdersQueryIsNotConstructed if validation fails.
func (q GetVisibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVisibleOrdersQueryIsNotConstructed)
}

// ActingActorID returns the actor whose visibility scope applies.
func (q GetVisibleOrdersQuery) ActingActorID() kernel.UUID {
	return q.actingActorID
}

func (q *GetVisibleOrdersQuery) setActingActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.actingActorID = id
	return nil
}

// GetVisibleOrdersQueryResponse represents order information in the read model.
// Contains the full order card as shown on the dispatch board.
type GetVisibleOrdersQueryResponse struct {
	ID          kernel.UUID
	ClientName  string
	ClientPhone string
	Address     string
	Problem     string
	CategoryID  *kernel.UUID
	Price       kernel.Money
	Status      order.Status
	Reason      string
	WorkerID    *kernel.UUID
	IsPremium   bool
	OnSite      bool
	CreatedAt   time.Time
}
