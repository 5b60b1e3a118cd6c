package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVisibleOrdersQueryHandler retrieves the order board filtered down to what
// the acting actor may see. The rows are restored to domain aggregates so the
// visibility rules run against the same model the write side uses.
//
// Example:
//
//	handler := NewGetVisibleOrdersQueryHandler(db)
//	query, _ := NewGetVisibleOrdersQuery(actorID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
type GetVisibleOrdersQueryHandler struct {
	db     *gorm.DB
	filter services.VisibilityFilter
}

// NewGetVisibleOrdersQueryHandler creates a handler for actor-scoped order queries.
// Requires a GORM database connection for query execution.
func NewGetVisibleOrdersQueryHandler(db *gorm.DB) GetVisibleOrdersQueryHandler {
	return GetVisibleOrdersQueryHandler{
		db:     db,
		filter: services.NewVisibilityFilter(),
	}
}

// Handle executes the query and returns the visible orders, newest first.
// Returns an ObjectNotFoundError when the acting actor is unknown.
func (h GetVisibleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVisibleOrdersQuery,
) ([]GetVisibleOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	act, err := h.loadActor(ctx, query.ActingActorID())
	if err != nil {
		return nil, err
	}

	orders, err := h.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	visible := h.filter.FilterVisible(act, orders)

	responses := make([]GetVisibleOrdersQueryResponse, 0, len(visible))
	for _, o := range visible {
		responses = append(responses, GetVisibleOrdersQueryResponse{
			ID:          o.ID(),
			ClientName:  o.ClientName(),
			ClientPhone: o.ClientPhone(),
			Address:     o.Address(),
			Problem:     o.Problem(),
			CategoryID:  o.CategoryID(),
			Price:       o.Price(),
			Status:      o.Status(),
			Reason:      o.Reason(),
			WorkerID:    o.Worker(),
			IsPremium:   o.IsPremium(),
			OnSite:      o.OnSite(),
			CreatedAt:   o.CreatedAt(),
		})
	}

	return responses, nil
}

// loadActor restores the acting actor's aggregate from its database row.
func (h GetVisibleOrdersQueryHandler) loadActor(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			full_name,
			phone,
			role,
			commission_rate,
			category_id,
			is_active
		FROM actors
		WHERE id = ?
	`, id.Bytes()).Row()

	var fullName, phone string
	var role, commissionRate int
	var categoryID *uuid.UUID
	var isActive bool

	if err := row.Scan(&fullName, &phone, &role, &commissionRate, &categoryID, &isActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, errs.NewPersistenceFailureError("load actor", err)
	}

	rate, err := actor.NewCommissionRate(commissionRate)
	if err != nil {
		return nil, err
	}

	var category *kernel.UUID
	if categoryID != nil {
		cID, categoryErr := kernel.UUIDFromBytes((*categoryID)[:])
		if categoryErr != nil {
			return nil, categoryErr
		}
		category = &cID
	}

	return actor.RestoreActor(id, fullName, phone, actor.Role(role), rate, category, isActive)
}

// loadOrders restores the whole order board, newest first.
func (h GetVisibleOrdersQueryHandler) loadOrders(ctx context.Context) ([]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_name,
			client_phone,
			address,
			problem,
			category_id,
			price,
			status,
			reason,
			worker_id,
			is_premium,
			on_site,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, errs.NewPersistenceFailureError("load orders", err)
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var id uuid.UUID
		var clientName, clientPhone, address, problem, reason string
		var categoryID, workerID *uuid.UUID
		var price int64
		var status int
		var isPremium, onSite bool
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&clientName,
			&clientPhone,
			&address,
			&problem,
			&categoryID,
			&price,
			&status,
			&reason,
			&workerID,
			&isPremium,
			&onSite,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		money, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}

		var category *kernel.UUID
		if categoryID != nil {
			cID, categoryErr := kernel.UUIDFromBytes((*categoryID)[:])
			if categoryErr != nil {
				return nil, categoryErr
			}
			category = &cID
		}

		var worker *kernel.UUID
		if workerID != nil {
			wID, workerErr := kernel.UUIDFromBytes((*workerID)[:])
			if workerErr != nil {
				return nil, workerErr
			}
			worker = &wID
		}

		o, restoreErr := order.RestoreOrder(
			orderID,
			clientName,
			clientPhone,
			address,
			problem,
			category,
			money,
			order.Status(status),
			reason,
			worker,
			isPremium,
			onSite,
			createdAt,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}

		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceFailureError("load orders", err)
	}

	return orders, nil
}
