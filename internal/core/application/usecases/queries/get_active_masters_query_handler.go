package queries

import (
	"context"

	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveMastersQueryHandler retrieves the assignable master roster from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetActiveMastersQueryHandler(db)
//	query := NewGetActiveMastersQuery()
//
//	masters, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get masters: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d masters\n", len(masters))
type GetActiveMastersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveMastersQueryHandler creates a handler for master roster queries.
// Requires a GORM database connection for query execution.
func NewGetActiveMastersQueryHandler(db *gorm.DB) GetActiveMastersQueryHandler {
	return GetActiveMastersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active master-tier actors.
// Staff roles and dismissed masters are excluded. Results are sorted by
// name for consistent output.
func (h GetActiveMastersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveMastersQuery,
) ([]GetActiveMastersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	masters := make([]GetActiveMastersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			phone,
			role,
			commission_rate,
			category_id
		FROM actors
		WHERE role IN (?, ?, ?) AND is_active
		ORDER BY full_name
	`, int(actor.Master), int(actor.PremiumMaster), int(actor.SeniorMaster)).Rows()
	if err != nil {
		return nil, errs.NewPersistenceFailureError("load active masters", err)
	}
	defer rows.Close()

	for rows.Next() {
		var master GetActiveMastersQueryResponse
		var id uuid.UUID
		var role int
		var categoryID *uuid.UUID

		err = rows.Scan(
			&id,
			&master.FullName,
			&master.Phone,
			&role,
			&master.CommissionRate,
			&categoryID,
		)
		if err != nil {
			return nil, err
		}

		masterID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		master.ID = masterID
		master.Role = actor.Role(role)

		if categoryID != nil {
			cID, categoryErr := kernel.UUIDFromBytes((*categoryID)[:])
			if categoryErr != nil {
				return nil, categoryErr
			}
			master.CategoryID = &cID
		}

		masters = append(masters, master)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceFailureError("load active masters", err)
	}

	return masters, nil
}
