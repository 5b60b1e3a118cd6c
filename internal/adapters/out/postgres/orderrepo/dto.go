// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and worker assignment.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientName  string     `gorm:"type:varchar(255);not null"`
	ClientPhone string     `gorm:"type:varchar(64);not null"`
	Address     string     `gorm:"type:varchar(512);not null"`
	Problem     string     `gorm:"type:text"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Price       int64      `gorm:"not null"`
	Status      int        `gorm:"index"`
	Reason      string     `gorm:"type:text"`
	WorkerID    *uuid.UUID `gorm:"type:uuid;index"`
	IsPremium   bool
	OnSite      bool
	CreatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional worker assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var workerID *uuid.UUID
	if id := aggregate.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	var categoryID *uuid.UUID
	if id := aggregate.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		ClientName:  aggregate.ClientName(),
		ClientPhone: aggregate.ClientPhone(),
		Address:     aggregate.Address(),
		Problem:     aggregate.Problem(),
		CategoryID:  categoryID,
		Price:       aggregate.Price().Amount(),
		Status:      int(aggregate.Status()),
		Reason:      aggregate.Reason(),
		WorkerID:    workerID,
		IsPremium:   aggregate.IsPremium(),
		OnSite:      aggregate.OnSite(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and worker assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		workerID = &wID
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, categoryErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if categoryErr != nil {
			return nil, categoryErr
		}

		categoryID = &cID
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.ClientName,
		dto.ClientPhone,
		dto.Address,
		dto.Problem,
		categoryID,
		price,
		order.Status(dto.Status),
		dto.Reason,
		workerID,
		dto.IsPremium,
		dto.OnSite,
		dto.CreatedAt,
	)
}
