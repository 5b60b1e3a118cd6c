// Package actorrepo provides data transfer objects and mapping functions for actor persistence.
// This package implements the repository pattern for the actor domain aggregate, handling
// the conversion between domain entities and database representations.
package actorrepo

import (
	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActorDTO represents the database structure for persisting actor aggregates.
// Maps dispatch staff and master records to a single relational table, indexed
// by role for the active-masters listing.
type ActorDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName       string     `gorm:"type:varchar(255);not null"`
	Phone          string     `gorm:"type:varchar(64)"`
	Role           int        `gorm:"index;not null"`
	CommissionRate int        `gorm:"not null"`
	CategoryID     *uuid.UUID `gorm:"type:uuid;index"`
	IsActive       bool       `gorm:"not null"`
}

// TableName specifies the database table name for actor entities.
// Overrides GORM's default naming convention to use "actors".
func (ActorDTO) TableName() string {
	return "actors"
}

// fromDomain converts an actor domain aggregate to its database representation.
func fromDomain(aggregate *actor.Actor) ActorDTO {
	var categoryID *uuid.UUID
	if id := aggregate.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	return ActorDTO{
		ID:             aggregate.ID().Bytes(),
		FullName:       aggregate.FullName(),
		Phone:          aggregate.Phone(),
		Role:           int(aggregate.Role()),
		CommissionRate: aggregate.CommissionRate().Percent(),
		CategoryID:     categoryID,
		IsActive:       aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to an actor domain aggregate.
// Reconstructs the complete aggregate including the active flag using RestoreActor.
func toDomain(dto ActorDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rate, err := actor.NewCommissionRate(dto.CommissionRate)
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, categoryErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if categoryErr != nil {
			return nil, categoryErr
		}

		categoryID = &cID
	}

	return actor.RestoreActor(
		id,
		dto.FullName,
		dto.Phone,
		actor.Role(dto.Role),
		rate,
		categoryID,
		dto.IsActive,
	)
}
