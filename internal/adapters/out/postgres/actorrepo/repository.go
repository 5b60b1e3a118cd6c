package actorrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActorRepository implements ActorRepository using GORM.
type GormActorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormActorRepository creates a new GORM actor repository.
func NewGormActorRepository(db *gorm.DB, tracker aggregateTracker) *GormActorRepository {
	return &GormActorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new actor to the database.
func (r *GormActorRepository) Add(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceFailureError("add actor", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing actor to the database.
func (r *GormActorRepository) Update(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ActorDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceFailureError("update actor", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("actor", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an actor by ID.
func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, errs.NewPersistenceFailureError("get actor", err)
	}

	return toDomain(dto)
}

// GetAllActiveMasters retrieves every active master-tier actor, ordered by
// name. Dismissed masters and dispatch staff are excluded.
func (r *GormActorRepository) GetAllActiveMasters(ctx context.Context) ([]*actor.Actor, error) {
	var dtos []ActorDTO
	if err := r.db.WithContext(ctx).
		Where("role IN ? AND is_active", []int{
			int(actor.Master),
			int(actor.PremiumMaster),
			int(actor.SeniorMaster),
		}).
		Order("full_name ASC").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceFailureError("list active masters", err)
	}

	actors := make([]*actor.Actor, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}

	return actors, nil
}
