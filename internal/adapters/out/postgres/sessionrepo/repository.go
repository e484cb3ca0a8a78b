package sessionrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/pkg/errs"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new session. The partial unique index on agent_id rejects a
// second PENDING or ACTIVE session for the same agent; that driver error
// surfaces as a concurrency conflict.
func (r *GormSessionRepository) Add(ctx context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConcurrencyConflictError("openSession", aggregate.AgentID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing session. Full-row save: amount and timestamp
// columns transition from NULL as the session advances and must all land.
func (r *GormSessionRepository) Update(ctx context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a session by ID.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByAgent retrieves the agent's PENDING or ACTIVE session.
func (r *GormSessionRepository) GetOpenByAgent(ctx context.Context, agentID kernel.UUID) (*session.Session, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	openStatuses := []string{session.Pending.String(), session.Active.String()}

	var dto SessionDTO
	err := r.db.WithContext(ctx).
		Where("agent_id = ? AND status IN ?", agentID.Bytes(), openStatuses).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("openSession", agentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
