package itemrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ports.ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate locks the item row with SELECT ... FOR UPDATE. It must run inside a
// transaction.
func (r *GormItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormItemRepository) FindAll(ctx context.Context) ([]*item.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("name").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*item.Item, 0, len(dtos))
	for _, dto := range dtos {
		it, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *GormItemRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*item.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return dto.ToDomain()
}
