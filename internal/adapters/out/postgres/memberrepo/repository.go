package memberrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMemberRepository implements ports.MemberRepository using GORM.
type GormMemberRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMemberRepository(db *gorm.DB, tracker aggregateTracker) *GormMemberRepository {
	return &GormMemberRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new member. The database must be opened with TranslateError so that a
// taken name surfaces as gorm.ErrDuplicatedKey.
func (r *GormMemberRepository) Add(ctx context.Context, aggregate *member.Member) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("member", aggregate.Name(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMemberRepository) Update(ctx context.Context, aggregate *member.Member) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MemberDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("member", aggregate.Name(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("member", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("member", id.String())
		}
		return nil, err
	}

	return dto.ToDomain()
}

func (r *GormMemberRepository) FindByName(ctx context.Context, name string) ([]*member.Member, error) {
	var dtos []MemberDTO
	if err := r.db.WithContext(ctx).Where("name = ?", name).Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormMemberRepository) FindAll(ctx context.Context) ([]*member.Member, error) {
	var dtos []MemberDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func toDomainList(dtos []MemberDTO) ([]*member.Member, error) {
	members := make([]*member.Member, 0, len(dtos))
	for _, dto := range dtos {
		m, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}
