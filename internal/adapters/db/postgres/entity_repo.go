package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/condiments/condiments-api/internal/domain/entity/model"
	customErrors "github.com/condiments/condiments-api/internal/domain/errors"
)

type PostgresEntityRepo struct {
	db *gorm.DB
}

func NewPostgresEntityRepo(db *gorm.DB) *PostgresEntityRepo {
	return &PostgresEntityRepo{db: db}
}

func (p *PostgresEntityRepo) CreateEntity(ctx context.Context, e model.AssignedEntity) (model.AssignedEntity, error) {
	e.ID = 0
	if err := p.db.WithContext(ctx).Create(&e).Error; err != nil {
		return model.AssignedEntity{}, customErrors.WrapInternal(err, "CreateEntity")
	}
	return e, nil
}

func (p *PostgresEntityRepo) ListEntities(ctx context.Context) ([]model.AssignedEntity, error) {
	entities := make([]model.AssignedEntity, 0)
	if err := p.db.WithContext(ctx).Order("id").Find(&entities).Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ListEntities")
	}
	return entities, nil
}

func (p *PostgresEntityRepo) GetEntityByID(ctx context.Context, id int64) (model.AssignedEntity, error) {
	var e model.AssignedEntity
	res := p.db.WithContext(ctx).Where("id = ?", id).First(&e)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.AssignedEntity{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.AssignedEntity{}, customErrors.WrapInternal(err, "GetEntityByID")
	}
	return e, nil
}

// UpdateEntity writes name and description even when they are empty.
// Zero affected rows is not an error.
func (p *PostgresEntityRepo) UpdateEntity(ctx context.Context, e model.AssignedEntity) error {
	res := p.db.WithContext(ctx).
		Model(&model.AssignedEntity{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"name":        e.Name,
			"description": e.Description,
		})
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "UpdateEntity")
	}
	return nil
}

func (p *PostgresEntityRepo) DeleteEntity(ctx context.Context, id int64) error {
	res := p.db.WithContext(ctx).Delete(&model.AssignedEntity{}, id)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "DeleteEntity")
	}
	return nil
}
