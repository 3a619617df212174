package repo

import (
	"context"

	"github.com/condiments/condiments-api/internal/domain/entity/model"
)

type EntityRepo interface {
	CreateEntity(ctx context.Context, e model.AssignedEntity) (model.AssignedEntity, error)

	ListEntities(ctx context.Context) ([]model.AssignedEntity, error)

	GetEntityByID(ctx context.Context, id int64) (model.AssignedEntity, error)

	// UpdateEntity and DeleteEntity succeed when no row matches id.
	UpdateEntity(ctx context.Context, e model.AssignedEntity) error

	DeleteEntity(ctx context.Context, id int64) error
}
