package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/condiments/condiments-api/internal/adapters/transport/http/dto"
	"github.com/condiments/condiments-api/internal/domain/entity/model"
	repo "github.com/condiments/condiments-api/internal/domain/entity/repo"
	customErrors "github.com/condiments/condiments-api/internal/domain/errors"
)

type Service interface {
	Create(context.Context, dto.CreateEntityDTO) (model.AssignedEntity, error)
	List(context.Context) ([]model.AssignedEntity, error)
	Get(ctx context.Context, id int64) (model.AssignedEntity, error)
	Update(context.Context, dto.UpdateEntityDTO) error
	Delete(ctx context.Context, id int64) error
}

type entityService struct {
	repo repo.EntityRepo
	v    *validator.Validate
}

func New(r repo.EntityRepo, v *validator.Validate) Service {
	return &entityService{repo: r, v: v}
}

func (s *entityService) Create(ctx context.Context, in dto.CreateEntityDTO) (model.AssignedEntity, error) {
	if err := s.v.Struct(in); err != nil {
		return model.AssignedEntity{}, customErrors.NewInvalidArgument(err.Error())
	}
	return s.repo.CreateEntity(ctx, model.AssignedEntity{
		Name:        in.Name,
		Description: in.Description,
	})
}

func (s *entityService) List(ctx context.Context) ([]model.AssignedEntity, error) {
	return s.repo.ListEntities(ctx)
}

func (s *entityService) Get(ctx context.Context, id int64) (model.AssignedEntity, error) {
	if id <= 0 {
		return model.AssignedEntity{}, customErrors.ErrNotFound
	}
	return s.repo.GetEntityByID(ctx, id)
}

func (s *entityService) Update(ctx context.Context, in dto.UpdateEntityDTO) error {
	if err := s.v.Struct(in); err != nil {
		return customErrors.NewInvalidArgument(err.Error())
	}
	return s.repo.UpdateEntity(ctx, model.AssignedEntity{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
	})
}

// Delete is idempotent: removing an id that does not exist succeeds.
func (s *entityService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	return s.repo.DeleteEntity(ctx, id)
}
