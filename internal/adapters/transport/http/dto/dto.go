package dto

type RegisterDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateEntityDTO struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

type UpdateEntityDTO struct {
	ID          int64  `json:"id"          validate:"required"`
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}
