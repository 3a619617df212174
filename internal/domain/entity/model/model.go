package model

import "time"

// AssignedEntity is the single CRUD resource exposed under /api/assigned_entity.
type AssignedEntity struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (AssignedEntity) TableName() string {
	return "assigned_entities"
}
