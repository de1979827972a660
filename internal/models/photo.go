package models

import (
	"time"
)

type Photo struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Title     string      `json:"title" gorm:"type:varchar(100);not null"`
	Category  string      `json:"category" gorm:"type:varchar(255);not null"`
	ImageURL  string      `json:"image_url" gorm:"column:image_url;type:varchar(1024);not null"`
	UserID    uint        `json:"-" gorm:"not null;index"`
	User      *PhotoOwner `json:"user,omitempty" gorm:"foreignKey:UserID;-:migration"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (Photo) TableName() string {
	return "fotos"
}

// PhotoOwner is the projection of users joined onto photo reads.
type PhotoOwner struct {
	ID       uint   `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

func (PhotoOwner) TableName() string {
	return "users"
}

type CreatePhotoRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
	ImageURL string `json:"image_url" validate:"required,max=1024"`
	UserID   int64  `json:"user_id" validate:"required,min=1"`
}

type CreatePhotoResponse struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
	UserID   uint   `json:"user_id"`
}

type UpdatePhotoRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=100"`
	Category *string `json:"category" validate:"omitempty,min=1"`
	ImageURL *string `json:"image_url" validate:"omitempty,min=1,max=1024"`
}

type UploadResponse struct {
	ImageURL string `json:"image_url"`
}
