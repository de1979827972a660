package models

import (
	"time"

	"github.com/sefazor/mygallery-backend/pkg/bcrypt"
)

type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserName     string     `json:"user_name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;type:varchar(64);not null"`
	Photos       []PhotoRef `json:"fotos,omitempty" gorm:"foreignKey:UserID;-:migration"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// CheckPassword compares plain against the stored bcrypt hash. A stored value
// that is not a bcrypt hash never matches.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.VerifyHash(u.PasswordHash) && bcrypt.ComparePassword(u.PasswordHash, plain) == nil
}

// Public returns the fields that may leave the server after authentication.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
	}
}

// PhotoRef is the id-only photo projection attached to user listings.
type PhotoRef struct {
	ID     uint `json:"id"`
	UserID uint `json:"-"`
}

func (PhotoRef) TableName() string {
	return "fotos"
}

type PublicUser struct {
	ID       uint   `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

type CreateUserRequest struct {
	UserName             string `json:"user_name" validate:"required,min=4"`
	Email                string `json:"email" validate:"required,email,min=11"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
}

// CreateUserResponse mirrors what signup has always returned: no id, no password fields.
type CreateUserResponse struct {
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UpdateUserRequest struct {
	UserName             *string `json:"user_name" validate:"omitempty,min=4"`
	Email                *string `json:"email" validate:"omitempty,email,min=11"`
	OldPassword          *string `json:"oldPassword" validate:"omitempty,min=8"`
	Password             *string `json:"password" validate:"omitempty,min=8"`
	PasswordConfirmation *string `json:"passwordConfirmation"`
}

type ShowUserRequest struct {
	Email    string `json:"email" validate:"required,email,min=11"`
	Password string `json:"password" validate:"omitempty,min=8"`
}
