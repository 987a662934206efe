package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"            json:"id"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"         json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null"             json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"          json:"created_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type ProfileModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"             json:"id"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	DisplayName *string   `gorm:"column:display_name"                        json:"display_name"`
	AvatarURL   *string   `gorm:"column:avatar_url"                          json:"avatar_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"           json:"created_at"`
}

func (ProfileModel) TableName() string { return "profiles" }

func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
