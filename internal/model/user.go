package model

import (
	"time"
)

type User struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Username   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_email" json:"email"`
	Password   string    `gorm:"type:varchar(255);not null" json:"-"`
	Location   *string   `gorm:"type:varchar(100)" json:"location,omitempty"`
	Bio        *string   `gorm:"type:varchar(200)" json:"bio,omitempty"`
	WebsiteURL *string   `gorm:"type:varchar(255)" json:"website_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Tweets    []Tweet    `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
