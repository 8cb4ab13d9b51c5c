package model

import (
	"time"
)

type Favorite struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_favorites_user_tweet" json:"user_id"`
	TweetID   uint64    `gorm:"not null;uniqueIndex:idx_favorites_user_tweet;index:idx_favorites_tweet_id" json:"tweet_id"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Tweet Tweet `gorm:"foreignKey:TweetID;references:ID" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}
