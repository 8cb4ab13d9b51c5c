package model

import (
	"time"
)

type Tweet struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_tweets_user_id" json:"user_id"`
	Body      string    `gorm:"type:varchar(280);not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`

	// 关联关系
	User      User       `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Replies   []Reply    `gorm:"foreignKey:TweetID;references:ID" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:TweetID;references:ID" json:"-"`
}

func (Tweet) TableName() string {
	return "tweets"
}
