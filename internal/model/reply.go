package model

import (
	"time"
)

type Reply struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	TweetID   uint64    `gorm:"not null;index:idx_replies_tweet_id" json:"tweet_id"`
	Body      string    `gorm:"type:varchar(280);not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Reply) TableName() string {
	return "replies"
}
