package model

import "time"

type Follow struct {
	FollowerID uint64    `gorm:"primaryKey" json:"follower_id"`
	FollowedID uint64    `gorm:"primaryKey;index:idx_followed_id" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
