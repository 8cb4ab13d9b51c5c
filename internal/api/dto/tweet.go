package dto

import "time"

// CreateTweetDTO 发推
type CreateTweetDTO struct {
	Body string `json:"body" binding:"required" validate:"min=4,max=280"`
}

// CreateReplyDTO 回复推文
type CreateReplyDTO struct {
	Body string `json:"body" binding:"required" validate:"min=2,max=280"`
}

// FavoriteDTO 收藏请求
type FavoriteDTO struct {
	TweetID uint64 `json:"tweet_id" binding:"required"`
}

// ReplyView 回复视图，附带作者
type ReplyView struct {
	ID        uint64    `json:"id"`
	TweetID   uint64    `json:"tweet_id"`
	UserID    uint64    `json:"user_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	User      *UserDTO  `json:"user,omitempty"`
}

// FavoriteView 收藏视图，个人主页中额外展开被收藏的推文
type FavoriteView struct {
	ID        uint64     `json:"id"`
	UserID    uint64     `json:"user_id"`
	TweetID   uint64     `json:"tweet_id"`
	CreatedAt time.Time  `json:"created_at"`
	Tweet     *TweetView `json:"tweet,omitempty"`
}

// TweetView 推文视图，附带作者、回复、收藏
type TweetView struct {
	ID        uint64          `json:"id"`
	UserID    uint64          `json:"user_id"`
	Body      string          `json:"body"`
	CreatedAt time.Time       `json:"created_at"`
	User      *UserDTO        `json:"user,omitempty"`
	Replies   []*ReplyView    `json:"replies"`
	Favorites []*FavoriteView `json:"favorites"`
}

// ProfileView 个人主页聚合视图
type ProfileView struct {
	User           *UserDTO        `json:"user"`
	Tweets         []*TweetView    `json:"tweets"`
	Following      []*UserDTO      `json:"following"`
	Followers      []*UserDTO      `json:"followers"`
	FollowingCount int64           `json:"following_count"`
	FollowerCount  int64           `json:"follower_count"`
	Favorites      []*FavoriteView `json:"favorites"`
}
