package service

import (
	"Tweetr/internal/api/dto"
	"Tweetr/internal/model"
)

// 视图装配：聚合读永远返回组合视图，不吐裸存储行

func toUserDTO(u *model.User) *dto.UserDTO {
	if u == nil {
		return nil
	}
	return &dto.UserDTO{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Email:      u.Email,
		Location:   u.Location,
		Bio:        u.Bio,
		WebsiteURL: u.WebsiteURL,
		CreatedAt:  u.CreatedAt,
	}
}

func toUserDTOs(users []*model.User) []*dto.UserDTO {
	views := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		views = append(views, toUserDTO(u))
	}
	return views
}

func toReplyView(r *model.Reply) *dto.ReplyView {
	if r == nil {
		return nil
	}
	view := &dto.ReplyView{
		ID:        r.ID,
		TweetID:   r.TweetID,
		UserID:    r.UserID,
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
	}
	if r.User.ID != 0 {
		view.User = toUserDTO(&r.User)
	}
	return view
}

func toFavoriteView(f *model.Favorite) *dto.FavoriteView {
	if f == nil {
		return nil
	}
	return &dto.FavoriteView{
		ID:        f.ID,
		UserID:    f.UserID,
		TweetID:   f.TweetID,
		CreatedAt: f.CreatedAt,
	}
}

// toFavoriteViewWithTweet 个人主页用，二级展开被收藏的推文
func toFavoriteViewWithTweet(f *model.Favorite) *dto.FavoriteView {
	view := toFavoriteView(f)
	if view == nil {
		return nil
	}
	if f.Tweet.ID != 0 {
		view.Tweet = toTweetView(&f.Tweet)
	}
	return view
}

func toTweetView(t *model.Tweet) *dto.TweetView {
	if t == nil {
		return nil
	}
	view := &dto.TweetView{
		ID:        t.ID,
		UserID:    t.UserID,
		Body:      t.Body,
		CreatedAt: t.CreatedAt,
		Replies:   make([]*dto.ReplyView, 0, len(t.Replies)),
		Favorites: make([]*dto.FavoriteView, 0, len(t.Favorites)),
	}
	if t.User.ID != 0 {
		view.User = toUserDTO(&t.User)
	}
	for i := range t.Replies {
		view.Replies = append(view.Replies, toReplyView(&t.Replies[i]))
	}
	for i := range t.Favorites {
		view.Favorites = append(view.Favorites, toFavoriteView(&t.Favorites[i]))
	}
	return view
}

func toTweetViews(tweets []*model.Tweet) []*dto.TweetView {
	views := make([]*dto.TweetView, 0, len(tweets))
	for _, t := range tweets {
		views = append(views, toTweetView(t))
	}
	return views
}
