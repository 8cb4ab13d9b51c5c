package handler

import (
	"Tweetr/internal/api/dto"
	"Tweetr/internal/pkg/response"
	"Tweetr/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	actionSvc service.TweetActionService
}

func NewFavoriteHandler(actionSvc service.TweetActionService) *FavoriteHandler {
	return &FavoriteHandler{actionSvc: actionSvc}
}

// Store 收藏推文，重复调用返回同一条记录
func (s *FavoriteHandler) Store(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var favoriteDTO dto.FavoriteDTO
	if err := c.ShouldBind(&favoriteDTO); err != nil {
		response.Error(c, err)
		return
	}

	favorite, err := s.actionSvc.FavoriteTweet(c.Request.Context(), userID, favoriteDTO.TweetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, favorite)
}

// Destroy 取消收藏，路径参数是推文 id，按 (user, tweet) 定位
func (s *FavoriteHandler) Destroy(c *gin.Context) {
	userID := c.GetUint64("user_id")

	tweetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	err = s.actionSvc.UnfavoriteTweet(c.Request.Context(), userID, tweetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
