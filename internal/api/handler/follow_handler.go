package handler

import (
	"Tweetr/internal/api/dto"
	"Tweetr/internal/pkg/response"
	"Tweetr/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{followSvc: followSvc}
}

func (s *FollowHandler) Follow(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var followDTO dto.FollowDTO
	if err := c.ShouldBind(&followDTO); err != nil {
		response.Error(c, err)
		return
	}

	err := s.followSvc.Follow(c.Request.Context(), userID, followDTO.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetUint64("user_id")

	followedID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	err = s.followSvc.Unfollow(c.Request.Context(), userID, followedID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) GetFollowers(c *gin.Context) {
	userID := c.GetUint64("user_id")
	followers, err := s.followSvc.GetFollowers(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followers)
}

func (s *FollowHandler) GetFollowing(c *gin.Context) {
	userID := c.GetUint64("user_id")
	following, err := s.followSvc.GetFollowing(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, following)
}

func (s *FollowHandler) GetFollowerCount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	count, err := s.followSvc.GetFollowerCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}

func (s *FollowHandler) GetFollowingCount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	count, err := s.followSvc.GetFollowingCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}

func (s *FollowHandler) IsFollowing(c *gin.Context) {
	userID := c.GetUint64("user_id")

	followedID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	isFollowing, err := s.followSvc.IsFollowing(c.Request.Context(), userID, followedID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, isFollowing)
}
