package handler

import (
	"Tweetr/internal/api/dto"
	"Tweetr/internal/pkg/response"
	"Tweetr/internal/pkg/util"
	"Tweetr/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetSvc  service.TweetService
	actionSvc service.TweetActionService
}

func NewTweetHandler(tweetSvc service.TweetService, actionSvc service.TweetActionService) *TweetHandler {
	return &TweetHandler{
		tweetSvc:  tweetSvc,
		actionSvc: actionSvc,
	}
}

func (s *TweetHandler) CreateTweet(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var createDTO dto.CreateTweetDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	tweet, err := s.tweetSvc.CreateTweet(c.Request.Context(), userID, createDTO.Body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tweet)
}

func (s *TweetHandler) GetTweet(c *gin.Context) {
	tweetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	tweet, err := s.tweetSvc.GetTweet(c.Request.Context(), tweetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tweet)
}

func (s *TweetHandler) DeleteTweet(c *gin.Context) {
	userID := c.GetUint64("user_id")

	tweetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	err = s.tweetSvc.DeleteTweet(c.Request.Context(), userID, tweetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Timeline 自己和关注者的推文流
func (s *TweetHandler) Timeline(c *gin.Context) {
	userID := c.GetUint64("user_id")

	tweets, err := s.tweetSvc.GetTimeline(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tweets)
}

func (s *TweetHandler) Reply(c *gin.Context) {
	userID := c.GetUint64("user_id")

	tweetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var replyDTO dto.CreateReplyDTO
	if err = c.ShouldBind(&replyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&replyDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	reply, err := s.actionSvc.CreateReply(c.Request.Context(), userID, tweetID, replyDTO.Body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reply)
}
