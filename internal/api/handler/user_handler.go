package handler

import (
	"Tweetr/internal/api/dto"
	"Tweetr/internal/pkg/consts"
	"Tweetr/internal/pkg/response"
	"Tweetr/internal/pkg/util"
	"Tweetr/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Signup(c *gin.Context) {
	var signupDTO dto.SignupDTO
	err := c.ShouldBind(&signupDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&signupDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	token, err := s.userSvc.Signup(c.Request.Context(), &signupDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *UserHandler) Login(c *gin.Context) {
	var credentialDTO dto.CredentialDTO
	err := c.ShouldBind(&credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&credentialDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := c.GetString("token")
	err := s.userSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Me 当前登录用户的聚合主页
func (s *UserHandler) Me(c *gin.Context) {
	userID := c.GetUint64("user_id")
	profile, err := s.userSvc.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var updateDTO dto.UpdateProfileDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	user, err := s.userSvc.UpdateProfile(c.Request.Context(), userID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var changeDTO dto.ChangePasswordDTO
	err := c.ShouldBind(&changeDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&changeDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	err = s.userSvc.ChangePassword(c.Request.Context(), userID, &changeDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ShowProfile 按用户名查看公开主页
func (s *UserHandler) ShowProfile(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	profile, err := s.userSvc.GetProfileByUsername(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// UsersToFollow 推荐关注
func (s *UserHandler) UsersToFollow(c *gin.Context) {
	userID := c.GetUint64("user_id")

	limit := consts.RecommendLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	users, err := s.userSvc.RecommendUsers(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}
