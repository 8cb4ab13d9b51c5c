package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
	StorageTimeout      = 504
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrTweetNotFound     = errors.New("推文不存在")
	ErrUserExist         = errors.New("用户已存在")
	ErrEmailExist        = errors.New("邮箱已被注册")
	ErrUsernameExist     = errors.New("用户名已存在")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrFollowSelf        = errors.New("用户不能关注自己")
	ErrFollowLimit       = errors.New("用户关注数量超过限制")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrTweetNotFound:     NotFound,
	ErrUserExist:         Conflict,
	ErrEmailExist:        Conflict,
	ErrUsernameExist:     Conflict,
	ErrPasswordIncorrect: Unauthorized,
	ErrFollowSelf:        BadRequest,
	ErrFollowLimit:       BadRequest,
	UnExpectedError:      InternalServerError,
}
