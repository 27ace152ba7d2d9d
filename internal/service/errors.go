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
)

var (
	ErrParamInvalid        = errors.New("invalid parameters")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExist           = errors.New("username or email already taken")
	ErrPasswordIncorrect   = errors.New("invalid credentials")
	ErrUserFollowSelf      = errors.New("cannot follow yourself")
	ErrPostNotFound        = errors.New("post not found")
	ErrPostTypeInvalid     = errors.New("invalid post type")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrReplyToReply        = errors.New("replies cannot be replied to")
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrChallengeJoined     = errors.New("Already joined")
	ErrChallengeWindow     = errors.New("challenge end date must not precede start date")
	ErrGoalValueInvalid    = errors.New("goal value must be positive")
	ErrGoalTypeInvalid     = errors.New("invalid goal type")
	ErrHealthValueInvalid  = errors.New("steps and calories must not be negative")
	UnauthorizedError      = errors.New("unauthorized")
	UnExpectedError        = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrUserExist:          Conflict,
	ErrPasswordIncorrect:  Unauthorized,
	ErrUserFollowSelf:     BadRequest,
	ErrPostNotFound:       NotFound,
	ErrPostTypeInvalid:    BadRequest,
	ErrCommentNotFound:    NotFound,
	ErrReplyToReply:       BadRequest,
	ErrChallengeNotFound:  NotFound,
	ErrChallengeJoined:    Conflict,
	ErrChallengeWindow:    BadRequest,
	ErrGoalValueInvalid:   BadRequest,
	ErrGoalTypeInvalid:    BadRequest,
	ErrHealthValueInvalid: BadRequest,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
