package handler

import (
	"FitSphere/internal/pkg/response"
	"FitSphere/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

// ToggleFollow 关注/取关切换，返回翻转后的状态
func (s *UserFollowHandler) ToggleFollow(c *gin.Context) {
	followerID := c.GetUint64("user_id")
	followingID, err := parseIDParam(c, "following_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	isFollowing, err := s.userFollowSvc.ToggleFollow(c.Request.Context(), followerID, followingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"is_following": isFollowing})
}

func (s *UserFollowHandler) GetFollowers(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := getPagination(c)

	followers, err := s.userFollowSvc.GetFollowers(c.Request.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followers)
}

func (s *UserFollowHandler) GetFollowings(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := getPagination(c)

	followings, err := s.userFollowSvc.GetFollowing(c.Request.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followings)
}

func (s *UserFollowHandler) IsFollowing(c *gin.Context) {
	followerID := c.GetUint64("user_id")
	followingID, err := parseIDParam(c, "following_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	isFollowing, err := s.userFollowSvc.IsFollowing(c.Request.Context(), followerID, followingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"is_following": isFollowing})
}
