package handler

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/pkg/response"
	"FitSphere/internal/pkg/util"
	"FitSphere/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc    service.UserService
	profileSvc service.ProfileService
}

func NewUserHandler(userSvc service.UserService, profileSvc service.ProfileService) *UserHandler {
	return &UserHandler{
		userSvc:    userSvc,
		profileSvc: profileSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	err := c.ShouldBind(&registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&registerDTO); err != nil {
		response.Fail(c, service.BadRequest, err.Error())
		return
	}
	user, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.LoginDTO
	err := c.ShouldBind(&loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&loginDTO); err != nil {
		response.Fail(c, service.BadRequest, err.Error())
		return
	}
	result, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	err := s.userSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "logged out"})
}

func (s *UserHandler) Search(c *gin.Context) {
	var searchDTO dto.SearchUsersDTO
	err := c.ShouldBindQuery(&searchDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	users, err := s.userSvc.SearchUsers(c.Request.Context(), searchDTO.Query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

// GetProfile 个人主页；未登录也可访问，登录时标注关注与点赞状态
func (s *UserHandler) GetProfile(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	requesterID := c.GetUint64("user_id")

	profile, err := s.profileSvc.GetProfile(c.Request.Context(), userID, requesterID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}
