package handler

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/pkg/response"
	"FitSphere/internal/pkg/util"
	"FitSphere/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var createDTO dto.PostCreateDTO
	err := c.ShouldBindJSON(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, service.BadRequest, err.Error())
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// GetFeed 全站动态流；已登录时标注 has_liked
func (s *PostHandler) GetFeed(c *gin.Context) {
	requesterID := c.GetUint64("user_id")

	var query dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.GetFeed(c.Request.Context(), requesterID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}
