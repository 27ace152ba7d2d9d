package handler

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/pkg/response"
	"FitSphere/internal/pkg/util"
	"FitSphere/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

// ToggleLike 点赞/取消点赞切换，返回翻转后的状态与即时计数
func (s *PostActionHandler) ToggleLike(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.actionSvc.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var commentDTO dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&commentDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&commentDTO); err != nil {
		response.Fail(c, service.BadRequest, err.Error())
		return
	}

	comment, err := s.actionSvc.CreateComment(c.Request.Context(), userID, postID, commentDTO.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

func (s *PostActionHandler) CreateReply(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var replyDTO dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&replyDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&replyDTO); err != nil {
		response.Fail(c, service.BadRequest, err.Error())
		return
	}

	reply, err := s.actionSvc.CreateReply(c.Request.Context(), userID, commentID, replyDTO.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reply)
}

func (s *PostActionHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.actionSvc.DeleteComment(c.Request.Context(), userID, commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostActionHandler) ListComments(c *gin.Context) {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.actionSvc.ListComments(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
