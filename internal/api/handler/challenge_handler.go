package handler

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/pkg/response"
	"FitSphere/internal/pkg/util"
	"FitSphere/internal/service"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	challengeSvc service.ChallengeService
}

func NewChallengeHandler(challengeSvc service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeSvc: challengeSvc}
}

func (s *ChallengeHandler) CreateChallenge(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var createDTO dto.ChallengeCreateDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, service.BadRequest, err.Error())
		return
	}

	challenge, err := s.challengeSvc.Create(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, challenge)
}

// JoinChallenge 重复加入返回 409
func (s *ChallengeHandler) JoinChallenge(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var joinDTO dto.ChallengeJoinDTO
	if err := c.ShouldBindJSON(&joinDTO); err != nil {
		response.Error(c, err)
		return
	}

	err := s.challengeSvc.Join(c.Request.Context(), userID, joinDTO.ChallengeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "joined"})
}

func (s *ChallengeHandler) ListActive(c *gin.Context) {
	challenges, err := s.challengeSvc.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, challenges)
}

func (s *ChallengeHandler) GetDetails(c *gin.Context) {
	challengeID, err := parseIDParam(c, "challenge_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	detail, err := s.challengeSvc.GetDetails(c.Request.Context(), challengeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}
