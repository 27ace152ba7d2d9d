package handler

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/pkg/response"
	"FitSphere/internal/pkg/util"
	"FitSphere/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthSvc service.HealthService
}

func NewHealthHandler(healthSvc service.HealthService) *HealthHandler {
	return &HealthHandler{healthSvc: healthSvc}
}

// RecordDaily 步数同步，同一天重复上报覆盖
func (s *HealthHandler) RecordDaily(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var recordDTO dto.HealthRecordCreateDTO
	if err := c.ShouldBindJSON(&recordDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&recordDTO); err != nil {
		response.Fail(c, service.BadRequest, err.Error())
		return
	}

	record, err := s.healthSvc.RecordDaily(c.Request.Context(), userID, &recordDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}

func (s *HealthHandler) TodayRecord(c *gin.Context) {
	userID := c.GetUint64("user_id")

	record, err := s.healthSvc.TodayRecord(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}
