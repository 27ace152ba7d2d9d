package handler

import (
	"FitSphere/internal/pkg/consts"
	"FitSphere/internal/pkg/response"
	"FitSphere/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardSvc: leaderboardSvc}
}

func (s *LeaderboardHandler) GetDailyLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(consts.LeaderboardLimit)))

	entries, err := s.leaderboardSvc.GetDailyLeaderboard(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}
