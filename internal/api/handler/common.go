package handler

import (
	"FitSphere/internal/pkg/consts"
	"FitSphere/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径上的数字 ID，0 视为非法
func parseIDParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}

// getPagination 解析 page / page_size 查询参数，
// 在此统一裁剪上限，保证翻页偏移与查询窗口一致
func getPagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}
	return page, pageSize
}
