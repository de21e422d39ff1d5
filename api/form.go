package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseDate 解析表单中的日期字段，按当地时区
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// parseIDParam 解析路径中的记录 ID
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

// today 当地时区的今天（ISO 日期字符串），供各表单页回显
func today() string {
	return time.Now().Format("2006-01-02")
}
