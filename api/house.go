package api

import (
	"errors"

	"housebook/database"
	"housebook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HouseHandler 住房开销处理器
type HouseHandler struct{}

// NewHouseHandler 创建住房开销处理器
func NewHouseHandler() *HouseHandler {
	return &HouseHandler{}
}

// HouseForm 住房开销表单
type HouseForm struct {
	Date            string  `form:"date" binding:"required" example:"2025-01-31"`
	MaintenanceCost float64 `form:"maintenance_cost" binding:"gte=0" example:"200000"`
	UtilityBill     float64 `form:"utility_bill" binding:"gte=0" example:"150000"`
	Memo            string  `form:"memo" example:"1月管理费及公共事业费"`
}

// AddForm 住房开销录入页数据
// @Summary 住房开销录入页
// @Tags 住房
// @Produce json
// @Success 200 {object} Response
// @Router /add_house [get]
func (h *HouseHandler) AddForm(c *gin.Context) {
	Success(c, gin.H{"today": today()})
}

// Upsert 登记住房开销
// 同一日期至多一条记录：已有记录时用本次提交的字段覆盖（按日期 upsert）
// @Summary 登记住房开销
// @Tags 住房
// @Accept x-www-form-urlencoded
// @Param date formData string true "日期 (2025-01-31)"
// @Param maintenance_cost formData number false "维护费"
// @Param utility_bill formData number false "公共事业费"
// @Param memo formData string false "备注"
// @Success 303 "登记成功，重定向到仪表盘"
// @Failure 400 {object} Response "请求参数错误"
// @Router /add_house [post]
func (h *HouseHandler) Upsert(c *gin.Context) {
	var req HouseForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	// 按日期查找既有记录，有则覆盖，无则新建
	var row models.HouseData
	err = database.DB.Where("date = ?", date).First(&row).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"maintenance_cost": req.MaintenanceCost,
			"utility_bill":     req.UtilityBill,
			"memo":             req.Memo,
		}
		if err := database.DB.Model(&row).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新住房开销失败"))
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = models.HouseData{
			Date:            date,
			MaintenanceCost: req.MaintenanceCost,
			UtilityBill:     req.UtilityBill,
			Memo:            req.Memo,
		}
		if err := database.DB.Create(&row).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "创建住房开销失败"))
			return
		}
	default:
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	SeeOther(c, "/")
}
