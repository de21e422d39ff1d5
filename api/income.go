package api

import (
	"housebook/database"
	"housebook/models"

	"github.com/gin-gonic/gin"
)

// IncomeHandler 收入记录处理器
type IncomeHandler struct{}

// NewIncomeHandler 创建收入记录处理器
func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

// IncomeForm 收入表单
// 收入不带日期，按累计口径计入总收入
type IncomeForm struct {
	IncomeType string   `form:"income_type" binding:"required" example:"工资"`
	Amount     *float64 `form:"amount" binding:"required,gte=0" example:"3000000"` // 指针以区分缺省与 0
}

// DeleteIncomeForm 删除收入表单
type DeleteIncomeForm struct {
	IncomeID uint `form:"income_id" binding:"required"`
}

// Create 创建收入记录
// @Summary 创建收入记录
// @Tags 收入
// @Accept x-www-form-urlencoded
// @Param income_type formData string true "收入类型"
// @Param amount formData number true "金额"
// @Success 303 "创建成功，重定向到收支明细页"
// @Failure 400 {object} Response "请求参数错误"
// @Router /add_income [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req IncomeForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	income := models.Income{
		IncomeType: req.IncomeType,
		Amount:     *req.Amount,
	}

	if err := database.DB.Create(&income).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建收入记录失败"))
		return
	}

	SeeOther(c, "/expenses")
}

// EditForm 收入编辑页数据
// @Summary 收入编辑页
// @Tags 收入
// @Produce json
// @Param id path int true "收入记录ID"
// @Success 200 {object} Response{data=models.Income}
// @Failure 404 {object} Response "记录不存在"
// @Router /edit_income/{id} [get]
func (h *IncomeHandler) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var income models.Income
	if err := database.DB.First(&income, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, gin.H{"income": income})
}

// Update 更新收入记录
// @Summary 更新收入记录
// @Tags 收入
// @Accept x-www-form-urlencoded
// @Param id path int true "收入记录ID"
// @Success 303 "更新成功，重定向到收支明细页"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /edit_income/{id} [post]
func (h *IncomeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var income models.Income
	if err := database.DB.First(&income, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req IncomeForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := map[string]interface{}{
		"income_type": req.IncomeType,
		"amount":      *req.Amount,
	}

	if err := database.DB.Model(&income).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	SeeOther(c, "/expenses")
}

// Delete 删除收入记录
// @Summary 删除收入记录
// @Tags 收入
// @Accept x-www-form-urlencoded
// @Param income_id formData int true "收入记录ID"
// @Success 303 "删除成功，重定向到收支明细页"
// @Failure 404 {object} Response "记录不存在"
// @Router /delete_income [post]
func (h *IncomeHandler) Delete(c *gin.Context) {
	var req DeleteIncomeForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var income models.Income
	if err := database.DB.First(&income, req.IncomeID).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&income).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SeeOther(c, "/expenses")
}
