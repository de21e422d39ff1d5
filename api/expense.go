package api

import (
	"housebook/database"
	"housebook/models"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 支出记录处理器
type ExpenseHandler struct{}

// NewExpenseHandler 创建支出记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// ExpenseForm 支出表单
type ExpenseForm struct {
	Date        string   `form:"date" binding:"required" example:"2025-01-15"`
	ExpenseType string   `form:"expense_type" binding:"required,oneof=fixed variable" example:"variable"`
	Category    string   `form:"category" binding:"required" example:"食品"`
	Item        string   `form:"item" binding:"required" example:"超市采购"`
	Amount      *float64 `form:"amount" binding:"required,gte=0" example:"45000"` // 指针以区分缺省与 0
	Notes       string   `form:"notes"`
}

// DeleteExpenseForm 删除支出表单
type DeleteExpenseForm struct {
	ExpenseID uint `form:"expense_id" binding:"required"`
}

// ListPage 收支明细页数据：全部支出（按日期倒序）与全部收入（按ID倒序）
// @Summary 收支明细页
// @Tags 支出
// @Produce json
// @Success 200 {object} Response
// @Router /expenses [get]
func (h *ExpenseHandler) ListPage(c *gin.Context) {
	var expenses []models.Expense
	if err := database.DB.Order("date DESC").Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	var incomes []models.Income
	if err := database.DB.Order("id DESC").Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, gin.H{
		"expenses": expenses,
		"incomes":  incomes,
		"today":    today(),
	})
}

// Create 创建支出记录
// @Summary 创建支出记录
// @Tags 支出
// @Accept x-www-form-urlencoded
// @Param date formData string true "日期 (2025-01-15)"
// @Param expense_type formData string true "支出类型 fixed/variable"
// @Param category formData string true "类别"
// @Param item formData string true "项目"
// @Param amount formData number true "金额"
// @Param notes formData string false "备注"
// @Success 303 "创建成功，重定向到收支明细页"
// @Failure 400 {object} Response "请求参数错误"
// @Router /add_expense [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	expense := models.Expense{
		Date:        date,
		ExpenseType: req.ExpenseType,
		Category:    req.Category,
		Item:        req.Item,
		Amount:      *req.Amount,
		Notes:       req.Notes,
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建支出记录失败"))
		return
	}

	SeeOther(c, "/expenses")
}

// EditForm 支出编辑页数据
// @Summary 支出编辑页
// @Tags 支出
// @Produce json
// @Param id path int true "支出记录ID"
// @Success 200 {object} Response{data=models.Expense}
// @Failure 404 {object} Response "记录不存在"
// @Router /edit_expense/{id} [get]
func (h *ExpenseHandler) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, gin.H{"expense": expense, "today": today()})
}

// Update 更新支出记录
// @Summary 更新支出记录
// @Tags 支出
// @Accept x-www-form-urlencoded
// @Param id path int true "支出记录ID"
// @Success 303 "更新成功，重定向到收支明细页"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /edit_expense/{id} [post]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req ExpenseForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	updates := map[string]interface{}{
		"date":         date,
		"expense_type": req.ExpenseType,
		"category":     req.Category,
		"item":         req.Item,
		"amount":       *req.Amount,
		"notes":        req.Notes,
	}

	if err := database.DB.Model(&expense).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	SeeOther(c, "/expenses")
}

// Delete 删除支出记录
// @Summary 删除支出记录
// @Tags 支出
// @Accept x-www-form-urlencoded
// @Param expense_id formData int true "支出记录ID"
// @Success 303 "删除成功，重定向到收支明细页"
// @Failure 404 {object} Response "记录不存在"
// @Router /delete_expense [post]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	var req DeleteExpenseForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, req.ExpenseID).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SeeOther(c, "/expenses")
}
