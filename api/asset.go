package api

import (
	"housebook/database"
	"housebook/models"

	"github.com/gin-gonic/gin"
)

// AssetHandler 资产记录处理器
type AssetHandler struct{}

// NewAssetHandler 创建资产记录处理器
func NewAssetHandler() *AssetHandler {
	return &AssetHandler{}
}

// AssetForm 资产表单
type AssetForm struct {
	Date     string   `form:"date" binding:"required" example:"2025-01-15"`
	Category string   `form:"category" binding:"required" example:"金融资产"`
	Item     string   `form:"item" binding:"required" example:"股票"`
	Amount   *float64 `form:"amount" binding:"required,gte=0" example:"12000000"` // 指针以区分缺省与 0
	Notes    string   `form:"notes" example:"科技股投资"`
}

// DeleteAssetForm 删除资产表单
type DeleteAssetForm struct {
	AssetID uint `form:"asset_id" binding:"required"`
}

// AddForm 资产录入页数据
// @Summary 资产录入页
// @Tags 资产
// @Produce json
// @Success 200 {object} Response
// @Router /add_asset [get]
func (h *AssetHandler) AddForm(c *gin.Context) {
	Success(c, gin.H{"today": today()})
}

// Create 创建资产记录
// @Summary 创建资产记录
// @Tags 资产
// @Accept x-www-form-urlencoded
// @Param date formData string true "日期 (2025-01-15)"
// @Param category formData string true "类别"
// @Param item formData string true "项目"
// @Param amount formData number true "金额"
// @Param notes formData string false "备注"
// @Success 303 "创建成功，重定向到仪表盘"
// @Failure 400 {object} Response "请求参数错误"
// @Router /add_asset [post]
func (h *AssetHandler) Create(c *gin.Context) {
	var req AssetForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	asset := models.Asset{
		Date:     date,
		Category: req.Category,
		Item:     req.Item,
		Amount:   *req.Amount,
		Notes:    req.Notes,
	}

	if err := database.DB.Create(&asset).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建资产记录失败"))
		return
	}

	SeeOther(c, "/")
}

// EditForm 资产编辑页数据
// @Summary 资产编辑页
// @Tags 资产
// @Produce json
// @Param id path int true "资产记录ID"
// @Success 200 {object} Response{data=models.Asset}
// @Failure 404 {object} Response "记录不存在"
// @Router /edit_asset/{id} [get]
func (h *AssetHandler) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var asset models.Asset
	if err := database.DB.First(&asset, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, gin.H{"asset": asset, "today": today()})
}

// Update 更新资产记录
// @Summary 更新资产记录
// @Tags 资产
// @Accept x-www-form-urlencoded
// @Param id path int true "资产记录ID"
// @Success 303 "更新成功，重定向到仪表盘"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /edit_asset/{id} [post]
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var asset models.Asset
	if err := database.DB.First(&asset, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req AssetForm
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
		"date":     date,
		"category": req.Category,
		"item":     req.Item,
		"amount":   *req.Amount,
		"notes":    req.Notes,
	}

	if err := database.DB.Model(&asset).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	SeeOther(c, "/")
}

// Delete 删除资产记录
// @Summary 删除资产记录
// @Tags 资产
// @Accept x-www-form-urlencoded
// @Param asset_id formData int true "资产记录ID"
// @Success 303 "删除成功，重定向到仪表盘"
// @Failure 404 {object} Response "记录不存在"
// @Router /delete_asset [post]
func (h *AssetHandler) Delete(c *gin.Context) {
	var req DeleteAssetForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var asset models.Asset
	if err := database.DB.First(&asset, req.AssetID).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&asset).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SeeOther(c, "/")
}
