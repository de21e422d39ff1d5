package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"housebook/database"
	"housebook/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportCSV 导出支出记录为 CSV
// @Summary 导出支出记录
// @Description 导出支出记录为 CSV 文件，可按日期范围筛选
// @Tags 导出
// @Produce text/csv
// @Param start_time query string false "开始日期 (2025-01-01)"
// @Param end_time query string false "结束日期 (2025-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Router /export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	query := database.DB.Model(&models.Expense{})

	startTimeStr := c.Query("start_time")
	endTimeStr := c.Query("end_time")
	if startTimeStr != "" {
		if t, err := parseDate(startTimeStr); err == nil {
			query = query.Where("date >= ?", t)
		}
	}
	if endTimeStr != "" {
		if t, err := parseDate(endTimeStr); err == nil {
			query = query.Where("date <= ?", t)
		}
	}

	var expenses []models.Expense
	if err := query.Order("date DESC").Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "日期", "类型", "类别", "项目", "金额", "备注"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, expense := range expenses {
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			expense.Date.Format("2006-01-02"),
			expense.ExpenseType,
			expense.Category,
			expense.Item,
			fmt.Sprintf("%.2f", expense.Amount),
			expense.Notes,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 设置响应头
	filename := fmt.Sprintf("expenses_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出完整账本为 JSON
// @Summary 导出完整账本
// @Description 导出资产、支出、收入全量数据为 JSON
// @Tags 导出
// @Produce json
// @Success 200 {object} Response
// @Router /export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	var assets []models.Asset
	if err := database.DB.Order("date DESC").Find(&assets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}
	var expenses []models.Expense
	if err := database.DB.Order("date DESC").Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}
	var incomes []models.Income
	if err := database.DB.Order("id DESC").Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	Success(c, gin.H{
		"exported_at": time.Now().Format("2006-01-02 15:04:05"),
		"assets":      assets,
		"expenses":    expenses,
		"incomes":     incomes,
	})
}

// ExportExcel 导出完整账本为 Excel
// @Summary 导出完整账本为 Excel
// @Description 资产、支出、收入各占一个工作表
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Router /export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	var assets []models.Asset
	if err := database.DB.Order("date DESC").Find(&assets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}
	var expenses []models.Expense
	if err := database.DB.Order("date DESC").Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}
	var incomes []models.Income
	if err := database.DB.Order("id DESC").Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	// 资产工作表
	const assetSheet = "资产"
	f.SetSheetName("Sheet1", assetSheet)
	assetHeaders := []string{"ID", "日期", "类别", "项目", "金额", "备注"}
	for i, head := range assetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(assetSheet, cell, head)
	}
	for r, a := range assets {
		values := []interface{}{a.ID, a.Date.Format("2006-01-02"), a.Category, a.Item, a.Amount, a.Notes}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(assetSheet, cell, v)
		}
	}

	// 支出工作表
	const expenseSheet = "支出"
	f.NewSheet(expenseSheet)
	expenseHeaders := []string{"ID", "日期", "类型", "类别", "项目", "金额", "备注"}
	for i, head := range expenseHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(expenseSheet, cell, head)
	}
	for r, e := range expenses {
		values := []interface{}{e.ID, e.Date.Format("2006-01-02"), e.ExpenseType, e.Category, e.Item, e.Amount, e.Notes}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(expenseSheet, cell, v)
		}
	}

	// 收入工作表
	const incomeSheet = "收入"
	f.NewSheet(incomeSheet)
	incomeHeaders := []string{"ID", "类型", "金额"}
	for i, head := range incomeHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(incomeSheet, cell, head)
	}
	for r, in := range incomes {
		values := []interface{}{in.ID, in.IncomeType, in.Amount}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(incomeSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}

	filename := fmt.Sprintf("housebook_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
