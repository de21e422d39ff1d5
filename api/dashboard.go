package api

import (
	"time"

	"housebook/config"
	"housebook/database"
	"housebook/models"
	"housebook/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct{}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Dashboard 仪表盘数据
// 汇总资产、提醒、近期收支、住房开销，并给出两组图表数据：
// 资产类别占比（剔除负债类）与本月支出类别占比，以及累计总收入/总支出。
// @Summary 仪表盘数据
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} Response
// @Router / [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	// 资产：全量，按日期倒序
	var assets []models.Asset
	if err := database.DB.Order("date DESC").Find(&assets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 提醒：按到期日升序
	var tasks []models.Task
	if err := database.DB.Order("due_date ASC").Find(&tasks).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 近期支出：按日期倒序，最多 10 条
	var recentExpenses []models.Expense
	if err := database.DB.Order("date DESC").Limit(10).Find(&recentExpenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 近期收入：按ID倒序，最多 10 条
	var recentIncomes []models.Income
	if err := database.DB.Order("id DESC").Limit(10).Find(&recentIncomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 住房开销：按日期倒序，最多 10 条
	var houseData []models.HouseData
	if err := database.DB.Order("date DESC").Limit(10).Find(&houseData).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 本月支出：当月第一天（含）起
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	var monthlyExpenses []models.Expense
	if err := database.DB.Where("date >= ?", startOfMonth).Find(&monthlyExpenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 类别占比
	excludeTerms := config.GetConfig().Dashboard.ExcludeCategories
	categoryData := service.AssetCategoryTotals(assets, excludeTerms)
	expenseCategoryData := service.ExpenseCategoryTotals(monthlyExpenses)

	// 累计总收入/总支出（无记录时为 0）
	var totalIncome, totalExpense float64
	database.DB.Model(&models.Income{}).Select("COALESCE(SUM(amount), 0)").Scan(&totalIncome)
	database.DB.Model(&models.Expense{}).Select("COALESCE(SUM(amount), 0)").Scan(&totalExpense)

	assetsData := make([]gin.H, 0, len(assets))
	for _, a := range assets {
		assetsData = append(assetsData, gin.H{
			"id":       a.ID,
			"date":     a.Date.Format("2006-01-02"),
			"category": a.Category,
			"item":     a.Item,
			"amount":   a.Amount,
			"notes":    a.Notes,
		})
	}

	tasksData := make([]gin.H, 0, len(tasks))
	for _, t := range tasks {
		tasksData = append(tasksData, gin.H{
			"id":         t.ID,
			"item_name":  t.ItemName,
			"model_name": t.ModelName,
			"due_date":   t.DueDate.Format("2006-01-02"),
			"email":      t.Email,
		})
	}

	expensesData := make([]gin.H, 0, len(recentExpenses))
	for _, e := range recentExpenses {
		expensesData = append(expensesData, gin.H{
			"id":           e.ID,
			"date":         e.Date.Format("2006-01-02"),
			"expense_type": e.ExpenseType,
			"category":     e.Category,
			"item":         e.Item,
			"amount":       e.Amount,
			"notes":        e.Notes,
		})
	}

	incomesData := make([]gin.H, 0, len(recentIncomes))
	for _, i := range recentIncomes {
		incomesData = append(incomesData, gin.H{
			"id":          i.ID,
			"income_type": i.IncomeType,
			"amount":      i.Amount,
		})
	}

	houseList := make([]gin.H, 0, len(houseData))
	for _, d := range houseData {
		houseList = append(houseList, gin.H{
			"id":               d.ID,
			"date":             d.Date.Format("2006-01-02"),
			"maintenance_cost": d.MaintenanceCost,
			"utility_bill":     d.UtilityBill,
			"memo":             d.Memo,
		})
	}

	Success(c, gin.H{
		"assets_data":           assetsData,
		"tasks_data":            tasksData,
		"expenses_data":         expensesData,
		"incomes_data":          incomesData,
		"house_data":            houseList,
		"category_json":         categoryData,
		"expense_category_json": expenseCategoryData,
		"total_income":          totalIncome,
		"total_expense":         totalExpense,
		"today":                 today(),
	})
}
