package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"housebook/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDashboardHandler()
	r.GET("/", h.Dashboard)
	return r
}

// startOfCurrentMonth 当月第一天（当地时区）
func startOfCurrentMonth() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
}

// withDashboardConfig 临时替换全局配置
func withDashboardConfig(t *testing.T, excludes []string) {
	old := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		Dashboard: config.DashboardConfig{ExcludeCategories: excludes},
	}
	t.Cleanup(func() { config.GlobalConfig = old })
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	withDashboardConfig(t, []string{"贷款", "负债"})

	// 查询顺序：资产、提醒、近期支出、近期收入、住房开销、本月支出、总收入、总支出
	mock.ExpectQuery("SELECT .* FROM `assets`").
		WillReturnRows(assetRows().
			AddRow(3, testDate(2025, 9, 1), "贷款-房贷", "房贷", 200000000.0, "", testDate(2025, 9, 1), testDate(2025, 9, 1), nil).
			AddRow(1, testDate(2025, 1, 15), "金融资产", "股票", 12000000.0, "", testDate(2025, 1, 15), testDate(2025, 1, 15), nil).
			AddRow(2, testDate(2025, 1, 10), "不动产", "公寓", 500000000.0, "", testDate(2025, 1, 10), testDate(2025, 1, 10), nil))
	mock.ExpectQuery("SELECT .* FROM `tasks`").
		WillReturnRows(taskRows().
			AddRow(1, "净水器滤芯更换", "SU-3000", testDate(2025, 9, 30), "family@example.com", testDate(2025, 9, 1), testDate(2025, 9, 1), nil))
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(expenseRows().
			AddRow(1, testDate(2025, 9, 5), "variable", "食品", "超市采购", 45000.0, "", testDate(2025, 9, 5), testDate(2025, 9, 5), nil))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(1, "工资", 3000000.0, testDate(2025, 9, 1), testDate(2025, 9, 1), nil))
	mock.ExpectQuery("SELECT .* FROM `house_data`").
		WillReturnRows(houseRows().
			AddRow(1, testDate(2025, 8, 31), 200000.0, 150000.0, "", testDate(2025, 8, 31), testDate(2025, 8, 31)))
	// 本月支出必须带 date >= 当月第一天 的过滤条件
	monthStart := startOfCurrentMonth()
	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE date >= \\?").
		WithArgs(monthStart).
		WillReturnRows(expenseRows().
			AddRow(1, monthStart, "variable", "食品", "超市采购", 45000.0, "", monthStart, monthStart, nil))
	mock.ExpectQuery("SELECT COALESCE.+FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3000000.0))
	mock.ExpectQuery("SELECT COALESCE.+FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(45000.0))

	router := newDashboardRouter()
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			AssetsData []struct {
				Category string `json:"category"`
				Date     string `json:"date"`
			} `json:"assets_data"`
			TasksData []struct {
				ItemName string `json:"item_name"`
				DueDate  string `json:"due_date"`
			} `json:"tasks_data"`
			CategoryJSON []struct {
				Category string  `json:"category"`
				Value    float64 `json:"value"`
			} `json:"category_json"`
			ExpenseCategoryJSON []struct {
				Category string  `json:"category"`
				Value    float64 `json:"value"`
			} `json:"expense_category_json"`
			TotalIncome  float64 `json:"total_income"`
			TotalExpense float64 `json:"total_expense"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 资产明细保留负债行，占比图剔除负债类
	require.Len(t, resp.Data.AssetsData, 3)
	assert.Equal(t, "贷款-房贷", resp.Data.AssetsData[0].Category)
	assert.Equal(t, "2025-09-01", resp.Data.AssetsData[0].Date)

	require.Len(t, resp.Data.CategoryJSON, 2)
	assert.Equal(t, "金融资产", resp.Data.CategoryJSON[0].Category)
	assert.Equal(t, 12000000.0, resp.Data.CategoryJSON[0].Value)
	assert.Equal(t, "不动产", resp.Data.CategoryJSON[1].Category)

	require.Len(t, resp.Data.ExpenseCategoryJSON, 1)
	assert.Equal(t, "食品", resp.Data.ExpenseCategoryJSON[0].Category)
	assert.Equal(t, 45000.0, resp.Data.ExpenseCategoryJSON[0].Value)

	require.Len(t, resp.Data.TasksData, 1)
	assert.Equal(t, "2025-09-30", resp.Data.TasksData[0].DueDate)

	assert.Equal(t, 3000000.0, resp.Data.TotalIncome)
	assert.Equal(t, 45000.0, resp.Data.TotalExpense)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardHandler_Dashboard_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	withDashboardConfig(t, []string{"贷款", "负债"})

	mock.ExpectQuery("SELECT .* FROM `assets`").WillReturnRows(assetRows())
	mock.ExpectQuery("SELECT .* FROM `tasks`").WillReturnRows(taskRows())
	mock.ExpectQuery("SELECT .* FROM `expenses`").WillReturnRows(expenseRows())
	mock.ExpectQuery("SELECT .* FROM `incomes`").WillReturnRows(incomeRows())
	mock.ExpectQuery("SELECT .* FROM `house_data`").WillReturnRows(houseRows())
	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE date >= \\?").
		WithArgs(startOfCurrentMonth()).
		WillReturnRows(expenseRows())
	mock.ExpectQuery("SELECT COALESCE.+FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery("SELECT COALESCE.+FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

	router := newDashboardRouter()
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			AssetsData   []json.RawMessage `json:"assets_data"`
			CategoryJSON []json.RawMessage `json:"category_json"`
			TotalIncome  float64           `json:"total_income"`
			TotalExpense float64           `json:"total_expense"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 空库时列表为空数组而非 null，累计金额为 0
	assert.NotNil(t, resp.Data.AssetsData)
	assert.Len(t, resp.Data.AssetsData, 0)
	assert.NotNil(t, resp.Data.CategoryJSON)
	assert.Equal(t, 0.0, resp.Data.TotalIncome)
	assert.Equal(t, 0.0, resp.Data.TotalExpense)
	require.NoError(t, mock.ExpectationsWereMet())
}
