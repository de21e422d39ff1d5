package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHouseRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHouseHandler()
	r.GET("/add_house", h.AddForm)
	r.POST("/add_house", h.Upsert)
	return r
}

func houseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "date", "maintenance_cost", "utility_bill", "memo", "created_at", "updated_at"})
}

func TestHouseHandler_Upsert_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 该日期没有记录：新建
	mock.ExpectQuery("SELECT .* FROM `house_data`").
		WillReturnRows(houseRows())
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `house_data`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := newHouseRouter()
	w := postForm(router, "/add_house", url.Values{
		"date":             {"2025-01-31"},
		"maintenance_cost": {"200000"},
		"utility_bill":     {"150000"},
		"memo":             {"1月管理费及公共事业费"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHouseHandler_Upsert_Overwrite(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 该日期已有记录：按本次提交覆盖
	mock.ExpectQuery("SELECT .* FROM `house_data`").
		WillReturnRows(houseRows().
			AddRow(1, testDate(2025, 1, 31), 180000.0, 120000.0, "旧备注", testDate(2025, 1, 31), testDate(2025, 1, 31)))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `house_data`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := newHouseRouter()
	w := postForm(router, "/add_house", url.Values{
		"date":             {"2025-01-31"},
		"maintenance_cost": {"200000"},
		"utility_bill":     {"150000"},
		"memo":             {"1月管理费及公共事业费"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHouseHandler_Upsert_BadDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := newHouseRouter()
	w := postForm(router, "/add_house", url.Values{
		"date": {"31/01/2025"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
