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

func newIncomeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewIncomeHandler()
	r.POST("/add_income", h.Create)
	r.GET("/edit_income/:id", h.EditForm)
	r.POST("/edit_income/:id", h.Update)
	r.POST("/delete_income", h.Delete)
	return r
}

func TestIncomeHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := newIncomeRouter()
	w := postForm(router, "/add_income", url.Values{
		"income_type": {"工资"},
		"amount":      {"3000000"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/expenses", w.Header().Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Create_MissingType(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := newIncomeRouter()
	w := postForm(router, "/add_income", url.Values{"amount": {"3000000"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIncomeHandler_Create_MissingAmount(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := newIncomeRouter()
	w := postForm(router, "/add_income", url.Values{"income_type": {"工资"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIncomeHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(1, "工资", 3000000.0, testDate(2025, 9, 1), testDate(2025, 9, 1), nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := newIncomeRouter()
	w := postForm(router, "/edit_income/1", url.Values{
		"income_type": {"奖金"},
		"amount":      {"500000"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/expenses", w.Header().Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(1, "工资", 3000000.0, testDate(2025, 9, 1), testDate(2025, 9, 1), nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := newIncomeRouter()
	w := postForm(router, "/delete_income", url.Values{"income_id": {"1"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/expenses", w.Header().Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}
