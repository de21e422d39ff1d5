package service

import (
	"testing"
	"time"

	"housebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestAssetCategoryTotals(t *testing.T) {
	assets := []models.Asset{
		{Date: day(2025, 1, 15), Category: "金融资产", Item: "股票", Amount: 12000000},
		{Date: day(2025, 2, 20), Category: "不动产", Item: "公寓", Amount: 500000000},
		{Date: day(2025, 3, 5), Category: "金融资产", Item: "基金", Amount: 3000000},
		{Date: day(2025, 4, 1), Category: "贷款-房贷", Item: "房贷", Amount: 200000000},
	}

	totals := AssetCategoryTotals(assets, []string{"贷款", "负债"})

	// 负债类整体剔除，其余按首次出现顺序
	require.Len(t, totals, 2)
	assert.Equal(t, "金融资产", totals[0].Category)
	assert.Equal(t, 15000000.0, totals[0].Value)
	assert.Equal(t, "不动产", totals[1].Category)
	assert.Equal(t, 500000000.0, totals[1].Value)

	// 各类别之和等于未剔除行的总额
	var sum float64
	for _, cv := range totals {
		sum += cv.Value
	}
	assert.Equal(t, 515000000.0, sum)
}

func TestAssetCategoryTotals_ExcludeBySubstring(t *testing.T) {
	assets := []models.Asset{
		{Category: "Stocks", Amount: 12000000},
		{Category: "Loan-Mortgage", Amount: 500000000},
	}

	totals := AssetCategoryTotals(assets, []string{"Loan", "Debt"})

	require.Len(t, totals, 1)
	assert.Equal(t, "Stocks", totals[0].Category)
	assert.Equal(t, 12000000.0, totals[0].Value)
}

func TestAssetCategoryTotals_Empty(t *testing.T) {
	totals := AssetCategoryTotals(nil, []string{"贷款"})
	require.NotNil(t, totals)
	assert.Len(t, totals, 0)
}

func TestAssetCategoryTotals_NoExcludeTerms(t *testing.T) {
	assets := []models.Asset{
		{Category: "存款", Amount: 100},
		{Category: "存款", Amount: 200},
	}
	totals := AssetCategoryTotals(assets, nil)
	require.Len(t, totals, 1)
	assert.Equal(t, 300.0, totals[0].Value)
}

func TestExpenseCategoryTotals(t *testing.T) {
	expenses := []models.Expense{
		{Date: day(2025, 9, 1), Category: "食品", Amount: 45000},
		{Date: day(2025, 9, 3), Category: "交通", Amount: 12000},
		{Date: day(2025, 9, 5), Category: "食品", Amount: 8000},
	}

	totals := ExpenseCategoryTotals(expenses)

	require.Len(t, totals, 2)
	assert.Equal(t, "食品", totals[0].Category)
	assert.Equal(t, 53000.0, totals[0].Value)
	assert.Equal(t, "交通", totals[1].Category)
	assert.Equal(t, 12000.0, totals[1].Value)
}

func TestExpenseCategoryTotals_Empty(t *testing.T) {
	totals := ExpenseCategoryTotals([]models.Expense{})
	require.NotNil(t, totals)
	assert.Len(t, totals, 0)
}
