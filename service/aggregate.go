package service

import (
	"strings"

	"housebook/models"
)

// CategoryValue 某一类别的金额合计，供仪表盘图表使用
type CategoryValue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// AssetCategoryTotals 按类别汇总资产金额
// 类别名包含 excludeTerms 中任一标记词（如 贷款/负债）时整个类别不计入。
// 结果按类别首次出现的顺序排列；输入为空时返回空切片。
func AssetCategoryTotals(assets []models.Asset, excludeTerms []string) []CategoryValue {
	totals := make([]CategoryValue, 0)
	index := make(map[string]int)

	for _, asset := range assets {
		if containsAny(asset.Category, excludeTerms) {
			continue
		}
		if i, ok := index[asset.Category]; ok {
			totals[i].Value += asset.Amount
			continue
		}
		index[asset.Category] = len(totals)
		totals = append(totals, CategoryValue{Category: asset.Category, Value: asset.Amount})
	}

	return totals
}

// ExpenseCategoryTotals 按类别汇总支出金额
// 调用方负责筛选时间范围（仪表盘传入本月的支出记录）。
// 结果按类别首次出现的顺序排列；输入为空时返回空切片。
func ExpenseCategoryTotals(expenses []models.Expense) []CategoryValue {
	totals := make([]CategoryValue, 0)
	index := make(map[string]int)

	for _, expense := range expenses {
		if i, ok := index[expense.Category]; ok {
			totals[i].Value += expense.Amount
			continue
		}
		index[expense.Category] = len(totals)
		totals = append(totals, CategoryValue{Category: expense.Category, Value: expense.Amount})
	}

	return totals
}

// containsAny 类别名是否包含任一标记词（子串匹配）
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(s, term) {
			return true
		}
	}
	return false
}
