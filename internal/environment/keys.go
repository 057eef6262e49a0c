package environment

import (
	"image/color"

	"budget-tracker/internal/palette"
)

var (
	// ExpenseTextColor colors the amount of outflow entries
	ExpenseTextColor = NewKey[color.Color]("expenseTextColor", palette.Red)

	// IncomeTextColor colors the amount of inflow entries
	IncomeTextColor = NewKey[color.Color]("incomeTextColor", palette.Green)
)
