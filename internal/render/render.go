package render

import (
	"image/color"

	"budget-tracker/internal/environment"
	"budget-tracker/internal/models"
	"budget-tracker/internal/palette"

	"github.com/google/uuid"
)

const (
	DefaultTitle = "Budget Tracker"
	SectionTitle = "Entries"
)

// Row is the rendered form of one entry
type Row struct {
	ID        uuid.UUID
	Category  string
	Direction string
	Amount    string
	Color     color.Color
}

// List is the rendered form of the whole screen
type List struct {
	Title   string
	Section string
	Rows    []Row
}

// Override rebinds context values for a container and everything below it
type Override func(*environment.Values) *environment.Values

// HighlightExpenses paints expense amounts orange for the container's subtree
func HighlightExpenses(parent *environment.Values) *environment.Values {
	return environment.ExpenseTextColor.Bind(parent, palette.Orange)
}

// FormatAmount renders an amount as dollars with exactly two decimals
func FormatAmount(entry models.FinancialEntry) string {
	return "$" + entry.Amount().StringFixed(2)
}

// RenderRow resolves the row's colors from values at call time
func RenderRow(entry models.FinancialEntry, values *environment.Values) Row {
	expenseColor := environment.ExpenseTextColor.Get(values)
	incomeColor := environment.IncomeTextColor.Get(values)

	rowColor := incomeColor
	if entry.IsExpense() {
		rowColor = expenseColor
	}

	return Row{
		ID:        entry.ID(),
		Category:  entry.Category(),
		Direction: entry.Direction(),
		Amount:    FormatAmount(entry),
		Color:     rowColor,
	}
}

// ContainerScope applies container-level overrides once, in order
func ContainerScope(values *environment.Values, overrides ...Override) *environment.Values {
	for _, override := range overrides {
		values = override(values)
	}
	return values
}

// RenderList renders every entry in input order under the single entries section.
// Overrides are attached to the list container, so every row shares one scope.
func RenderList(title string, entries []models.FinancialEntry, values *environment.Values, overrides ...Override) List {
	scope := ContainerScope(values, overrides...)

	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, RenderRow(entry, scope))
	}

	return List{
		Title:   title,
		Section: SectionTitle,
		Rows:    rows,
	}
}
