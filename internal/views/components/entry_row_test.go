package components

import (
	"image/color"
	"testing"

	"budget-tracker/internal/environment"
	"budget-tracker/internal/models"
	"budget-tracker/internal/palette"
	"budget-tracker/internal/render"

	"fyne.io/fyne/v2/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRow_Defaults(t *testing.T) {
	test.NewTempApp(t)

	expense := NewEntryRow(models.MustFinancialEntry(decimal.NewFromInt(120), "Groceries", true), nil)
	income := NewEntryRow(models.MustFinancialEntry(decimal.NewFromInt(3000), "Income", false), nil)

	assert.Equal(t, "Expense", expense.Rendered().Direction)
	assert.Equal(t, "$120.00", expense.Rendered().Amount)
	assert.Equal(t, color.Color(palette.Red), expense.Rendered().Color)

	assert.Equal(t, "Income", income.Rendered().Direction)
	assert.Equal(t, "$3000.00", income.Rendered().Amount)
	assert.Equal(t, color.Color(palette.Green), income.Rendered().Color)
}

func TestEntryRow_RendersContent(t *testing.T) {
	test.NewTempApp(t)

	row := NewEntryRow(models.MustFinancialEntry(decimal.NewFromInt(500), "Technology", true), nil)
	renderer := test.WidgetRenderer(row)

	require.Len(t, renderer.Objects(), 1)
	assert.True(t, renderer.MinSize().Width > 0)
}

func TestEntryRow_SetEnvironmentChangesColorOnly(t *testing.T) {
	test.NewTempApp(t)

	entry := models.MustFinancialEntry(decimal.NewFromInt(10), "Subscription", true)
	row := NewEntryRow(entry, nil)
	before := row.Rendered()

	row.SetEnvironment(render.HighlightExpenses(nil))
	after := row.Rendered()

	assert.Equal(t, color.Color(palette.Orange), after.Color)
	assert.Equal(t, before.Amount, after.Amount)
	assert.Equal(t, entry, row.Entry())
}

func TestEntryRow_IncomeIgnoresExpenseOverride(t *testing.T) {
	test.NewTempApp(t)

	row := NewEntryRow(models.MustFinancialEntry(decimal.NewFromInt(3000), "Income", false), render.HighlightExpenses(nil))
	assert.Equal(t, color.Color(palette.Green), row.Rendered().Color)

	row.SetEnvironment(environment.IncomeTextColor.Bind(nil, color.White))
	assert.Equal(t, color.Color(color.White), row.Rendered().Color)
}
