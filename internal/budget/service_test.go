package budget_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/weekbudget/backend/internal/budget"
	"github.com/weekbudget/backend/internal/models"
	"github.com/weekbudget/backend/internal/types"
)

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)

	suite.Assert().Equal(27, settings.StartDay)
	suite.Assert().Equal(26, settings.EndDay)
	suite.assertDecimal("0", settings.MonthlyBudget)
	suite.Assert().Nil(settings.ActivatedAt)
	suite.Assert().Equal("EUR", settings.Currency)
	suite.Assert().Equal("€", settings.CurrencySymbol)
}

func (suite *TestSuiteStandard) TestSettingsUnparseableDays() {
	value := "twenty"
	suite.Require().Nil(models.NewStore(models.DB).SetSetting(suite.ctx, models.SettingStartDay, &value))

	decimalDay := "15.0"
	suite.Require().Nil(models.NewStore(models.DB).SetSetting(suite.ctx, models.SettingEndDay, &decimalDay))

	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Equal(27, settings.StartDay, "Unparseable start day must fall back to the default")
	suite.Assert().Equal(15, settings.EndDay)
}

func (suite *TestSuiteStandard) TestAddExpense() {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"Comma separator", "12,50", "-12.5"},
		{"Dot separator", "3.99", "-3.99"},
		{"Negative input", "-7", "-7"},
		{"Whitespace", " 4 ", "-4"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			id, err := suite.service.AddExpense(suite.ctx, tt.amount, "coffee")
			suite.Require().Nil(err)
			suite.Assert().NotEqual(uuid.Nil, id)

			var expense models.Expense
			suite.Require().Nil(models.DB.Where("id = ?", id).First(&expense).Error)
			suite.assertDecimal(tt.want, expense.Amount)
			suite.Assert().Equal(types.NewDate(2024, 3, 6), expense.Date)
			suite.Assert().Equal("coffee", expense.Description)
		})
	}
}

func (suite *TestSuiteStandard) TestAddExpenseInvalid() {
	_, err := suite.service.AddExpense(suite.ctx, "a lot", "")
	suite.Assert().ErrorIs(err, budget.ErrInvalidAmount)

	expenses, err := suite.service.Expenses(suite.ctx, types.NewDate(2024, 1, 1), types.NewDate(2024, 12, 31))
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 0)
}

func (suite *TestSuiteStandard) TestAddExpenseUsesLocation() {
	cet := time.FixedZone("CET", 60*60)

	// 23:30 UTC is already the next day in CET
	service := budget.NewService(
		models.NewStore(models.DB),
		budget.WithLocation(cet),
		budget.WithClock(func() time.Time { return time.Date(2024, 3, 6, 23, 30, 0, 0, time.UTC) }),
	)

	id, err := service.AddExpense(suite.ctx, "1", "")
	suite.Require().Nil(err)

	var expense models.Expense
	suite.Require().Nil(models.DB.Where("id = ?", id).First(&expense).Error)
	suite.Assert().Equal(types.NewDate(2024, 3, 7), expense.Date)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	id, err := suite.service.AddExpense(suite.ctx, "5", "bread")
	suite.Require().Nil(err)

	suite.Require().Nil(suite.service.DeleteExpense(suite.ctx, id))
	suite.Assert().Nil(suite.service.DeleteExpense(suite.ctx, uuid.New()), "Deleting an unknown expense must not fail")

	expenses, err := suite.service.Expenses(suite.ctx, types.NewDate(2024, 3, 1), types.NewDate(2024, 3, 31))
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 0)
}

func (suite *TestSuiteStandard) TestClearExpenses() {
	suite.addExpense("1", "")
	suite.addExpense("2", "")

	suite.Require().Nil(suite.service.ClearExpenses(suite.ctx))

	expenses, err := suite.service.Expenses(suite.ctx, types.NewDate(2024, 1, 1), types.NewDate(2024, 12, 31))
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 0)
}

func (suite *TestSuiteStandard) TestUpdateCycleDays() {
	suite.Require().Nil(suite.service.UpdateStartDay(suite.ctx, "1"))
	suite.Require().Nil(suite.service.UpdateEndDay(suite.ctx, "31"))

	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Equal(1, settings.StartDay)
	suite.Assert().Equal(31, settings.EndDay)
}

func (suite *TestSuiteStandard) TestUpdateCycleDaysClamped() {
	suite.Require().Nil(suite.service.UpdateStartDay(suite.ctx, "0"))
	suite.Require().Nil(suite.service.UpdateEndDay(suite.ctx, "45"))

	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Equal(1, settings.StartDay)
	suite.Assert().Equal(31, settings.EndDay)
}

func (suite *TestSuiteStandard) TestUpdateCycleDaysRejected() {
	// 25 to 26 are only two days
	err := suite.service.UpdateStartDay(suite.ctx, "25")
	suite.Assert().ErrorIs(err, budget.ErrInvalidCycle)

	// 27 to 30 are four days
	err = suite.service.UpdateEndDay(suite.ctx, "30")
	suite.Assert().ErrorIs(err, budget.ErrInvalidCycle)

	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Equal(27, settings.StartDay, "Start day must not change when the cycle is rejected")
	suite.Assert().Equal(26, settings.EndDay, "End day must not change when the cycle is rejected")
}

func (suite *TestSuiteStandard) TestUpdateCycleDaysWrapApproximation() {
	// 28 to 3 wraps with 31-28+1+3 = 7 days, even in February
	suite.Require().Nil(suite.service.UpdateEndDay(suite.ctx, "3"))
	suite.Require().Nil(suite.service.UpdateStartDay(suite.ctx, "28"))
}

func (suite *TestSuiteStandard) TestUpdateMonthlyBudgetActivates() {
	suite.Require().Nil(suite.service.UpdateMonthlyBudget(suite.ctx, "1200,50"))

	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.assertDecimal("1200.5", settings.MonthlyBudget)
	suite.Require().NotNil(settings.ActivatedAt)
	suite.Assert().Equal(types.NewDate(2024, 3, 6), *settings.ActivatedAt)

	// Later changes keep the first activation date
	suite.setClock(2024, 4, 2, 8)
	suite.Require().Nil(suite.service.UpdateMonthlyBudget(suite.ctx, "900"))

	settings, err = suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.assertDecimal("900", settings.MonthlyBudget)
	suite.Assert().Equal(types.NewDate(2024, 3, 6), *settings.ActivatedAt)
}

func (suite *TestSuiteStandard) TestUpdateMonthlyBudgetZeroDoesNotActivate() {
	suite.Require().Nil(suite.service.UpdateMonthlyBudget(suite.ctx, "0"))

	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Nil(settings.ActivatedAt)
}

func (suite *TestSuiteStandard) TestUpdateMonthlyBudgetInvalid() {
	suite.Require().Nil(suite.service.UpdateMonthlyBudget(suite.ctx, "500"))

	for _, raw := range []string{"-100", "lots", ""} {
		err := suite.service.UpdateMonthlyBudget(suite.ctx, raw)
		suite.Assert().ErrorIs(err, budget.ErrInvalidAmount, "Input %q must be rejected", raw)
	}

	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.assertDecimal("500", settings.MonthlyBudget)
}

func (suite *TestSuiteStandard) TestUpdateCurrency() {
	tests := []struct {
		raw    string
		iso    string
		symbol string
	}{
		{"€", "EUR", "€"},
		{"GBP", "GBP", "£"},
		{"$", "USD", "$"},
		{"CHF", "CHF", "CHF"},
	}

	for _, tt := range tests {
		suite.Require().Nil(suite.service.UpdateCurrency(suite.ctx, tt.raw))

		settings, err := suite.service.Settings(suite.ctx)
		suite.Require().Nil(err)
		suite.Assert().Equal(tt.iso, settings.Currency)
		suite.Assert().Equal(tt.symbol, settings.CurrencySymbol)
	}
}

func (suite *TestSuiteStandard) TestUpdateCurrencyInvalid() {
	err := suite.service.UpdateCurrency(suite.ctx, "XYZ")
	suite.Assert().ErrorIs(err, budget.ErrInvalidCurrency)

	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Equal("EUR", settings.Currency)
}

func (suite *TestSuiteStandard) TestClearBudgets() {
	suite.activate()
	suite.setClock(2024, 3, 11, 9)

	_, err := suite.service.WeeklyView(suite.ctx, suite.now)
	suite.Require().Nil(err)
	suite.Require().Equal(int64(1), suite.transferCount())

	suite.Require().Nil(suite.service.ClearBudgets(suite.ctx))

	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.assertDecimal("0", settings.MonthlyBudget)
	suite.Require().NotNil(settings.ActivatedAt, "The activation date is kept")
	suite.Assert().Equal(int64(0), suite.transferCount())

	_, ok, err := suite.service.LastTransferDate(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().False(ok)
}

func (suite *TestSuiteStandard) TestDatabaseErrors() {
	suite.CloseDB()

	_, err := suite.service.Settings(suite.ctx)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.service.AddExpense(suite.ctx, "1", "")
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = suite.service.UpdateMonthlyBudget(suite.ctx, "100")
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestInitWithClosedDatabase() {
	suite.CloseDB()

	service := budget.NewService(models.NewStore(models.DB))
	suite.Assert().NotPanics(func() { service.Init(suite.ctx) })

	_, err := service.WeeklyView(suite.ctx, suite.now)
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestUpdateCycle() {
	suite.Require().Nil(suite.service.UpdateCycle(suite.ctx, "1", "31"))

	// 27 with the stored end day 31 would be rejected on its own
	suite.Require().Nil(suite.service.UpdateCycle(suite.ctx, "27", "26"))

	settings, err := suite.service.Settings(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Equal(27, settings.StartDay)
	suite.Assert().Equal(26, settings.EndDay)

	err = suite.service.UpdateCycle(suite.ctx, "10", "12")
	suite.Assert().ErrorIs(err, budget.ErrInvalidCycle)
}
