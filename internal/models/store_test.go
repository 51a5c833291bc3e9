package models_test

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/weekbudget/backend/internal/models"
	"github.com/weekbudget/backend/internal/types"
)

func (suite *TestSuiteStandard) TestSettingFallback() {
	value, err := suite.store.Setting(suite.ctx, "does-not-exist", "fallback")
	suite.Require().Nil(err)
	suite.Assert().Equal("fallback", value)
}

func (suite *TestSuiteStandard) TestSettingEmptyKey() {
	suite.Require().Nil(suite.store.EnsureDefaults(suite.ctx))

	value, err := suite.store.Setting(suite.ctx, "", "fallback")
	suite.Require().Nil(err)
	suite.Assert().Equal("fallback", value, "An empty key must not match any stored setting")
}

func (suite *TestSuiteStandard) TestSetSetting() {
	value := "12"
	suite.Require().Nil(suite.store.SetSetting(suite.ctx, models.SettingStartDay, &value))

	stored, err := suite.store.Setting(suite.ctx, models.SettingStartDay, "27")
	suite.Require().Nil(err)
	suite.Assert().Equal("12", stored)

	// Upsert overwrites
	value = "14"
	suite.Require().Nil(suite.store.SetSetting(suite.ctx, models.SettingStartDay, &value))
	stored, _ = suite.store.Setting(suite.ctx, models.SettingStartDay, "27")
	suite.Assert().Equal("14", stored)

	// nil clears
	suite.Require().Nil(suite.store.SetSetting(suite.ctx, models.SettingStartDay, nil))
	stored, _ = suite.store.Setting(suite.ctx, models.SettingStartDay, "27")
	suite.Assert().Equal("27", stored)
}

func (suite *TestSuiteStandard) TestEnsureDefaultsKeepsValues() {
	budget := "500"
	suite.Require().Nil(suite.store.SetSetting(suite.ctx, models.SettingMonthlyBudget, &budget))

	suite.Require().Nil(suite.store.EnsureDefaults(suite.ctx))
	suite.Require().Nil(suite.store.EnsureDefaults(suite.ctx))

	tests := []struct {
		key  string
		want string
	}{
		{models.SettingStartDay, "27"},
		{models.SettingEndDay, "26"},
		{models.SettingMonthlyBudget, "500"},
		{models.SettingCurrency, "EUR"},
		{models.SettingActivatedAt, "absent"},
	}

	for _, tt := range tests {
		value, err := suite.store.Setting(suite.ctx, tt.key, "absent")
		suite.Require().Nil(err)
		suite.Assert().Equal(tt.want, value, tt.key)
	}

	var count int64
	models.DB.Model(&models.Setting{}).Count(&count)
	suite.Assert().Equal(int64(5), count)
}

func (suite *TestSuiteStandard) TestSettingDBError() {
	suite.CloseDB()

	_, err := suite.store.Setting(suite.ctx, models.SettingStartDay, "27")
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestExpenseAmountIsNegative() {
	expense := suite.createTestExpense(models.Expense{
		Date:        types.NewDate(2024, 3, 12),
		Amount:      decimal.NewFromFloat(12.5),
		Description: "  Coffee ",
	})

	suite.Assert().NotEqual(uuid.Nil, expense.ID)

	expenses, err := suite.store.Expenses(suite.ctx, types.NewDate(2024, 3, 11), types.NewDate(2024, 3, 17))
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)

	suite.Assert().True(decimal.NewFromFloat(-12.5).Equal(expenses[0].Amount), "Amount is %s", expenses[0].Amount)
	suite.Assert().Equal("Coffee", expenses[0].Description)
	suite.Assert().Equal(types.NewDate(2024, 3, 12), expenses[0].Date)
}

func (suite *TestSuiteStandard) TestExpensesRange() {
	for _, d := range []types.Date{
		types.NewDate(2024, 3, 10),
		types.NewDate(2024, 3, 11),
		types.NewDate(2024, 3, 14),
		types.NewDate(2024, 3, 17),
		types.NewDate(2024, 3, 18),
	} {
		suite.createTestExpense(models.Expense{Date: d, Amount: decimal.NewFromFloat(-1.1)})
	}

	expenses, err := suite.store.Expenses(suite.ctx, types.NewDate(2024, 3, 11), types.NewDate(2024, 3, 17))
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 3)

	// Newest first
	suite.Assert().Equal(types.NewDate(2024, 3, 17), expenses[0].Date)
	suite.Assert().Equal(types.NewDate(2024, 3, 11), expenses[2].Date)

	sum, err := suite.store.SumExpenses(suite.ctx, types.NewDate(2024, 3, 11), types.NewDate(2024, 3, 17))
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(-3.3).Equal(sum), "Sum is %s", sum)
}

func (suite *TestSuiteStandard) TestSumExpensesEmpty() {
	sum, err := suite.store.SumExpenses(suite.ctx, types.NewDate(2024, 3, 11), types.NewDate(2024, 3, 17))
	suite.Require().Nil(err)
	suite.Assert().True(sum.IsZero())
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	keep := suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 12), Amount: decimal.NewFromInt(3)})
	remove := suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 12), Amount: decimal.NewFromInt(4)})

	suite.Require().Nil(suite.store.DeleteExpense(suite.ctx, remove.ID))

	// Unknown IDs are no error
	suite.Require().Nil(suite.store.DeleteExpense(suite.ctx, uuid.New()))

	expenses, err := suite.store.Expenses(suite.ctx, types.NewDate(2024, 3, 12), types.NewDate(2024, 3, 12))
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal(keep.ID, expenses[0].ID)

	suite.Require().Nil(suite.store.DeleteExpenses(suite.ctx))
	expenses, _ = suite.store.Expenses(suite.ctx, types.NewDate(2024, 3, 12), types.NewDate(2024, 3, 12))
	suite.Assert().Len(expenses, 0)
}

func (suite *TestSuiteStandard) TestMarkTransferredOnce() {
	week := types.NewDate(2024, 3, 11)

	done, err := suite.store.HasTransfer(suite.ctx, week)
	suite.Require().Nil(err)
	suite.Assert().False(done)

	inserted, err := suite.store.MarkTransferred(suite.ctx, week)
	suite.Require().Nil(err)
	suite.Assert().True(inserted)

	inserted, err = suite.store.MarkTransferred(suite.ctx, week)
	suite.Require().Nil(err)
	suite.Assert().False(inserted, "Second insert for the same week must be ignored")

	done, err = suite.store.HasTransfer(suite.ctx, week)
	suite.Require().Nil(err)
	suite.Assert().True(done)

	var count int64
	models.DB.Model(&models.TransferRecord{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestMarkTransferredConcurrent() {
	week := types.NewDate(2024, 3, 11)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.store.MarkTransferred(suite.ctx, week)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.Nil(suite.T(), err)
	}

	var count int64
	models.DB.Model(&models.TransferRecord{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestLastTransfer() {
	_, ok, err := suite.store.LastTransfer(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().False(ok)

	for _, week := range []types.Date{types.NewDate(2024, 3, 4), types.NewDate(2024, 3, 18), types.NewDate(2024, 3, 11)} {
		_, err := suite.store.MarkTransferred(suite.ctx, week)
		suite.Require().Nil(err)
	}

	last, ok, err := suite.store.LastTransfer(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().True(ok)
	suite.Assert().Equal(types.NewDate(2024, 3, 18), last)
}

func (suite *TestSuiteStandard) TestEnsureTransferLog() {
	suite.Require().Nil(models.DB.Migrator().DropTable(&models.TransferRecord{}))

	suite.Require().Nil(suite.store.EnsureTransferLog(suite.ctx))
	suite.Require().Nil(suite.store.EnsureTransferLog(suite.ctx))

	inserted, err := suite.store.MarkTransferred(suite.ctx, types.NewDate(2024, 3, 11))
	suite.Require().Nil(err)
	suite.Assert().True(inserted)
}

func (suite *TestSuiteStandard) TestResetBudgets() {
	budget := "1200"
	activated := "2024-03-01"
	suite.Require().Nil(suite.store.SetSetting(suite.ctx, models.SettingMonthlyBudget, &budget))
	suite.Require().Nil(suite.store.SetSetting(suite.ctx, models.SettingActivatedAt, &activated))
	_, err := suite.store.MarkTransferred(suite.ctx, types.NewDate(2024, 3, 11))
	suite.Require().Nil(err)

	suite.Require().Nil(suite.store.ResetBudgets(suite.ctx))

	value, _ := suite.store.Setting(suite.ctx, models.SettingMonthlyBudget, "")
	suite.Assert().Equal("0", value)

	value, _ = suite.store.Setting(suite.ctx, models.SettingActivatedAt, "")
	suite.Assert().Equal("2024-03-01", value, "The activation date must be kept")

	_, ok, err := suite.store.LastTransfer(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().False(ok)
}
