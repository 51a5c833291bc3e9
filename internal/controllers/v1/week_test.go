package v1_test

import (
	"net/http"
	"time"

	"github.com/weekbudget/backend/internal/budget"
	v1 "github.com/weekbudget/backend/internal/controllers/v1"
	"github.com/weekbudget/backend/test"
)

func (suite *TestSuiteStandard) TestWeek() {
	r := suite.request(http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"startDay":      1,
		"endDay":        31,
		"monthlyBudget": "310",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.createTestExpense("20", "groceries")

	r = suite.request(http.MethodGet, "http://example.com/v1/week", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var week v1.WeekResponse
	test.DecodeResponse(suite.T(), &r, &week)
	suite.Assert().Equal(budget.StateActivatedThisWeek, week.Data.State)
	suite.Assert().Equal("70", week.Data.Rates.WeekRate.String())
	suite.Assert().Equal("50", week.Data.Remaining.String())
	suite.Assert().False(week.Data.ShowTransfer)
	suite.Assert().Len(week.Data.Entries, 1)

	// Next Monday, last week's balance is carried over
	suite.now = time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		r = suite.request(http.MethodGet, "http://example.com/v1/week", nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		test.DecodeResponse(suite.T(), &r, &week)
		suite.Assert().Equal(budget.StateTransferred, week.Data.State)
		suite.Assert().Equal("50", week.Data.Carryover.String())
		suite.Assert().Equal("120", week.Data.Remaining.String())
		suite.Assert().Equal("2024-03-11", week.Data.LastTransferDate.String())
		suite.Assert().Len(week.Data.Entries, 0)
	}
}

func (suite *TestSuiteStandard) TestWeekDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, "http://example.com/v1/week", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Auf dem Server ist ein Fehler aufgetreten.", response.Error)
}
