package v1_test

import (
	"net/http"

	v1 "github.com/weekbudget/backend/internal/controllers/v1"
	"github.com/weekbudget/backend/test"
)

func (suite *TestSuiteStandard) TestSettingsGet() {
	r := suite.request(http.MethodGet, "http://example.com/v1/settings", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(27, response.Data.StartDay)
	suite.Assert().Equal(26, response.Data.EndDay)
	suite.Assert().Equal("EUR", response.Data.Currency)
	suite.Assert().Equal("€", response.Data.CurrencySymbol)
	suite.Assert().Nil(response.Data.ActivatedAt)
}

func (suite *TestSuiteStandard) TestSettingsUpdate() {
	r := suite.request(http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"monthlyBudget": "1200,50",
		"currency":      "£",
	}, english)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("1200.5", response.Data.MonthlyBudget.String())
	suite.Assert().Equal("GBP", response.Data.Currency)
	suite.Assert().Equal("£", response.Data.CurrencySymbol)
	suite.Require().NotNil(response.Data.ActivatedAt)
	suite.Assert().Equal("2024-03-06", response.Data.ActivatedAt.String())
	suite.Assert().Equal([]string{"Monthly budget saved.", "Currency saved."}, response.Messages)
}

func (suite *TestSuiteStandard) TestSettingsUpdateSingleDay() {
	r := suite.request(http.MethodPatch, "http://example.com/v1/settings", map[string]any{"startDay": "15"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(15, response.Data.StartDay)
	suite.Assert().Equal([]string{"Starttag gespeichert."}, response.Messages)

	r = suite.request(http.MethodPatch, "http://example.com/v1/settings", map[string]any{"endDay": 14})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(14, response.Data.EndDay)
	suite.Assert().Equal([]string{"Endtag gespeichert."}, response.Messages)
}

func (suite *TestSuiteStandard) TestSettingsUpdateInvalid() {
	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{"Short cycle", map[string]any{"startDay": "25"}, "Ungültiger Zeitraum: Zwischen Start- und Endtag müssen mindestens 7 Tage liegen."},
		{"Short cycle pair", map[string]any{"startDay": 3, "endDay": 5}, "Ungültiger Zeitraum: Zwischen Start- und Endtag müssen mindestens 7 Tage liegen."},
		{"Negative budget", map[string]any{"monthlyBudget": "-100"}, "Ungültiger Betrag."},
		{"Unknown currency", map[string]any{"currency": "XYZ"}, "Ungültige Währung."},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPatch, "http://example.com/v1/settings", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			var response v1.HTTPError
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Equal(tt.message, response.Error)
		})
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/settings", nil)
	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(27, response.Data.StartDay)
	suite.Assert().Equal(26, response.Data.EndDay)
	suite.Assert().Equal("0", response.Data.MonthlyBudget.String())
	suite.Assert().Equal("EUR", response.Data.Currency)
}

func (suite *TestSuiteStandard) TestSettingsOptions() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/settings", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	r := suite.request(http.MethodPatch, "http://example.com/v1/settings", map[string]any{"monthlyBudget": 500})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodDelete, "http://example.com/v1/budgets?confirm=no", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodDelete, "http://example.com/v1/budgets?confirm=yes-please-reset-budgets", nil, english)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var message v1.Message
	test.DecodeResponse(suite.T(), &r, &message)
	suite.Assert().Equal("Budgets reset.", message.Message)

	r = suite.request(http.MethodGet, "http://example.com/v1/settings", nil)
	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("0", response.Data.MonthlyBudget.String())
	suite.Assert().NotNil(response.Data.ActivatedAt, "The activation date is kept")
}
