package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	InvalidAmount        = "invalid_amount"
	InvalidCycle         = "invalid_cycle"
	InvalidCurrency      = "invalid_currency"
	InvalidDate          = "invalid_date"
	InvalidID            = "invalid_id"
	InvalidRequest       = "invalid_request"
	UnsupportedLanguage  = "unsupported_language"
	ConfirmationRequired = "confirmation_required"
	GeneralError         = "general_error"
	NotFound             = "not_found"
	StartDaySaved        = "start_day_saved"
	EndDaySaved          = "end_day_saved"
	BudgetSaved          = "budget_saved"
	CurrencySaved        = "currency_saved"
	ExpenseAdded         = "expense_added"
	ExpensesCleared      = "expenses_cleared"
	BudgetsCleared       = "budgets_cleared"
	LanguageSaved        = "language_saved"
)

var messages = []struct {
	key string
	de  string
	en  string
}{
	{InvalidAmount, "Ungültiger Betrag.", "Invalid amount."},
	{InvalidCycle, "Ungültiger Zeitraum: Zwischen Start- und Endtag müssen mindestens 7 Tage liegen.", "Invalid period: there must be at least 7 days between start and end day."},
	{InvalidCurrency, "Ungültige Währung.", "Invalid currency."},
	{InvalidDate, "Ungültiges Datum: %s", "Invalid date: %s"},
	{InvalidID, "Ungültige ID: %s", "Invalid ID: %s"},
	{InvalidRequest, "Ungültige Anfrage.", "Invalid request."},
	{UnsupportedLanguage, "Nicht unterstützte Sprache: %s", "Unsupported language: %s"},
	{ConfirmationRequired, "Bitte bestätige den Vorgang mit dem Parameter confirm=%s.", "Please confirm the operation with the parameter confirm=%s."},
	{GeneralError, "Auf dem Server ist ein Fehler aufgetreten.", "An error occurred on the server during your request."},
	{NotFound, "Nicht gefunden.", "Not found."},
	{StartDaySaved, "Starttag gespeichert.", "Start day saved."},
	{EndDaySaved, "Endtag gespeichert.", "End day saved."},
	{BudgetSaved, "Monatsbudget gespeichert.", "Monthly budget saved."},
	{CurrencySaved, "Währung gespeichert.", "Currency saved."},
	{ExpenseAdded, "Ausgabe hinzugefügt.", "Expense added."},
	{ExpensesCleared, "Alle Ausgaben gelöscht.", "All expenses deleted."},
	{BudgetsCleared, "Budgets zurückgesetzt.", "Budgets reset."},
	{LanguageSaved, "Sprache gespeichert.", "Language saved."},
}

func newCatalog(fallback language.Tag) (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(fallback))

	for _, m := range messages {
		if err := b.SetString(language.German, m.key, m.de); err != nil {
			return nil, err
		}

		if err := b.SetString(language.English, m.key, m.en); err != nil {
			return nil, err
		}
	}

	return b, nil
}
