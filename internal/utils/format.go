package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with digit grouping and a currency token,
// e.g. "14,000 MGA".
func FormatAmount(amount int64, currency string) string {
	if currency == "" {
		return amountPrinter.Sprintf("%d", amount)
	}
	return amountPrinter.Sprintf("%d %s", amount, currency)
}

// Title turns a snake_case token such as "manual_close" into "Manual Close"
func Title(token string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(token, "_", " "))
}
