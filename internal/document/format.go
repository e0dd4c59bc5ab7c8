// Package document renders leases and payments into printable text
// documents: the residential lease contract and the rent receipt. Rendering
// never fails on missing data; absent fields fall back to fill-in
// placeholders so the document stays usable.
package document

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder fallbacks mirror the fill-in-by-hand convention of the
// printed forms.
const (
	pendingField = "[CAMPO PENDENTE]"
	blankDate    = "___/___/_____"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Money formats a value as Brazilian currency: "R$ 1.234,56".
func Money(v float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(v, number.Scale(2)))
}

// Decimal formats a plain pt-BR decimal with two places: "1.234,56".
func Decimal(v float64) string {
	return ptBR.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}

// Date formats DD/MM/YYYY; the zero time renders as a fill-in blank.
func Date(t time.Time) string {
	if t.IsZero() {
		return blankDate
	}
	return t.Format("02/01/2006")
}

// Fallback substitutes the pending-field placeholder for empty strings.
func Fallback(s string) string {
	if s == "" {
		return pendingField
	}
	return s
}

// FallbackOr substitutes a custom placeholder for empty strings.
func FallbackOr(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
