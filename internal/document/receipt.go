package document

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/derive"
	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/finance"
	"github.com/google/uuid"
)

type receiptLine struct {
	Label string
	Value string
}

type receiptData struct {
	Parcela       string
	Locador       string
	CPFLocador    string
	Locatario     string
	CPFLocatario  string
	Endereco      string
	PeriodoInicio string
	PeriodoFim    string
	Linhas        []receiptLine
	Total         string
	Extenso       string
	DataPagamento string
	Metodo        string
	Cidade        string
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`RECIBO DE ALUGUEL - PARCELA {{.Parcela}}

Recebi de {{.Locatario}}, CPF {{.CPFLocatario}}, a importância de {{.Total}}
{{.Extenso}}, referente ao aluguel do imóvel situado em {{.Endereco}},
período de {{.PeriodoInicio}} a {{.PeriodoFim}}.

DISCRIMINAÇÃO:
{{range .Linhas}}  {{.Label}}: {{.Value}}
{{end}}  TOTAL PAGO: {{.Total}}

Forma de pagamento: {{.Metodo}}
Data do pagamento: {{.DataPagamento}}

Para clareza, firmo o presente recibo dando plena e total quitação do
período acima referido.

{{.Cidade}}, {{.DataPagamento}}.

_________________________________________
{{.Locador}}
CPF: {{.CPFLocador}}
`))

// RenderReceipt produces the rent receipt for one settled payment. The billing
// period runs from the due day of the prior month to the due day of the
// reference month; due days past a month's length clamp to its last day.
func RenderReceipt(payment *domain.Payment, lease *domain.Lease, landlord *domain.LandlordProfile) (*Document, error) {
	if payment == nil {
		return nil, &domain.ErrNotPrintable{PaymentID: 0}
	}
	inst := finance.InstallmentFor(lease, payment)
	start, end := receiptPeriod(payment, lease.PaymentDueDay)

	data := receiptData{
		Parcela:       inst.String(),
		Locador:       FallbackOr(lease.LandlordName, "[NOME DO LOCADOR]"),
		CPFLocador:    "[CPF DO LOCADOR]",
		Locatario:     lease.TenantName(),
		CPFLocatario:  pendingField,
		Endereco:      lease.PropertyAddress(),
		PeriodoInicio: Date(start),
		PeriodoFim:    Date(end),
		Linhas:        receiptLines(payment, lease),
		Total:         Money(payment.AmountPaid),
		Extenso:       amountInWords(payment, lease),
		DataPagamento: Date(payment.PaymentDate),
		Metodo:        payment.Method.Label(),
		Cidade:        "[CIDADE]",
	}
	if landlord != nil {
		data.Locador = FallbackOr(landlord.FullName, data.Locador)
		data.CPFLocador = FallbackOr(landlord.CPFCNPJ, data.CPFLocador)
	}
	if lease.Tenant != nil && lease.Tenant.CPF != "" {
		data.CPFLocatario = lease.Tenant.CPF
	}
	if lease.Property != nil && lease.Property.CityName != "" {
		data.Cidade = lease.Property.CityName
	}

	var buf strings.Builder
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return &Document{
		ID:    uuid.New().String(),
		Title: fmt.Sprintf("Recibo de Aluguel - Parcela %s", inst.String()),
		Body:  buf.String(),
	}, nil
}

// receiptPeriod maps a reference period to the covered date span: due day of
// the month before the reference month through due day of the reference month.
func receiptPeriod(p *domain.Payment, dueDay int) (start, end time.Time) {
	month, year := p.ReferenceMonth, p.ReferenceYear
	prevMonth, prevYear := month-1, year
	if prevMonth < 1 {
		prevMonth, prevYear = 12, year-1
	}
	return derive.DueDate(prevYear, prevMonth, dueDay), derive.DueDate(year, month, dueDay)
}

func receiptLines(p *domain.Payment, lease *domain.Lease) []receiptLine {
	lines := []receiptLine{
		{Label: "Aluguel", Value: Money(lease.BaseRentValue)},
	}
	if lease.Property != nil {
		if lease.Property.CondoFee > 0 {
			lines = append(lines, receiptLine{Label: "Rateio de despesas (condomínio)", Value: Money(lease.Property.CondoFee)})
		}
		if tax := finance.MonthlyTax(lease.Property.PropertyTaxValue); tax > 0 {
			lines = append(lines, receiptLine{Label: "Imposto (IPTU mensal)", Value: Money(tax)})
		}
	}
	if p.LateFees > 0 {
		lines = append(lines, receiptLine{Label: "Multa e juros por atraso", Value: Money(p.LateFees)})
	}
	return lines
}

// amountInWords prefers the backend's pre-written extenso when the paid amount
// matches the base rent exactly; any other amount falls back to the numeric
// parenthetical, since no extenso exists for it.
func amountInWords(p *domain.Payment, lease *domain.Lease) string {
	if p.AmountPaid == lease.BaseRentValue && lease.RentValueInWords != "" {
		return "(" + lease.RentValueInWords + ")"
	}
	return fmt.Sprintf("(Valor numérico: %s reais)", Decimal(p.AmountPaid))
}
