package document

import (
	"strings"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"
	"github.com/google/uuid"
)

const cutHere = "\n--------------------------- corte aqui ---------------------------\n"

// ReceiptInput pairs one payment with its lease and the landlord profile
// effective for that lease.
type ReceiptInput struct {
	Payment  *domain.Payment
	Lease    *domain.Lease
	Landlord *domain.LandlordProfile
}

// Batch is a print-ready document set rendered in one pass.
type Batch struct {
	ID        string     `json:"id"`
	Documents []Document `json:"documents"`
	Combined  string     `json:"combined"`
}

// RenderReceiptBatch renders up to MaxReceiptSelection receipts synchronously,
// in the order given, and joins them with a cut line so the whole batch prints
// as one job. Rendering is all-or-nothing: one bad input fails the batch
// before anything is returned.
func RenderReceiptBatch(inputs []ReceiptInput) (*Batch, error) {
	if len(inputs) == 0 {
		return nil, &domain.ErrValidation{Field: "payments", Message: "nenhum recibo selecionado"}
	}
	if len(inputs) > listview.MaxReceiptSelection {
		return nil, &domain.ErrSelectionLimit{Limit: listview.MaxReceiptSelection}
	}

	docs := make([]Document, 0, len(inputs))
	for _, in := range inputs {
		if in.Payment == nil || in.Lease == nil {
			return nil, &domain.ErrNotPrintable{PaymentID: paymentID(in.Payment)}
		}
		doc, err := RenderReceipt(in.Payment, in.Lease, in.Landlord)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}

	bodies := make([]string, len(docs))
	for i, d := range docs {
		bodies[i] = d.Body
	}
	return &Batch{
		ID:        uuid.New().String(),
		Documents: docs,
		Combined:  strings.Join(bodies, cutHere),
	}, nil
}

func paymentID(p *domain.Payment) int64 {
	if p == nil {
		return 0
	}
	return p.ID
}
