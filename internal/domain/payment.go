package domain

import "time"

// PaymentMethod used to settle a rent period.
type PaymentMethod string

const (
	MethodPix        PaymentMethod = "PIX"
	MethodBankSlip   PaymentMethod = "BANK_SLIP"
	MethodWire       PaymentMethod = "WIRE_TRANSFER"
	MethodCash       PaymentMethod = "CASH"
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodOther      PaymentMethod = "OTHER"
)

// Payment settles one (leaseId, referenceMonth, referenceYear) rent period.
// The backend guarantees at most one payment per period; the board derivation
// relies on that.
type Payment struct {
	ID             int64         `json:"id"`
	LeaseID        int64         `json:"leaseId"`
	AmountPaid     float64       `json:"amountPaid"`
	PaymentDate    time.Time     `json:"paymentDate"`
	ReferenceMonth int           `json:"referenceMonth"`
	ReferenceYear  int           `json:"referenceYear"`
	LateFees       float64       `json:"lateFees,omitempty"`
	Method         PaymentMethod `json:"paymentMethod"`
	Notes          string        `json:"notes,omitempty"`
}

// PaymentFilter narrows payment list fetches; zero values mean no filter.
type PaymentFilter struct {
	LeaseID           int64
	TenantID          int64
	LandlordProfileID int64
}

// RowStatus is the derived settlement state of a lease-month.
type RowStatus string

const (
	RowPaid    RowStatus = "PAID"
	RowLate    RowStatus = "LATE"
	RowPending RowStatus = "PENDING"
)

// PaymentRow is one line of the monthly payment board: an active lease
// joined with its payment (if any) for the reference period.
type PaymentRow struct {
	Lease        *Lease    `json:"lease"`
	Payment      *Payment  `json:"payment,omitempty"`
	Status       RowStatus `json:"status"`
	DueDate      time.Time `json:"dueDate"`
	TenantName   string    `json:"tenantName"`
	PropertyName string    `json:"propertyName"`
	Amount       float64   `json:"amount"`
}

// CreatePaymentRequest is the body for POST /payments.
type CreatePaymentRequest struct {
	LeaseID        int64   `json:"leaseId"`
	AmountPaid     float64 `json:"amountPaid"`
	PaymentDate    string  `json:"paymentDate"`
	ReferenceMonth int     `json:"referenceMonth"`
	ReferenceYear  int     `json:"referenceYear"`
	LateFees       float64 `json:"lateFees,omitempty"`
	Method         string  `json:"paymentMethod"`
	Notes          string  `json:"notes,omitempty"`
}
