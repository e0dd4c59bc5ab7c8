// Package domain holds the entities served by the Rentify backend and the
// projections this BFF derives from them. All entities are owned by the
// backend; the structs here are transient in-memory snapshots.
package domain

import "time"

// LeaseStatus is the lifecycle state of a lease.
type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "ACTIVE"
	LeaseTerminated LeaseStatus = "TERMINATED"
)

// GuaranteeType is the risk-mitigation mechanism backing a lease.
type GuaranteeType string

const (
	GuaranteeGuarantor          GuaranteeType = "GUARANTOR"
	GuaranteeSecurityDeposit    GuaranteeType = "SECURITY_DEPOSIT"
	GuaranteeLeaseInsurance     GuaranteeType = "LEASE_INSURANCE"
	GuaranteeCapitalizationBond GuaranteeType = "CAPITALIZATION_BOND"
	GuaranteeNone               GuaranteeType = "NONE"
)

// Lease links one property, one tenant and one landlord profile for a
// bounded period.
type Lease struct {
	ID                int64         `json:"id"`
	Status            LeaseStatus   `json:"status"`
	Property          *Property     `json:"property,omitempty"`
	Tenant            *Tenant       `json:"tenant,omitempty"`
	LandlordProfileID int64         `json:"landlordProfileId,omitempty"`
	LandlordName      string        `json:"landlordName,omitempty"`
	PaymentDueDay     int           `json:"paymentDueDay"`
	StartDate         time.Time     `json:"startDate"`
	EndDate           time.Time     `json:"endDate"`
	BaseRentValue     float64       `json:"baseRentValue"`
	SecurityDeposit   float64       `json:"securityDepositValue"`
	PaintingFeeValue  float64       `json:"paintingFeeValue"`
	GuaranteeType     GuaranteeType `json:"guaranteeType,omitempty"`

	// Pre-written extenso strings from the backend, used on receipts when
	// the paid amount matches the base rent.
	RentValueInWords   string `json:"rentValueInWords,omitempty"`
	DepositInWords     string `json:"depositValueInWords,omitempty"`
	PaintingFeeInWords string `json:"paintingFeeInWords,omitempty"`

	// Termination data, present only for TERMINATED leases.
	MoveOutDate      *time.Time `json:"moveOutDate,omitempty"`
	MoveOutCondition string     `json:"moveOutCondition,omitempty"`
	MoveOutReason    string     `json:"moveOutReason,omitempty"`
}

// TenantName returns the tenant's full name or a placeholder.
func (l *Lease) TenantName() string {
	if l.Tenant != nil && l.Tenant.FullName != "" {
		return l.Tenant.FullName
	}
	return "Desconhecido"
}

// PropertyAddress returns the property address or a placeholder.
func (l *Lease) PropertyAddress() string {
	if l.Property != nil && l.Property.Address != "" {
		return l.Property.Address
	}
	return "Imóvel sem endereço"
}

// LeaseFilter narrows lease list fetches; zero values mean no filter.
type LeaseFilter struct {
	Status            LeaseStatus
	LandlordProfileID int64
	TenantID          int64
}

// LeaseGuarantor is the join between a lease and a guarantor.
type LeaseGuarantor struct {
	ID             int64         `json:"id"`
	LeaseID        int64         `json:"leaseId"`
	GuarantorID    int64         `json:"guarantorId"`
	GuarantorName  string        `json:"guarantorName,omitempty"`
	SignatureDate  *time.Time    `json:"signatureDate,omitempty"`
	GuaranteeType  GuaranteeType `json:"guaranteeType,omitempty"`
	GuaranteeValue float64       `json:"guaranteeValue,omitempty"`
}

// TerminateLeaseRequest carries the move-out data for POST /leases/{id}/terminate.
type TerminateLeaseRequest struct {
	MoveOutDate      string `json:"moveOutDate"`
	MoveOutCondition string `json:"moveOutCondition"`
	MoveOutReason    string `json:"moveOutReason"`
}
