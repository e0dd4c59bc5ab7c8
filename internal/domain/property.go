package domain

import "time"

// PropertyStatus of a property.
type PropertyStatus string

const (
	PropertyAvailable        PropertyStatus = "AVAILABLE"
	PropertyRented           PropertyStatus = "RENTED"
	PropertyUnderMaintenance PropertyStatus = "UNDER_MAINTENANCE"
	PropertyInactive         PropertyStatus = "INACTIVE"
)

// Property is a rentable unit.
type Property struct {
	ID                 int64          `json:"id"`
	Address            string         `json:"address"`
	AddressComplement  string         `json:"addressComplement,omitempty"`
	Neighborhood       string         `json:"neighborhood,omitempty"`
	PostalCode         string         `json:"postalCode,omitempty"`
	CityName           string         `json:"cityName,omitempty"`
	StateCode          string         `json:"stateCode,omitempty"`
	Status             PropertyStatus `json:"status"`
	CurrentMarketValue float64        `json:"currentMarketValue,omitempty"`
	CondoFee           float64        `json:"condoFee,omitempty"`
	// PropertyTaxValue is the ANNUAL tax figure; receipts apportion it /12.
	PropertyTaxValue   float64 `json:"propertyTaxValue,omitempty"`
	RegistrationNumber string  `json:"registrationNumber,omitempty"`
	Notes              string  `json:"notes,omitempty"`
}

// MaintenanceStatus of a maintenance job.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "PENDING"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceCanceled   MaintenanceStatus = "CANCELED"
)

// MaintenanceJob is a service order against a property.
type MaintenanceJob struct {
	ID                 int64             `json:"id"`
	PropertyID         int64             `json:"propertyId"`
	PropertyAddress    string            `json:"propertyAddress,omitempty"`
	ServiceDescription string            `json:"serviceDescription"`
	ServiceProvider    string            `json:"serviceProvider,omitempty"`
	RequestDate        time.Time         `json:"requestDate"`
	CompletionDate     *time.Time        `json:"completionDate,omitempty"`
	TotalCost          float64           `json:"totalCost,omitempty"`
	Status             MaintenanceStatus `json:"maintenanceStatus"`
}
