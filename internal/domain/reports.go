package domain

import "time"

// DashboardSummary feeds the four KPI cards on the dashboard.
type DashboardSummary struct {
	TotalProperties        int64   `json:"totalProperties"`
	AvailableProperties    int64   `json:"availableProperties"`
	RentedProperties       int64   `json:"rentedProperties"`
	OccupancyRate          float64 `json:"occupancyRate"`
	MaintenanceProperties  int64   `json:"maintenanceProperties"`
	CurrentMonthRevenue    float64 `json:"currentMonthRevenue"`
	RevenueChangePct       float64 `json:"revenueChangePercentage,omitempty"`
	OccupancyChangePct     float64 `json:"occupancyRateChangePercentage,omitempty"`
	OutstandingMaintenance float64 `json:"outstandingMaintenanceCosts"`
}

// MonthlyFinancial is one (possibly sparse) month of the financials report.
type MonthlyFinancial struct {
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetIncome     float64 `json:"netIncome"`
}

// MonthBucket is one of the twelve zero-filled chart buckets.
type MonthBucket struct {
	Month    int     `json:"month"`
	Name     string  `json:"name"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// MonthlyIncome is one month of a landlord's annual income report.
type MonthlyIncome struct {
	Month       int     `json:"month"`
	MonthName   string  `json:"monthName"`
	TotalIncome float64 `json:"totalIncome"`
}

// AnnualIncomeReport aggregates a landlord profile's income for one year.
type AnnualIncomeReport struct {
	Year              int             `json:"year"`
	LandlordProfileID int64           `json:"landlordProfileId"`
	LandlordName      string          `json:"landlordName"`
	YearTotal         float64         `json:"yearTotal"`
	MonthlyData       []MonthlyIncome `json:"monthlyData"`
}

// ActivityType discriminates entries of the recent-activities feed.
type ActivityType string

const (
	ActivityPayment       ActivityType = "PAYMENT"
	ActivityMaintenance   ActivityType = "MAINTENANCE"
	ActivityExpiringLease ActivityType = "EXPIRING_LEASE"
)

// Activity is one entry of the dashboard's recent-activities feed.
type Activity struct {
	Type          ActivityType `json:"type"`
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle,omitempty"`
	Value         float64      `json:"value,omitempty"`
	Date          time.Time    `json:"date"`
	RelatedID     int64        `json:"relatedId,omitempty"`
	DaysRemaining *int64       `json:"daysRemaining,omitempty"`
}

// ExpiringLease is one entry of the expiring-leases report.
type ExpiringLease struct {
	LeaseID         int64     `json:"leaseId"`
	PropertyAddress string    `json:"propertyAddress"`
	TenantName      string    `json:"tenantName"`
	EndDate         time.Time `json:"endDate"`
	DaysRemaining   int64     `json:"daysRemaining"`
}

// LatePayment is one entry of the late-payments (defaulters) report.
type LatePayment struct {
	LeaseID         int64   `json:"leaseId"`
	PropertyAddress string  `json:"propertyAddress"`
	TenantName      string  `json:"tenantName"`
	PaymentDueDay   int     `json:"paymentDueDay"`
	ReferenceMonth  int     `json:"referenceMonth"`
	RentValue       float64 `json:"rentValue"`
	DaysLate        int64   `json:"daysLate"`
}
