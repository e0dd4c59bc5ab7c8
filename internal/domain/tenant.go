package domain

// MaritalStatus of a tenant or landlord, as stored by the backend.
type MaritalStatus string

const (
	MaritalSingle      MaritalStatus = "SINGLE"
	MaritalMarried     MaritalStatus = "MARRIED"
	MaritalDivorced    MaritalStatus = "DIVORCED"
	MaritalWidowed     MaritalStatus = "WIDOWED"
	MaritalStableUnion MaritalStatus = "STABLE_UNION"
)

// Tenant is a rental customer.
type Tenant struct {
	ID            int64         `json:"id"`
	FullName      string        `json:"fullName"`
	CPF           string        `json:"cpf,omitempty"`
	RG            string        `json:"rg,omitempty"`
	Email         string        `json:"email,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	CityName      string        `json:"cityName,omitempty"`
	StateCode     string        `json:"stateCode,omitempty"`
	MaritalStatus MaritalStatus `json:"maritalStatus,omitempty"`
	Nationality   string        `json:"nationality,omitempty"`
	Profession    string        `json:"profession,omitempty"`
}

// TenantRow is a tenant projected for the list view, with the derived
// active flag from the active-lease index.
type TenantRow struct {
	Tenant
	IsActive bool `json:"isActive"`
}

// Guarantor is a person backing one or more leases.
type Guarantor struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	CPF       string `json:"cpf,omitempty"`
	RG        string `json:"rg,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CityName  string `json:"cityName,omitempty"`
	StateCode string `json:"stateCode,omitempty"`

	// Links populated by GET /guarantors/details.
	Leases []LeaseGuarantor `json:"leases,omitempty"`
}
