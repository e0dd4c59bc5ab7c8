package domain

// LandlordProfile is an identity a lease attributes as the contracting party.
// More than one profile may carry IsDefault=true upstream; consumers treat
// the first default encountered as the effective one.
type LandlordProfile struct {
	ID            int64         `json:"id"`
	ProfileAlias  string        `json:"profileAlias"`
	IsDefault     bool          `json:"isDefault"`
	FullName      string        `json:"fullName"`
	CPFCNPJ       string        `json:"cpfCnpj,omitempty"`
	Nationality   string        `json:"nationality,omitempty"`
	MaritalStatus MaritalStatus `json:"maritalStatus,omitempty"`
	Profession    string        `json:"profession,omitempty"`
	RG            string        `json:"rg,omitempty"`
	Address       string        `json:"address,omitempty"`
	CityName      string        `json:"cityName,omitempty"`
	StateCode     string        `json:"stateCode,omitempty"`

	// Bank / pix details for receipts.
	BankName    string `json:"bankName,omitempty"`
	BankAgency  string `json:"bankAgency,omitempty"`
	BankAccount string `json:"bankAccount,omitempty"`
	PixKey      string `json:"pixKey,omitempty"`
}

// State is a federative unit used by location filters.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// City belongs to a state.
type City struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StateCode string `json:"stateCode"`
}
