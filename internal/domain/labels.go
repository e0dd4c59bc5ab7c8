package domain

// Authoritative pt-BR label maps, one per enum. Every view reads these
// instead of keeping its own copy.

var rowStatusLabels = map[RowStatus]string{
	RowPaid:    "Pago",
	RowLate:    "Atrasado",
	RowPending: "Pendente",
}

var leaseStatusLabels = map[LeaseStatus]string{
	LeaseActive:     "Ativo",
	LeaseTerminated: "Encerrado",
}

var propertyStatusLabels = map[PropertyStatus]string{
	PropertyAvailable:        "Disponível",
	PropertyRented:           "Alugado",
	PropertyUnderMaintenance: "Em Manutenção",
	PropertyInactive:         "Inativo",
}

var maintenanceStatusLabels = map[MaintenanceStatus]string{
	MaintenancePending:    "Pendente",
	MaintenanceInProgress: "Em Andamento",
	MaintenanceCompleted:  "Concluída",
	MaintenanceCanceled:   "Cancelada",
}

var paymentMethodLabels = map[PaymentMethod]string{
	MethodPix:        "Pix",
	MethodBankSlip:   "Boleto",
	MethodWire:       "Transferência",
	MethodCash:       "Dinheiro",
	MethodCreditCard: "Cartão",
	MethodOther:      "Outros",
}

var maritalStatusLabels = map[MaritalStatus]string{
	MaritalSingle:      "Solteiro(a)",
	MaritalMarried:     "Casado(a)",
	MaritalDivorced:    "Divorciado(a)",
	MaritalWidowed:     "Viúvo(a)",
	MaritalStableUnion: "União Estável",
}

var guaranteeTypeLabels = map[GuaranteeType]string{
	GuaranteeGuarantor:          "Fiador",
	GuaranteeSecurityDeposit:    "Caução",
	GuaranteeLeaseInsurance:     "Seguro Fiança",
	GuaranteeCapitalizationBond: "Título de Capitalização",
	GuaranteeNone:               "Sem Garantia",
}

func (s RowStatus) Label() string         { return labelOr(rowStatusLabels[s], string(s)) }
func (s LeaseStatus) Label() string       { return labelOr(leaseStatusLabels[s], string(s)) }
func (s PropertyStatus) Label() string    { return labelOr(propertyStatusLabels[s], string(s)) }
func (s MaintenanceStatus) Label() string { return labelOr(maintenanceStatusLabels[s], string(s)) }
func (m PaymentMethod) Label() string     { return labelOr(paymentMethodLabels[m], string(m)) }
func (m MaritalStatus) Label() string     { return labelOr(maritalStatusLabels[m], string(m)) }
func (g GuaranteeType) Label() string     { return labelOr(guaranteeTypeLabels[g], string(g)) }

func labelOr(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}

// Fixed sort priorities for status columns. Lower sorts first under ASC.

var rowStatusPriority = map[RowStatus]int{
	RowLate:    0,
	RowPending: 1,
	RowPaid:    2,
}

var maintenanceStatusPriority = map[MaintenanceStatus]int{
	MaintenancePending:    1,
	MaintenanceInProgress: 2,
	MaintenanceCompleted:  3,
	MaintenanceCanceled:   4,
}

// Priority returns the board-status sort rank (LATE < PENDING < PAID).
func (s RowStatus) Priority() int {
	if p, ok := rowStatusPriority[s]; ok {
		return p
	}
	return 99
}

// Priority returns the maintenance-status sort rank.
func (s MaintenanceStatus) Priority() int {
	if p, ok := maintenanceStatusPriority[s]; ok {
		return p
	}
	return 99
}
