package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/derive"
	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/finance"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/listview"
	"github.com/Matheus-Mantovani/Rentify/internal/port"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Landlords serves the landlord detail screen: KPI header, filtered contract
// and payment lists and the annual income chart, all for one profile.
type Landlords struct {
	landlords port.LandlordFetcher
	leases    port.LeaseFetcher
	payments  port.PaymentFetcher
	reports   port.ReportsFetcher
	metrics   *observability.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewLandlords creates the landlord detail service.
func NewLandlords(landlords port.LandlordFetcher, leases port.LeaseFetcher, payments port.PaymentFetcher, reports port.ReportsFetcher, metrics *observability.Metrics, logger *zap.Logger) *Landlords {
	return &Landlords{
		landlords: landlords,
		leases:    leases,
		payments:  payments,
		reports:   reports,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the reference-date source. Tests pin it.
func (s *Landlords) WithClock(now func() time.Time) *Landlords {
	s.now = now
	return s
}

// LandlordQuery carries the detail screen's independent filter states.
type LandlordQuery struct {
	ContractSearch string
	ContractStatus string
	ExpiringOnly   bool
	ContractSort   listview.SortState

	PaymentSearch string
	Method        string
	From          time.Time
	To            time.Time
	PaymentSort   listview.SortState

	Year int
}

// LandlordPaymentRow is one payment of the profile's history joined with its
// lease for display.
type LandlordPaymentRow struct {
	domain.Payment
	TenantDisplay   string `json:"tenantDisplay"`
	PropertyDisplay string `json:"propertyDisplay"`
}

// LandlordView is the full detail projection.
type LandlordView struct {
	Profile      *domain.LandlordProfile    `json:"profile"`
	KPI          finance.LandlordKPI        `json:"kpi"`
	Contracts    []LeaseRow                 `json:"contracts"`
	Payments     []LandlordPaymentRow       `json:"payments"`
	Totals       finance.PaymentTotals      `json:"paymentTotals"`
	AnnualIncome *domain.AnnualIncomeReport `json:"annualIncome"`
}

var landlordContractColumns = map[string]listview.Comparator[LeaseRow]{
	"tenant": listview.ByString(func(r LeaseRow) string { return r.TenantDisplay }),
	"rent":   listview.ByNumber(func(r LeaseRow) float64 { return r.BaseRentValue }),
	"end":    listview.ByTime(func(r LeaseRow) time.Time { return r.EndDate }),
}

var landlordPaymentColumns = map[string]listview.Comparator[LandlordPaymentRow]{
	"tenant": listview.ByString(func(r LandlordPaymentRow) string { return r.TenantDisplay }),
	"amount": listview.ByNumber(func(r LandlordPaymentRow) float64 { return r.AmountPaid }),
	"date":   listview.ByTime(func(r LandlordPaymentRow) time.Time { return r.PaymentDate }),
}

// Details fans out the profile, its leases, its payments and the annual
// income report in parallel, then applies the two independent filter states.
func (s *Landlords) Details(ctx context.Context, token string, id int64, q LandlordQuery) (*LandlordView, error) {
	ctx, span := tracer.Start(ctx, "Landlords.Details")
	defer span.End()
	span.SetAttributes(attribute.Int64("landlord.id", id))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("landlord_details", time.Since(start))
	}()

	year := q.Year
	if year == 0 {
		year = s.now().Year()
	}

	var (
		profile  *domain.LandlordProfile
		leases   []domain.Lease
		payments []domain.Payment
		income   *domain.AnnualIncomeReport
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.landlords.GetLandlordProfile(gCtx, token, id)
		return err
	})
	g.Go(func() error {
		var err error
		leases, err = s.leases.ListLeases(gCtx, token, domain.LeaseFilter{LandlordProfileID: id})
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.payments.ListPayments(gCtx, token, domain.PaymentFilter{LandlordProfileID: id})
		return err
	})
	g.Go(func() error {
		report, err := s.reports.GetAnnualIncome(gCtx, token, id, year)
		if err != nil {
			// The chart is secondary; the screen still renders without it.
			s.logger.Warn("annual income report unavailable",
				zap.Int64("landlord_id", id),
				zap.Error(err),
			)
			return nil
		}
		income = report
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if income != nil {
		finance.FillAnnualIncome(income)
	}

	leaseByID := make(map[int64]*domain.Lease, len(leases))
	for i := range leases {
		leaseByID[leases[i].ID] = &leases[i]
	}

	today := s.now()
	contracts := make([]LeaseRow, len(leases))
	for i, l := range leases {
		contracts[i] = LeaseRow{
			Lease:           l,
			TenantDisplay:   l.TenantName(),
			PropertyDisplay: l.PropertyAddress(),
			ExpiringSoon:    derive.LeaseExpiringSoon(l.EndDate, l.Status, today, derive.HorizonList),
		}
	}
	contracts = listview.Filter(contracts,
		listview.Search(q.ContractSearch, func(r LeaseRow) []string {
			return []string{r.TenantDisplay, r.PropertyDisplay}
		}),
		listview.Category(q.ContractStatus, func(r LeaseRow) string { return string(r.Status) }),
		listview.Where(func(r LeaseRow) bool { return !q.ExpiringOnly || r.ExpiringSoon }),
	)
	contracts = listview.SortBy(contracts, landlordContractColumns, q.ContractSort)

	history := make([]LandlordPaymentRow, len(payments))
	for i, p := range payments {
		row := LandlordPaymentRow{Payment: p, TenantDisplay: "Desconhecido", PropertyDisplay: "Imóvel sem endereço"}
		if l, ok := leaseByID[p.LeaseID]; ok {
			row.TenantDisplay = l.TenantName()
			row.PropertyDisplay = l.PropertyAddress()
		}
		history[i] = row
	}
	history = listview.Filter(history,
		listview.Search(q.PaymentSearch, func(r LandlordPaymentRow) []string {
			return []string{r.TenantDisplay, r.PropertyDisplay, strconv.FormatInt(r.LeaseID, 10)}
		}),
		listview.Category(q.Method, func(r LandlordPaymentRow) string { return string(r.Method) }),
		listview.DateRange(q.From, q.To, func(r LandlordPaymentRow) time.Time { return r.PaymentDate }),
	)
	history = listview.SortBy(history, landlordPaymentColumns, q.PaymentSort)

	totals := make([]domain.Payment, len(history))
	for i, r := range history {
		totals[i] = r.Payment
	}

	return &LandlordView{
		Profile:      profile,
		KPI:          finance.SummarizeLeases(leases),
		Contracts:    contracts,
		Payments:     history,
		Totals:       finance.SumPayments(totals),
		AnnualIncome: income,
	}, nil
}

// DefaultProfile returns the profile used when documents don't name one:
// the first profile flagged as default, falling back to the first profile.
func (s *Landlords) DefaultProfile(ctx context.Context, token string) (*domain.LandlordProfile, error) {
	ctx, span := tracer.Start(ctx, "Landlords.DefaultProfile")
	defer span.End()

	profiles, err := s.landlords.ListLandlordProfiles(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, &domain.ErrNotFound{Resource: "landlord-profile", ID: "default"}
	}
	for i := range profiles {
		if profiles[i].IsDefault {
			return &profiles[i], nil
		}
	}
	return &profiles[0], nil
}
