package rentify

import (
	"context"
	"net/http"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
)

type maintenanceRow struct {
	ID                 int64   `json:"id"`
	PropertyID         int64   `json:"propertyId"`
	PropertyAddress    string  `json:"propertyAddress"`
	ServiceDescription string  `json:"serviceDescription"`
	ServiceProvider    string  `json:"serviceProvider"`
	RequestDate        string  `json:"requestDate"`
	CompletionDate     string  `json:"completionDate"`
	TotalCost          float64 `json:"totalCost"`
	Status             string  `json:"maintenanceStatus"`
}

func (r maintenanceRow) toDomain() domain.MaintenanceJob {
	return domain.MaintenanceJob{
		ID:                 r.ID,
		PropertyID:         r.PropertyID,
		PropertyAddress:    r.PropertyAddress,
		ServiceDescription: r.ServiceDescription,
		ServiceProvider:    r.ServiceProvider,
		RequestDate:        parseDate(r.RequestDate),
		CompletionDate:     parseDatePtr(r.CompletionDate),
		TotalCost:          r.TotalCost,
		Status:             domain.MaintenanceStatus(r.Status),
	}
}

// ListMaintenanceJobs fetches all maintenance jobs.
func (c *Client) ListMaintenanceJobs(ctx context.Context, token string) ([]domain.MaintenanceJob, error) {
	ctx, span := tracer.Start(ctx, "Rentify.ListMaintenanceJobs")
	defer span.End()

	body, err := c.call(ctx, "maintenance", http.MethodGet, "/maintenance-jobs", token, nil)
	if err != nil {
		return nil, err
	}
	rows, err := decode[[]maintenanceRow](body)
	if err != nil {
		return nil, err
	}
	jobs := make([]domain.MaintenanceJob, len(rows))
	for i, r := range rows {
		jobs[i] = r.toDomain()
	}
	return jobs, nil
}
