package derive

import "github.com/Matheus-Mantovani/Rentify/internal/domain"

// ActiveLeaseIndex maps tenant and property IDs to their active lease. It is
// built once per data load instead of being recomputed on every filter pass.
type ActiveLeaseIndex struct {
	byTenant   map[int64]*domain.Lease
	byProperty map[int64]*domain.Lease
}

// BuildActiveLeaseIndex indexes the ACTIVE leases of a snapshot. Non-active
// leases are skipped; if the snapshot violates the one-active-lease-per-
// property invariant the last one scanned wins.
func BuildActiveLeaseIndex(leases []domain.Lease) *ActiveLeaseIndex {
	idx := &ActiveLeaseIndex{
		byTenant:   make(map[int64]*domain.Lease),
		byProperty: make(map[int64]*domain.Lease),
	}
	for i := range leases {
		l := &leases[i]
		if l.Status != domain.LeaseActive {
			continue
		}
		if l.Tenant != nil {
			idx.byTenant[l.Tenant.ID] = l
		}
		if l.Property != nil {
			idx.byProperty[l.Property.ID] = l
		}
	}
	return idx
}

// TenantActive reports whether any active lease references the tenant.
func (idx *ActiveLeaseIndex) TenantActive(tenantID int64) bool {
	_, ok := idx.byTenant[tenantID]
	return ok
}

// PropertyLease returns the active lease on a property, or nil.
func (idx *ActiveLeaseIndex) PropertyLease(propertyID int64) *domain.Lease {
	return idx.byProperty[propertyID]
}

// TenantLease returns the active lease of a tenant, or nil.
func (idx *ActiveLeaseIndex) TenantLease(tenantID int64) *domain.Lease {
	return idx.byTenant[tenantID]
}
