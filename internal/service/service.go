// Package service orchestrates the per-view operations: fetch entity
// snapshots from the backend, derive statuses, filter, sort and aggregate
// into display-ready projections.
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("service")

// scopeKey builds a cache key scoped to one authenticated session without
// storing the raw token in memory keys.
func scopeKey(resource, token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%s:%s", resource, hex.EncodeToString(sum[:8]))
}
