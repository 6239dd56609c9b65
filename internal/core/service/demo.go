// Package service provides domain services for the platform service.
//
// Domain services contain pure business logic and orchestrate operations
// on domain models.
package service

import (
	"maps"
	"sync/atomic"
	"time"

	"github.com/jconover/kubernetes-platform/internal/core/domain"
)

// DemoService serves the demo data catalog, item creation, and
// simulated failures.
type DemoService struct {
	nextID atomic.Int64
}

// NewDemoService creates a new DemoService.
//
// The item ID sequence is seeded with the current Unix time, keeping
// the magnitude of wall-clock IDs while staying strictly monotonic
// within a process lifetime.
func NewDemoService() *DemoService {
	s := &DemoService{}
	s.nextID.Store(time.Now().Unix())
	return s
}

// Items returns the demo data catalog.
func (s *DemoService) Items() []domain.Item {
	return domain.SampleItems()
}

// CreateItem assigns an ID and creation timestamp to the submitted
// payload and returns the enriched copy. The input map is not mutated.
func (s *DemoService) CreateItem(payload map[string]any) map[string]any {
	item := make(map[string]any, len(payload)+2)
	maps.Copy(item, payload)

	item["id"] = s.nextID.Add(1)
	item["created_at"] = time.Now().UTC().Format(time.RFC3339)

	return item
}

// SimulateError returns the failure matching errorType: "404" signals
// a missing resource, "403" denied access, anything else the internal
// simulation.
func (s *DemoService) SimulateError(errorType string) error {
	switch errorType {
	case "404":
		return domain.ErrNotFound
	case "403":
		return domain.ErrForbidden
	default:
		return domain.ErrInternal
	}
}
