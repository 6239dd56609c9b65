// Package domain defines the core domain models for the platform service.
package domain

// Item is one entry in the demo data catalog.
type Item struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// SampleItems returns the fixed demo catalog.
// A fresh slice is returned on every call so callers cannot mutate
// the catalog seen by others.
func SampleItems() []Item {
	return []Item{
		{ID: 1, Name: "Kubernetes", Type: "Container Orchestration", Status: "active"},
		{ID: 2, Name: "Cilium", Type: "CNI", Status: "active"},
		{ID: 3, Name: "ArgoCD", Type: "GitOps", Status: "active"},
		{ID: 4, Name: "Prometheus", Type: "Monitoring", Status: "active"},
		{ID: 5, Name: "Grafana", Type: "Visualization", Status: "active"},
	}
}
