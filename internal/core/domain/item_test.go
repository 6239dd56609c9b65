package domain

import (
	"encoding/json"
	"testing"
)

func TestSampleItems(t *testing.T) {
	items := SampleItems()

	if len(items) != 5 {
		t.Fatalf("SampleItems() returned %d items, want 5", len(items))
	}

	wantNames := []string{"Kubernetes", "Cilium", "ArgoCD", "Prometheus", "Grafana"}
	for i, item := range items {
		if item.ID != i+1 {
			t.Errorf("items[%d].ID = %d, want %d", i, item.ID, i+1)
		}
		if item.Name != wantNames[i] {
			t.Errorf("items[%d].Name = %q, want %q", i, item.Name, wantNames[i])
		}
		if item.Status != "active" {
			t.Errorf("items[%d].Status = %q, want %q", i, item.Status, "active")
		}
		if item.Type == "" {
			t.Errorf("items[%d].Type is empty", i)
		}
	}
}

func TestSampleItems_FreshCopy(t *testing.T) {
	first := SampleItems()
	first[0].Name = "mutated"
	first[2].Status = "inactive"

	second := SampleItems()
	if second[0].Name != "Kubernetes" {
		t.Errorf("catalog leaked mutation: Name = %q", second[0].Name)
	}
	if second[2].Status != "active" {
		t.Errorf("catalog leaked mutation: Status = %q", second[2].Status)
	}
}

func TestItem_JSONKeys(t *testing.T) {
	item := Item{ID: 1, Name: "Kubernetes", Type: "Container Orchestration", Status: "active"}

	raw, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{"id", "name", "type", "status"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("marshaled item missing key %q", key)
		}
	}
	if len(decoded) != 4 {
		t.Errorf("marshaled item has %d keys, want 4", len(decoded))
	}
}
