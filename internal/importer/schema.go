package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for schedule import.
type ImportSchema struct {
	Plan        PlanImport         `json:"plan"`
	Stages      []StageImport      `json:"stages"`
	Elements    []ElementImport    `json:"elements"`
	Capacities  []CapacityImport   `json:"capacities,omitempty"`
	Completions []CompletionImport `json:"completions,omitempty"`
}

// PlanImport defines the plan-level fields in the import file.
type PlanImport struct {
	Name            string `json:"name"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	CapacityCeiling *int   `json:"capacity_ceiling,omitempty"`
}

// StageImport defines a container stage in the import file.
type StageImport struct {
	Ref         string   `json:"ref"`
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Color       string   `json:"color,omitempty"`
	Progress    *float64 `json:"progress,omitempty"`
	ElementRefs []string `json:"elements,omitempty"`
}

// ElementImport defines a leaf element in the import file.
type ElementImport struct {
	Ref      string   `json:"ref"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Status   string   `json:"status,omitempty"`
	Date     string   `json:"date"`
	EndDate  *string  `json:"end_date,omitempty"`
	Progress *float64 `json:"progress,omitempty"`
	Color    string   `json:"color,omitempty"`
}

// CapacityImport defines one day's workload figures.
type CapacityImport struct {
	Date        string   `json:"date"`
	Effective   *float64 `json:"effective,omitempty"`
	Busy        *float64 `json:"busy,omitempty"`
	Completed   *float64 `json:"completed,omitempty"`
	WeatherIcon string   `json:"weather_icon,omitempty"`
}

// CompletionImport marks an element completed on a given day.
type CompletionImport struct {
	ElementRef string `json:"element_ref"`
	Date       string `json:"date"`
}

// LoadImportSchema reads and parses a schedule import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
