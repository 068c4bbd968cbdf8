package model

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadRecord reads an EvidenceRequest from a YAML file. Fields missing
// from the file keep their zero values; criteria without an ID get one
// assigned so later edits stay addressable.
func LoadRecord(path string) (EvidenceRequest, error) {
	var rec EvidenceRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("reading record %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("parsing record %s: %w", path, err)
	}

	for i := range rec.AcceptanceCriteria {
		if rec.AcceptanceCriteria[i].ID == "" {
			rec.AcceptanceCriteria[i].ID = uuid.NewString()
		}
	}
	return rec, nil
}

// SaveRecord writes the record as YAML to path.
func SaveRecord(path string, rec EvidenceRequest) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing record %s: %w", path, err)
	}
	return nil
}
