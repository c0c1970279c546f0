// internal/registry/seed.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"mergington-activities/internal/common/errors"
)

// SeedDocument is the on-disk seed format accepted by LoadSeedFile.
type SeedDocument struct {
	Version    string         `json:"version"`
	Activities []SeedActivity `json:"activities"`
}

// seedSchema validates seed documents before they reach the registry.
const seedSchema = `{
	"type": "object",
	"required": ["activities"],
	"properties": {
		"version": {"type": "string"},
		"activities": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["name", "description", "schedule", "max_participants", "participants"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"schedule": {"type": "string"},
					"max_participants": {"type": "integer", "minimum": 1},
					"participants": {
						"type": "array",
						"items": {"type": "string"}
					}
				}
			}
		}
	}
}`

// ValidateSeed checks raw seed JSON against the schema and returns the
// parsed document. Duplicate activity names are rejected here because the
// registry keys on them.
func ValidateSeed(data []byte) (*SeedDocument, error) {
	schemaLoader := gojsonschema.NewStringLoader(seedSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, errors.NewSeedInvalidError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, errors.NewSeedInvalidError(strings.Join(details, "; "))
	}

	var doc SeedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewSeedInvalidError(err.Error())
	}

	seen := make(map[string]bool, len(doc.Activities))
	for _, a := range doc.Activities {
		if seen[a.Name] {
			return nil, errors.NewSeedInvalidError(fmt.Sprintf("duplicate activity name: %s", a.Name))
		}
		seen[a.Name] = true
	}
	return &doc, nil
}

// LoadSeedFile reads and validates a seed document from disk.
func LoadSeedFile(path string) ([]SeedActivity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	doc, err := ValidateSeed(data)
	if err != nil {
		return nil, err
	}
	return doc.Activities, nil
}

// DefaultSeed returns the built-in data set the registry starts from.
func DefaultSeed() []SeedActivity {
	return []SeedActivity{
		{
			Name: "Chess Club",
			Activity: Activity{
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
		},
		{
			Name: "Basketball Team",
			Activity: Activity{
				Description:     "Join our competitive basketball team and participate in games and tournaments",
				Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
				MaxParticipants: 15,
				Participants:    []string{"james@mergington.edu"},
			},
		},
		{
			Name: "Tennis Club",
			Activity: Activity{
				Description:     "Learn tennis skills and compete in matches",
				Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
				MaxParticipants: 10,
				Participants:    []string{"sarah@mergington.edu"},
			},
		},
		{
			Name: "Art Club",
			Activity: Activity{
				Description:     "Explore painting, drawing, and other visual arts",
				Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 16,
				Participants:    []string{"grace@mergington.edu", "lucas@mergington.edu"},
			},
		},
		{
			Name: "Theater Club",
			Activity: Activity{
				Description:     "Perform in school plays and develop acting skills",
				Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"ashley@mergington.edu"},
			},
		},
		{
			Name: "Debate Team",
			Activity: Activity{
				Description:     "Develop critical thinking and public speaking through competitive debate",
				Schedule:        "Mondays and Fridays, 3:30 PM - 4:30 PM",
				MaxParticipants: 12,
				Participants:    []string{"david@mergington.edu", "isabella@mergington.edu"},
			},
		},
		{
			Name: "Science Club",
			Activity: Activity{
				Description:     "Conduct experiments and explore advanced scientific concepts",
				Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
				MaxParticipants: 18,
				Participants:    []string{"alex@mergington.edu"},
			},
		},
		{
			Name: "Programming Class",
			Activity: Activity{
				Description:     "Learn programming fundamentals and build software projects",
				Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
				MaxParticipants: 20,
				Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			},
		},
		{
			Name: "Gym Class",
			Activity: Activity{
				Description:     "Physical education and sports activities",
				Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
				MaxParticipants: 30,
				Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			},
		},
	}
}
