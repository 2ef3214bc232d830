package catalog

import (
	"mergington-activities/internal/models"
	"mergington-activities/pkg/registry"
)

// DefaultSeed returns the built-in nine-activity catalog. This is the
// reference dataset the API ships with; a seed file can replace it via
// catalog.seed_file in the configuration.
func DefaultSeed() models.Catalog {
	return models.Catalog{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball": {
			Description:     "Team sport and basketball skills training",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Tennis lessons and competitive matches",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"sarah@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Painting, drawing, and visual arts exploration",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"maya@mergington.edu", "lucas@mergington.edu"},
		},
		"Music Band": {
			Description:     "Learn instruments and perform in school concerts",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"james@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Mondays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"rachel@mergington.edu", "david@mergington.edu"},
		},
		"Science Club": {
			Description:     "Explore scientific experiments and research projects",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"aiden@mergington.edu"},
		},
	}
}

// SeedFromFile loads and validates a seed document and converts it into
// a catalog.
func SeedFromFile(path string) (models.Catalog, error) {
	seed, err := registry.LoadSeed(path)
	if err != nil {
		return nil, err
	}
	return FromSeed(seed), nil
}

// FromSeed converts a validated seed document into a catalog.
func FromSeed(seed *registry.ActivitySeed) models.Catalog {
	catalog := make(models.Catalog, len(seed.Activities))
	for _, spec := range seed.Activities {
		participants := make([]string, len(spec.Participants))
		copy(participants, spec.Participants)
		catalog[spec.Name] = &models.Activity{
			Description:     spec.Description,
			Schedule:        spec.Schedule,
			MaxParticipants: spec.MaxParticipants,
			Participants:    participants,
		}
	}
	return catalog
}
