package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name     string `json:"name" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Language string `json:"language" validate:"omitempty,oneof=en my"`
	Capacity int    `json:"capacity" validate:"min=0"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Date: "2026-10-19"})
	assert.EqualError(t, err, "name is required")

	err = Struct(sample{Name: "x", Date: "19.10.2026"})
	assert.EqualError(t, err, "date must be in YYYY-MM-DD format")

	err = Struct(sample{Name: "x", Date: "2026-10-19", Language: "fr"})
	assert.EqualError(t, err, "language must be one of [en my]")

	err = Struct(sample{Name: "x", Date: "2026-10-19", Capacity: -1})
	assert.EqualError(t, err, "capacity must be at least 0")
}

func TestStructAcceptsValidInput(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "x", Date: "2026-10-19", Language: "my"}))
}

type trip struct {
	From      string `json:"from_location" validate:"required"`
	To        string `json:"to_location" validate:"required,nefield=From"`
	Departure string `json:"scheduled_departure" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func TestStructMessagesFollowTagParams(t *testing.T) {
	err := Struct(trip{From: "A", To: "B", Departure: "2026-10-19"})
	assert.EqualError(t, err, "scheduled_departure must be in RFC3339 (YYYY-MM-DDThh:mm:ssZ) format")

	err = Struct(&trip{From: "A", To: "A", Departure: "2026-10-19T08:00:00Z"})
	assert.EqualError(t, err, "to_location must differ from from_location")

	assert.NoError(t, Struct(trip{From: "A", To: "B", Departure: "2026-10-19T08:00:00+06:30"}))
}
