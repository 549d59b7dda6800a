package transport

import (
	"context"
	"testing"

	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ScheduleInput {
	return ScheduleInput{
		FromLocation:       "YGN_MAIN",
		ToLocation:         "MDY_REGIONAL",
		ScheduledDeparture: "2026-03-11T08:00:00Z",
		DriverName:         "U Min",
		DriverContact:      "09-111222333",
	}
}

func TestSchedule_DefaultsToScheduled(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.CreateLocation(t, db, "YGN_MAIN", 10, 0)
	testutil.CreateLocation(t, db, "MDY_REGIONAL", 10, 0)

	s, err := Schedule(context.Background(), db, validInput(), 1, "admin")
	require.NoError(t, err)
	assert.Regexp(t, `^SHP-[0-9A-F]{8}$`, s.ShipmentID)
	assert.Equal(t, models.ShipmentStatusScheduled, s.Status)
	assert.Equal(t, "Secure", s.SecurityStatus)

	var logs int64
	require.NoError(t, db.Model(&models.AuditLog{}).Where("entity_id = ?", s.ShipmentID).Count(&logs).Error)
	assert.Equal(t, int64(1), logs)
}

func TestSchedule_Rejects(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.CreateLocation(t, db, "YGN_MAIN", 10, 0)
	testutil.CreateLocation(t, db, "MDY_REGIONAL", 10, 0)

	same := validInput()
	same.ToLocation = same.FromLocation

	unknown := validInput()
	unknown.ToLocation = "NOWHERE"

	badTime := validInput()
	badTime.ScheduledDeparture = "tomorrow"

	delivered := validInput()
	delivered.Status = string(models.ShipmentStatusDelivered)

	for name, in := range map[string]ScheduleInput{
		"same location":    same,
		"unknown location": unknown,
		"bad time":         badTime,
		"delivered":        delivered,
	} {
		_, err := Schedule(context.Background(), db, in, 0, "")
		assert.ErrorIs(t, err, ErrValidation, name)
	}

	var n int64
	require.NoError(t, db.Model(&models.Transportation{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestListAndCountActive(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.CreateLocation(t, db, "YGN_MAIN", 10, 0)
	testutil.CreateLocation(t, db, "MDY_REGIONAL", 10, 0)

	in := validInput()
	_, err := Schedule(context.Background(), db, in, 0, "")
	require.NoError(t, err)

	in.Status = string(models.ShipmentStatusInTransit)
	in.ScheduledDeparture = "2026-03-09T06:30:00+06:30"
	transit, err := Schedule(context.Background(), db, in, 0, "")
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Transportation{
		ShipmentID:         "SHP-DONE",
		FromLocation:       "MDY_REGIONAL",
		ToLocation:         "YGN_MAIN",
		ScheduledDeparture: transit.ScheduledDeparture,
		Status:             models.ShipmentStatusDelivered,
	}).Error)

	all, err := List(context.Background(), db, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	inTransit, err := List(context.Background(), db, Filter{Status: models.ShipmentStatusInTransit})
	require.NoError(t, err)
	require.Len(t, inTransit, 1)
	assert.Equal(t, transit.ShipmentID, inTransit[0].ShipmentID)

	active, err := CountActive(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)
}
