package alerts

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAlerts(t *testing.T, db *gorm.DB, n int) []models.ExpiryAlert {
	t.Helper()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	out := make([]models.ExpiryAlert, 0, n)
	for i := 0; i < n; i++ {
		a := models.ExpiryAlert{
			BloodID:       "unit-" + string(rune('a'+i)),
			AlertType:     models.AlertTypeExpiring,
			AlertDate:     base.Add(time.Duration(i) * time.Hour),
			DaysRemaining: i,
			ActionTaken:   models.AlertActionPending,
		}
		require.NoError(t, db.Create(&a).Error)
		out = append(out, a)
	}
	return out
}

func TestRecentPending_NewestFirst(t *testing.T) {
	db := testutil.OpenDB(t)
	seeded := seedAlerts(t, db, 7)

	_, err := Acknowledge(context.Background(), db, seeded[6].ID, "Disposed", 1, "admin")
	require.NoError(t, err)

	recent, err := RecentPending(context.Background(), db, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "unit-f", recent[0].BloodID)
	assert.Equal(t, "unit-b", recent[4].BloodID)

	all, err := List(context.Background(), db, false, 0)
	require.NoError(t, err)
	assert.Len(t, all, 7)
	assert.Equal(t, "Disposed", all[0].ActionTaken)
}

func TestAcknowledge_NotFound(t *testing.T) {
	db := testutil.OpenDB(t)
	_, err := Acknowledge(context.Background(), db, 42, "Disposed", 0, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlertHandlers(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.UseGlobalDB(t, db)
	seeded := seedAlerts(t, db, 2)

	app := fiber.New()
	app.Get("/api/alerts", ListAlertsHandler())
	app.Post("/api/alerts/:id/acknowledge", AcknowledgeHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/alerts/"+itoa(seeded[0].ID)+"/acknowledge", strings.NewReader(`{"action_taken":"Transferred"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/alerts/"+itoa(seeded[1].ID)+"/acknowledge", strings.NewReader(`{}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/alerts?pending=true", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "unit-b")
	assert.NotContains(t, string(body), "unit-a")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
