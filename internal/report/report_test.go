package report

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bloodbank-backend/internal/i18n"
	"bloodbank-backend/internal/inventory"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/shelflife"
	"bloodbank-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var today = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func addUnit(t *testing.T, db *gorm.DB, id, bloodType, location string, expiresIn int) {
	t.Helper()
	require.NoError(t, db.Create(&models.BloodUnit{
		BloodID:         id,
		BloodType:       bloodType,
		ProductType:     shelflife.WholeBlood,
		DonationDate:    datatypes.Date(today.AddDate(0, 0, expiresIn-35)),
		ExpiryDate:      datatypes.Date(today.AddDate(0, 0, expiresIn)),
		CurrentLocation: location,
		TemperatureZone: shelflife.ZoneRefrigerated,
		Status:          models.UnitStatusAvailable,
	}).Error)
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	testutil.CreateLocation(t, db, "YGN_MAIN", 10, 3)
	testutil.CreateLocation(t, db, "MDY_REGIONAL", 0, 0)

	addUnit(t, db, "a1", "A+", "YGN_MAIN", 3)
	addUnit(t, db, "a2", "A+", "YGN_MAIN", 20)
	addUnit(t, db, "o1", "O-", "MDY_REGIONAL", -1)
}

func TestCompute(t *testing.T) {
	db := testutil.OpenDB(t)
	seed(t, db)

	r, err := Compute(context.Background(), db, today)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", r.GeneratedAt)
	assert.Equal(t, int64(3), r.TotalUnits)
	assert.Equal(t, int64(1), r.ExpiringSoon)
	assert.Equal(t, int64(1), r.ExpiredUnits)
	assert.Equal(t, 33.33, r.WastageRate)

	require.Len(t, r.BloodTypes, 8)
	shares := map[string]BloodTypeShare{}
	for _, s := range r.BloodTypes {
		shares[s.BloodType] = s
	}
	assert.Equal(t, BloodTypeShare{BloodType: "A+", Count: 2, Percentage: 66.67}, shares["A+"])
	assert.Equal(t, BloodTypeShare{BloodType: "O-", Count: 1, Percentage: 33.33}, shares["O-"])
	assert.Equal(t, BloodTypeShare{BloodType: "AB-"}, shares["AB-"])

	require.Len(t, r.Locations, 2)
	mdy, ygn := r.Locations[0], r.Locations[1]
	assert.Equal(t, "MDY_REGIONAL", mdy.LocationCode)
	assert.Equal(t, 0, mdy.UsagePercentage)
	assert.Equal(t, int64(1), mdy.CountedUnits)
	assert.Equal(t, int64(-1), mdy.StockDrift)
	assert.Equal(t, 30, ygn.UsagePercentage)
	assert.Equal(t, int64(2), ygn.CountedUnits)
	assert.Equal(t, int64(1), ygn.StockDrift)
}

func TestCompute_Empty(t *testing.T) {
	db := testutil.OpenDB(t)

	r, err := Compute(context.Background(), db, today)
	require.NoError(t, err)
	assert.Zero(t, r.TotalUnits)
	assert.Zero(t, r.WastageRate)
	require.Len(t, r.BloodTypes, 8)
	for _, s := range r.BloodTypes {
		assert.Zero(t, s.Percentage)
	}
	assert.Empty(t, r.Locations)
}

func TestWriteWorkbook(t *testing.T) {
	db := testutil.OpenDB(t)
	seed(t, db)

	r, err := Compute(context.Background(), db, today)
	require.NoError(t, err)
	units, err := inventory.List(context.Background(), db, inventory.UnitFilter{OrderByExpiry: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	ctx := i18n.WithLang(context.Background(), i18n.Burmese)
	require.NoError(t, WriteWorkbook(ctx, &buf, r, units, today))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetBloodTypes, SheetLocations, SheetInventory}, f.GetSheetList())

	rate, err := f.GetCellValue(SheetSummary, "B5")
	require.NoError(t, err)
	assert.Equal(t, "33.33", rate)

	rows, err := f.GetRows(SheetBloodTypes)
	require.NoError(t, err)
	assert.Len(t, rows, 9)
	assert.Equal(t, i18n.Translate(i18n.Burmese, "Blood Type"), rows[0][0])

	inv, err := f.GetRows(SheetInventory)
	require.NoError(t, err)
	require.Len(t, inv, 4)
	assert.Equal(t, "o1", inv[1][0])
	assert.Equal(t, "2026-03-09", inv[1][4])
	assert.Equal(t, i18n.Translate(i18n.Burmese, "Expired"), inv[1][7])
}

func TestHandlers(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.UseGlobalDB(t, db)
	seed(t, db)

	prev := nowFunc
	nowFunc = func() time.Time { return today.Add(9 * time.Hour) }
	t.Cleanup(func() { nowFunc = prev })

	app := fiber.New()
	app.Get("/api/reports", Handler())
	app.Get("/api/reports/export", ExportHandler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/reports", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/reports/export", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxMIME, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "blood-report-20260310.xlsx")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), SheetInventory)
}
