package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"bloodbank-backend/internal/i18n"
	"bloodbank-backend/internal/models"
	"bloodbank-backend/internal/shelflife"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary    = "Summary"
	SheetBloodTypes = "Blood Types"
	SheetLocations  = "Locations"
	SheetInventory  = "Inventory"
)

// WriteWorkbook: raporu ve ünite listesini xlsx olarak yazar.
// Başlıklar istek diline çevrilir.
func WriteWorkbook(ctx context.Context, w io.Writer, r *Report, units []models.BloodUnit, today time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	tr := func(s string) any { return i18n.T(ctx, s) }

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetBloodTypes, SheetLocations, SheetInventory} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("new sheet %s: %w", name, err)
		}
	}

	summary := [][]any{
		{tr("Report Date"), r.GeneratedAt},
		{tr("Total Units"), r.TotalUnits},
		{tr("Expiring Soon"), r.ExpiringSoon},
		{tr("Expired Units"), r.ExpiredUnits},
		{tr("Wastage Rate"), r.WastageRate},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	types := [][]any{{tr("Blood Type"), tr("Count"), tr("Percentage")}}
	for _, bt := range r.BloodTypes {
		types = append(types, []any{bt.BloodType, bt.Count, bt.Percentage})
	}
	if err := writeRows(f, SheetBloodTypes, types); err != nil {
		return err
	}

	locs := [][]any{{tr("Location Code"), tr("Location Name"), tr("Current Stock"), tr("Capacity"), tr("Usage"), tr("Counted Units")}}
	for _, l := range r.Locations {
		locs = append(locs, []any{l.LocationCode, l.LocationName, l.CurrentStock, l.Capacity, l.UsagePercentage, l.CountedUnits})
	}
	if err := writeRows(f, SheetLocations, locs); err != nil {
		return err
	}

	inv := [][]any{{tr("Blood ID"), tr("Blood Type"), tr("Product Type"), tr("Donation Date"), tr("Expiry Date"), tr("Location"), tr("Days Remaining"), tr("Status")}}
	for _, u := range units {
		expiry := time.Time(u.ExpiryDate)
		days := shelflife.DaysBetween(today, expiry)
		inv = append(inv, []any{
			u.BloodID,
			u.BloodType,
			u.ProductType,
			time.Time(u.DonationDate).Format(shelflife.DateLayout),
			expiry.Format(shelflife.DateLayout),
			u.CurrentLocation,
			days,
			tr(string(shelflife.Classify(days))),
		})
	}
	if err := writeRows(f, SheetInventory, inv); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
