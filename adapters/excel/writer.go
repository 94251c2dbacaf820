package excel

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"spacexdash/domain/launch"
)

// ExportSheet is the worksheet name used for exported views.
const ExportSheet = "Launches"

// WriteView writes view as an xlsx workbook to w. The header row uses the
// source column names so the export can be loaded back as a dataset.
func WriteView(w io.Writer, view launch.FilteredView) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(ExportSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, h := range launch.RequiredColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ExportSheet, cell, h); err != nil {
			return err
		}
	}

	for r, rec := range view {
		values := []interface{}{rec.Site, rec.PayloadMassKg, int(rec.Class), rec.BoosterCategory}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(ExportSheet, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// WriteCSV writes records in the launch CSV layout, including the unnamed
// leading row-number column found in the published dataset.
func WriteCSV(w io.Writer, records []launch.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{""}, launch.RequiredColumns...)); err != nil {
		return err
	}
	for i, rec := range records {
		row := []string{
			strconv.Itoa(i),
			rec.Site,
			strconv.FormatFloat(rec.PayloadMassKg, 'f', -1, 64),
			rec.Class.String(),
			rec.BoosterCategory,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
