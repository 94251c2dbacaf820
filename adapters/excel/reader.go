package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"spacexdash/internal"
	"spacexdash/internal/errors"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	log      *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xlsm" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType, log: internal.DefaultLogger.Named("DataReader")}
}

// WithSheet selects the worksheet read from xlsx files. By default the first
// sheet in the workbook is used.
func (r *DataReader) WithSheet(sheet string) *DataReader {
	r.sheet = sheet
	return r
}

// Path returns the file being read.
func (r *DataReader) Path() string {
	return r.filePath
}

// ReadData reads data from Excel or CSV files into structured format
func (r *DataReader) ReadData() (*ExcelData, error) {
	r.log.Debug("Starting to read %s file: %s", r.fileType, r.filePath)

	raw, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.DatasetLoad(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath), err)
		}
		return nil, errors.DatasetLoad("failed to read "+r.filePath, err)
	}

	var rows [][]string
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows(raw)
	case "xlsx":
		rows, err = r.readExcelRows(raw)
	default:
		return nil, errors.DatasetLoad("unsupported file type: "+r.fileType, nil)
	}
	if err != nil {
		return nil, err
	}

	data, err := r.processRows(rows)
	if err != nil {
		return nil, err
	}
	data.Raw = raw
	return data, nil
}

// readExcelRows reads all rows of the configured sheet
func (r *DataReader) readExcelRows(raw []byte) ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.DatasetLoad("failed to open Excel file", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.DatasetLoad("Excel file has no worksheets", nil)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.DatasetLoad("failed to read sheet "+sheet, err)
	}
	r.log.Debug("%s read in %.2fms (%d rows)", sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// readCSVRows parses CSV bytes
func (r *DataReader) readCSVRows(raw []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	// Pandas-exported files often carry an unnamed index column, so rows are
	// not required to match the header width exactly.
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.DatasetLoad("failed to read CSV file", err)
	}
	r.log.Debug("CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// processRows converts raw string rows into ExcelData format
func (r *DataReader) processRows(rows [][]string) (*ExcelData, error) {
	if len(rows) == 0 {
		return nil, errors.DatasetLoad(fmt.Sprintf("%s file has no header row", strings.ToUpper(r.fileType)), nil)
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		rowData := make(RawRowData, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	r.log.Debug("%s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &ExcelData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
