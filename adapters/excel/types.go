package excel

// RawRowData represents a row of raw spreadsheet data as string key-value pairs
type RawRowData map[string]string

// ExcelData represents the complete spreadsheet contents
type ExcelData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
	Raw     []byte       // File bytes, used for fingerprinting
}

// HasColumn reports whether header is present.
func (d *ExcelData) HasColumn(header string) bool {
	for _, h := range d.Headers {
		if h == header {
			return true
		}
	}
	return false
}
