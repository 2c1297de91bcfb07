// Package rows reads the batch input table: one row per article to generate.
package rows

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one unit of batch work. Mode and Keyword are required; Product and
// Link only matter for the sales variants.
type Row struct {
	Mode    string
	Keyword string
	Product string
	Link    string
}

// HeaderKo is the column header used by exported sheets, mirrored by Load's
// header detection.
var HeaderKo = []string{"모드", "키워드", "상품명", "링크"}

// Load reads rows from an .xlsx or .csv file, dispatching on extension.
func Load(path string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXLSX(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported row source %s: want .xlsx or .csv", path)
	}
}

func loadXLSX(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	records, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return fromRecords(records), nil
}

func loadCSV(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return fromRecords(records), nil
}

// fromRecords maps raw records to rows: column order mode, keyword, product,
// link. A leading header row is skipped; rows without a keyword are dropped.
func fromRecords(records [][]string) []Row {
	var out []Row
	for i, rec := range records {
		if i == 0 && isHeader(rec) {
			continue
		}
		row := Row{
			Mode:    col(rec, 0),
			Keyword: col(rec, 1),
			Product: col(rec, 2),
			Link:    col(rec, 3),
		}
		if row.Keyword == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

func isHeader(rec []string) bool {
	first := strings.ToLower(col(rec, 0))
	return first == "모드" || first == "mode"
}

func col(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
