package rows

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Export writes rows to an .xlsx workbook in the column order Load expects,
// with the Korean header row. This is how collected keywords become a batch
// input sheet.
func Export(path string, rs []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(HeaderKo))
	for i, h := range HeaderKo {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell for row %d: %w", i, err)
		}
		values := []interface{}{r.Mode, r.Keyword, r.Product, r.Link}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
