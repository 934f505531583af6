package workbook

import (
	"bytes"

	excelize "github.com/xuri/excelize/v2"
)

func openXLSX(b []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, err
		}
		wb.sheets = append(wb.sheets, Sheet{Name: name, Grid: rows})
	}
	return wb, nil
}
