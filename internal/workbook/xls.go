// Разбор старого .xls: ширину таблицы фиксируем сами, не полагаясь на Row.LastCol().
package workbook

import (
	"bytes"
	"errors"
	"strings"

	xls "github.com/extrame/xls"
)

// Выгрузки из Битрикса чаще всего cp1251, но встречается и UTF-8.
var xlsCharsets = []string{"windows-1251", "utf-8", "koi8-r"}

func openXLS(b []byte) (*Workbook, error) {
	var wb *xls.WorkBook
	var lastErr error
	for _, ch := range xlsCharsets {
		w, err := xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && w != nil {
			wb = w
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	out := &Workbook{}
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		out.sheets = append(out.sheets, Sheet{Name: sheet.Name, Grid: xlsGrid(sheet)})
	}
	return out, nil
}

func xlsGrid(sheet *xls.WorkSheet) [][]string {
	maxCols := xlsMaxCols(sheet)
	grid := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = strings.TrimSpace(row.Col(j))
			}
		}
		grid = append(grid, cols)
	}
	return grid
}

// xlsMaxCols пробегает разумное число колонок и ищет самую правую непустую.
func xlsMaxCols(sheet *xls.WorkSheet) int {
	const probeMax = 256
	maxCols := 1
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if strings.TrimSpace(row.Col(j)) != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	return maxCols
}
