// Package workbook открывает выгрузку (xlsx/xls/csv) как набор листов-сеток.
package workbook

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
)

// Sheet — один лист как сетка строк×колонок. Пустые ячейки — "".
type Sheet struct {
	Name string
	Grid [][]string
}

// Workbook — разобранный документ. Порядок листов — как в файле.
type Workbook struct {
	sheets []Sheet
}

func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.sheets))
	for i, s := range w.sheets {
		names[i] = s.Name
	}
	return names
}

// Grid возвращает лист как сырую сетку; nil, если листа нет.
func (w *Workbook) Grid(name string) [][]string {
	for _, s := range w.sheets {
		if s.Name == name {
			return s.Grid
		}
	}
	return nil
}

// KeyedRows читает лист как таблицу с шапкой в первой строке:
// каждая строка — map[заголовок]значение, недостающие ячейки получают defval.
// Полностью пустые строки пропускаются.
func (w *Workbook) KeyedRows(name, defval string) []map[string]string {
	grid := w.Grid(name)
	if len(grid) == 0 {
		return nil
	}
	headers := headerKeys(grid[0])
	var out []map[string]string
	for _, row := range grid[1:] {
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			v := defval
			if c < len(row) {
				v = row[c]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}

// headerKeys — заголовки по первой строке, пустые подменяются на "Column N".
func headerKeys(row []string) []string {
	out := make([]string, len(row))
	for i, v := range row {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// FormatError: скачанные байты — не таблица. Excerpt помогает опознать
// HTML-страницу ошибки, пришедшую с кодом 200.
type FormatError struct {
	Excerpt string
}

func (e *FormatError) Error() string {
	return "not a spreadsheet: " + e.Excerpt
}

var (
	zipMagic = []byte{0x50, 0x4b, 0x03, 0x04}                         // xlsx (zip)
	oleMagic = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1} // xls (OLE CFB)
)

// Open определяет формат по сигнатурным байтам и разбирает документ.
// Текст без бинарных сигнатур считается CSV-выгрузкой (один безымянный лист),
// даже совсем короткий.
func Open(b []byte) (*Workbook, error) {
	if len(b) == 0 {
		return nil, &FormatError{Excerpt: excerpt(b)}
	}
	switch {
	case bytes.HasPrefix(b, zipMagic):
		return openXLSX(b)
	case bytes.HasPrefix(b, oleMagic):
		return openXLS(b)
	}
	if looksLikeMarkup(b) || bytes.IndexByte(b, 0) >= 0 {
		return nil, &FormatError{Excerpt: excerpt(b)}
	}
	return openCSV(b)
}

// looksLikeMarkup: первый значимый символ — '<' (HTML/XML вместо файла).
func looksLikeMarkup(b []byte) bool {
	trimmed := bytes.TrimLeftFunc(b, unicode.IsSpace)
	return len(trimmed) > 0 && trimmed[0] == '<'
}

func excerpt(b []byte) string {
	const n = 120
	if len(b) > n {
		b = b[:n]
	}
	s := strings.Map(func(r rune) rune {
		if r == '�' || unicode.IsControl(r) {
			return ' '
		}
		return r
	}, string(b))
	return strings.Join(strings.Fields(s), " ")
}
