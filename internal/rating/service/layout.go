package service

import "strings"

// Workbook — минимальная абстракция над разобранной выгрузкой.
// Реализуется internal/workbook, в тестах подменяется фейком.
type Workbook interface {
	SheetNames() []string
	Grid(name string) [][]string
	KeyedRows(name, defval string) []map[string]string
}

// Layout — физическая раскладка данных в выгрузке.
type Layout int

const (
	// LayoutSheets: отдельные именованные листы по группам.
	LayoutSheets Layout = iota
	// LayoutSideBySide: один лист, две таблицы рядом (слева операторы,
	// справа АУП).
	LayoutSideBySide
)

// Detection — результат классификации выгрузки.
type Detection struct {
	Layout Layout

	// LayoutSheets: имена найденных листов, "" — листа группы нет
	// (группа тогда пустая, это не ошибка).
	OperatorsSheet string
	AUPSheet       string

	// LayoutSideBySide: лист, индекс строки заголовков (-1, если строка
	// с "Сотрудник" и "Остаток" не нашлась) и колонка-граница блоков.
	Sheet     string
	HeaderRow int
	Split     int
}

var (
	operatorTokens = []string{"оператор", "operators"}
	aupTokens      = []string{"ауп", "aup"}
)

// DetectLayout: сначала ищем именованные листы групп; нет ни одного —
// первый лист считается совмещённым.
func DetectLayout(wb Workbook) Detection {
	names := wb.SheetNames()

	opSheet := findSheet(names, operatorTokens)
	aupSheet := findSheet(names, aupTokens)
	if opSheet != "" || aupSheet != "" {
		return Detection{Layout: LayoutSheets, OperatorsSheet: opSheet, AUPSheet: aupSheet}
	}

	det := Detection{Layout: LayoutSideBySide, HeaderRow: -1}
	if len(names) == 0 {
		return det
	}
	det.Sheet = names[0]

	grid := wb.Grid(det.Sheet)
	for i, row := range grid {
		if containsCell(row, "сотрудник") && containsCell(row, "остаток") {
			det.HeaderRow = i
			det.Split = splitPoint(row)
			break
		}
	}
	return det
}

func findSheet(names, tokens []string) string {
	for _, n := range names {
		low := strings.ToLower(n)
		for _, t := range tokens {
			if strings.Contains(low, t) {
				return n
			}
		}
	}
	return ""
}

func containsCell(row []string, token string) bool {
	for _, c := range row {
		if strings.Contains(strings.ToLower(c), token) {
			return true
		}
	}
	return false
}

// splitPoint — граница левого и правого блоков в строке заголовков:
// первая пустая ячейка после нулевой; нет пустой — повтор колонки
// "Сотрудник"; иначе середина строки.
func splitPoint(header []string) int {
	for i := 1; i < len(header); i++ {
		if strings.TrimSpace(header[i]) == "" {
			return i
		}
	}
	for i := 1; i < len(header); i++ {
		if strings.Contains(strings.ToLower(header[i]), "сотрудник") {
			return i
		}
	}
	return len(header) / 2
}
