package service

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount парсит "1 234,5", "197 ,00" (NBSP/NNBSP), числа с переносом
// строки внутри ячейки и т.п. — выкидывается любой пробельный символ.
// Непарсибельное значение — это 0, а не ошибка: нормализатор, не валидатор.
func ParseAmount(raw string) float64 {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	// только первая запятая становится точкой: "1,2,3" пусть честно падает в 0
	s = strings.Replace(s, ",", ".", 1)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// TrimText — пустые и отсутствующие значения схлопываются в "".
func TrimText(raw string) string {
	return strings.TrimSpace(raw)
}
