package workbook

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// CSVSheetName — имя единственного неявного листа CSV-выгрузки.
const CSVSheetName = "CSV"

// openCSV читает CSV как workbook с одним листом, автоопределяя кодировку
// (UTF-8 и Windows-1251 из коробки) и разделитель (';' или ',').
func openCSV(b []byte) (*Workbook, error) {
	br := bufio.NewReader(bytes.NewReader(b))

	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	var dec io.Reader = br
	switch cs {
	case "windows-1251", "cp1251":
		dec = transform.NewReader(br, charmap.Windows1251.NewDecoder())
	default:
		// считаем UTF-8
	}

	cr := csv.NewReader(dec)
	cr.Comma = detectComma(peek)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var grid [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &FormatError{Excerpt: excerpt(b)}
		}
		grid = append(grid, rec)
	}
	return &Workbook{sheets: []Sheet{{Name: CSVSheetName, Grid: grid}}}, nil
}

// detectComma: Битрикс отдаёт CSV и с ';', и с ',' — смотрим первую строку.
func detectComma(peek []byte) rune {
	line := peek
	if i := bytes.IndexByte(peek, '\n'); i >= 0 {
		line = peek[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
