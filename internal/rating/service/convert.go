package service

import (
	"rating-service/internal/rating/model"
)

// Convert превращает выгрузку в списки записей по группам.
// Порядок записей — порядок строк в источнике; сортировка — забота
// отображающей стороны. Строки без имени молча отбрасываются.
func Convert(wb Workbook) (operators, aup []model.Record) {
	det := DetectLayout(wb)
	switch det.Layout {
	case LayoutSheets:
		operators = convertGroupSheet(wb, det.OperatorsSheet, model.GroupOperators)
		aup = convertGroupSheet(wb, det.AUPSheet, model.GroupAUP)
	case LayoutSideBySide:
		if det.HeaderRow >= 0 {
			operators, aup = convertSideBySide(wb.Grid(det.Sheet), det.HeaderRow, det.Split)
		}
	}
	return operators, aup
}

// convertGroupSheet: лист одной группы. Если шапка не содержит ни одного
// известного псевдонима имени, заголовкам доверять нельзя — уходим на
// извлечение по фиксированным колонкам.
func convertGroupSheet(wb Workbook, sheet string, group model.Group) []model.Record {
	if sheet == "" {
		return nil
	}
	grid := wb.Grid(sheet)
	if len(grid) == 0 {
		return nil
	}
	if !headerHasNameAlias(grid[0]) {
		return convertFixedOffset(grid, group)
	}
	return convertSimpleTable(wb.KeyedRows(sheet, ""), simpleAliases, group)
}

func headerHasNameAlias(header []string) bool {
	for _, h := range header {
		h = TrimText(h)
		for _, a := range simpleAliases.name {
			if h == a {
				return true
			}
		}
	}
	return false
}

// convertSimpleTable — табличная стратегия: строки с шапкой-ключами.
func convertSimpleTable(rows []map[string]string, aliases aliasSet, group model.Group) []model.Record {
	var out []model.Record
	for _, row := range rows {
		name := resolve(row, aliases.name)
		if name == "" {
			continue
		}
		out = append(out, model.Record{
			Name:     name,
			Group:    group,
			Earned:   resolveAmount(row, aliases.earned),
			Spent:    resolveAmount(row, aliases.spent),
			Balance:  resolveAmount(row, aliases.balance),
			Telegram: resolve(row, aliases.telegram),
			Email:    resolve(row, aliases.email),
		})
	}
	return out
}

// Фиксированные колонки на случай шапки, не совпадающей ни с одним
// псевдонимом. Индексы и пропуск строк захардкожены под текущую форму
// выгрузки и молча поедут, если в Битриксе переставят колонки —
// известная хрупкость, самопроверки у неё нет.
type fixedLayout struct {
	skipRows int
	name     int
	earned   int
	spent    int
	balance  int
	telegram int
	email    int
}

var fixedLayouts = map[model.Group]fixedLayout{
	model.GroupOperators: {skipRows: 1, name: 0, earned: 1, spent: 2, balance: 3, telegram: 4, email: 5},
	model.GroupAUP:       {skipRows: 3, name: 0, earned: 1, spent: 2, balance: 3, telegram: 4, email: 5},
}

func convertFixedOffset(grid [][]string, group model.Group) []model.Record {
	fl := fixedLayouts[group]
	if fl.skipRows >= len(grid) {
		return nil
	}
	var out []model.Record
	for _, row := range grid[fl.skipRows:] {
		name := TrimText(cellAt(row, fl.name))
		if name == "" {
			continue
		}
		out = append(out, model.Record{
			Name:     name,
			Group:    group,
			Earned:   ParseAmount(cellAt(row, fl.earned)),
			Spent:    ParseAmount(cellAt(row, fl.spent)),
			Balance:  ParseAmount(cellAt(row, fl.balance)),
			Telegram: TrimText(cellAt(row, fl.telegram)),
			Email:    TrimText(cellAt(row, fl.email)),
		})
	}
	return out
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// convertSideBySide: совмещённый лист. Каждая строка сетки режется на два
// окна по split и каждое окно перекладывается в псевдостроку со своей
// половиной шапки. Одна строка сетки может дать 0, 1 или 2 записи:
// у таблиц разной длины хвост одной стороны пустой.
func convertSideBySide(grid [][]string, headerRow, split int) (operators, aup []model.Record) {
	header := grid[headerRow]
	if split <= 0 || split > len(header) {
		split = len(header) / 2
	}

	for _, row := range grid[headerRow+1:] {
		if rec, ok := blockRecord(row, header[:split], 0, leftAliases, model.GroupOperators); ok {
			operators = append(operators, rec)
		}
		if rec, ok := blockRecord(row, header[split:], split, rightAliases, model.GroupAUP); ok {
			aup = append(aup, rec)
		}
	}
	return operators, aup
}

func blockRecord(row, header []string, offset int, aliases aliasSet, group model.Group) (model.Record, bool) {
	block := make(map[string]string, len(header))
	for j, h := range header {
		block[TrimText(h)] = cellAt(row, offset+j)
	}

	name := resolve(block, aliases.name)
	if name == "" {
		return model.Record{}, false
	}
	return model.Record{
		Name:     name,
		Group:    group,
		Earned:   resolveAmount(block, aliases.earned),
		Spent:    resolveAmount(block, aliases.spent),
		Balance:  resolveAmount(block, aliases.balance),
		Telegram: resolve(block, aliases.telegram),
		Email:    resolve(block, aliases.email),
	}, true
}
