package model

import "time"

// Group — категория рейтинга. Назначается по листу/блоку, не из ячейки.
type Group string

const (
	GroupOperators Group = "operators"
	GroupAUP       Group = "aup"
)

// Record — положение одного сотрудника в рейтинге.
// balance приходит из таблицы как есть и НЕ пересчитывается из earned-spent.
type Record struct {
	Name     string  `json:"name"`
	Group    Group   `json:"group"`
	Earned   float64 `json:"earned"`
	Spent    float64 `json:"spent"`
	Balance  float64 `json:"balance"`
	Telegram string  `json:"telegram,omitempty"`
	Email    string  `json:"email,omitempty"`
}

// Snapshot — результат одного прогона конвертации. All — конкатенация
// operators ++ aup в исходном порядке строк, без сортировки и дедупликации.
type Snapshot struct {
	UpdatedAt time.Time `json:"updatedAt"`
	Operators []Record  `json:"operators"`
	AUP       []Record  `json:"aup"`
	All       []Record  `json:"all"`
}
