package service

import (
	"time"

	"rating-service/internal/rating/model"
)

// Assemble собирает снапшот: операторы всегда раньше АУП, порядок внутри
// групп исходный. Обе группы пустые — валидный результат "данных нет",
// не ошибка.
func Assemble(operators, aup []model.Record) model.Snapshot {
	all := make([]model.Record, 0, len(operators)+len(aup))
	all = append(all, operators...)
	all = append(all, aup...)

	// пустые группы сериализуем как [], не null
	if operators == nil {
		operators = []model.Record{}
	}
	if aup == nil {
		aup = []model.Record{}
	}

	return model.Snapshot{
		UpdatedAt: time.Now().UTC(),
		Operators: operators,
		AUP:       aup,
		All:       all,
	}
}
