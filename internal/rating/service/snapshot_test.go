package service_test

import (
	"testing"
	"time"

	"rating-service/internal/rating/model"
	"rating-service/internal/rating/service"
)

func TestAssemble(t *testing.T) {
	operators := []model.Record{
		{Name: "Иванов", Group: model.GroupOperators, Balance: 400},
		{Name: "Иванов", Group: model.GroupOperators, Balance: 10}, // дубликат не схлопывается
	}
	aup := []model.Record{{Name: "Петров", Group: model.GroupAUP, Balance: 150}}

	snap := service.Assemble(operators, aup)

	if len(snap.All) != 3 {
		t.Fatalf("all = %d, want 3", len(snap.All))
	}
	// операторы строго раньше АУП, без пересортировки
	if snap.All[0].Name != "Иванов" || snap.All[2].Group != model.GroupAUP {
		t.Fatalf("unexpected order: %+v", snap.All)
	}
	if time.Since(snap.UpdatedAt) > time.Minute {
		t.Fatalf("updatedAt too old: %v", snap.UpdatedAt)
	}
}

func TestAssembleEmpty(t *testing.T) {
	snap := service.Assemble(nil, nil)
	if snap.Operators == nil || snap.AUP == nil || snap.All == nil {
		t.Fatal("empty groups must serialize as [], not null")
	}
	if len(snap.All) != 0 {
		t.Fatalf("all = %d, want 0", len(snap.All))
	}
}
