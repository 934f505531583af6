package service

// Выгрузка из Битрикса не стабильна по заголовкам: русские/английские
// варианты, с суффиксом валюты ("Granat Coin"/"Gc") и без. Каждое поле
// описано упорядоченным списком псевдонимов; более специфичный/частый
// вариант стоит раньше и выигрывает при совпадении нескольких.
// Добавление нового написания — одна строка в таблице.
type aliasSet struct {
	name     []string
	earned   []string
	spent    []string
	balance  []string
	telegram []string
	email    []string
}

var simpleAliases = aliasSet{
	name:     []string{"Сотрудник", "ФИО", "Employee", "Name"},
	earned:   []string{"Начислено Granat Coin", "Начислено", "Granat Coin", "Earned", "Accrued"},
	spent:    []string{"Потрачено Granat Coin", "Потрачено", "Потрачено Gc", "Spent", "Debited"},
	balance:  []string{"Остаток Granat Coin", "Остаток", "Остаток Gc", "Balance", "Available"},
	telegram: []string{"Телеграм", "Telegram", "TG"},
	email:    []string{"Email", "E-mail", "Почта"},
}

// Левый блок совмещённого листа — операторы: там колонку имени подписывают
// "Оператор".
var leftAliases = withName(simpleAliases, "Оператор", "Сотрудник", "ФИО")

// Правый блок — АУП: имя подписано "Сотрудник АУП", а начисление может быть
// просто "Granat Coin".
var rightAliases = func() aliasSet {
	a := withName(simpleAliases, "Сотрудник АУП", "Сотрудник", "ФИО")
	a.earned = []string{"Granat Coin", "Начислено Granat Coin", "Начислено", "Earned", "Accrued"}
	a.spent = []string{"Потрачено Gc", "Потрачено Granat Coin", "Потрачено", "Spent", "Debited"}
	a.balance = []string{"Остаток Gc", "Остаток Granat Coin", "Остаток", "Balance", "Available"}
	return a
}()

func withName(base aliasSet, name ...string) aliasSet {
	base.name = name
	return base
}

// resolve возвращает первое присутствующее непустое значение по списку
// псевдонимов. Ничего не нашлось — "", дальше нормализатор даст 0/"".
func resolve(row map[string]string, aliases []string) string {
	for _, a := range aliases {
		if v := TrimText(row[a]); v != "" {
			return v
		}
	}
	return ""
}

func resolveAmount(row map[string]string, aliases []string) float64 {
	return ParseAmount(resolve(row, aliases))
}
