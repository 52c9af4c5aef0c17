package utils

import "time"

// ParseDateTime interpreta um campo de data vindo do store. Campo vazio é
// tratado como ausente (nil, sem erro); valores não vazios são aceitos em
// RFC3339 ou no formato YYYY-MM-DD.
func ParseDateTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

// SameMonth verifica se duas datas estão no mesmo mês calendário
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MonthStart retorna o primeiro instante do mês calendário da data informada
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// WholeDaysBetween retorna o número de dias completos decorridos entre as duas
// datas. Datas no futuro resultam em zero.
func WholeDaysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}

	return int(to.Sub(from).Hours() / 24)
}
