package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date representa um dia de calendário, sem hora, em UTC
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// DaysSince retorna quantos dias inteiros separam from de d
func (d Date) DaysSince(from Date) int {
	return int(d.Time.Sub(from.Time).Hours() / 24)
}

func (d Date) String() string {
	return d.Time.Format(DateLayout)
}

func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}
