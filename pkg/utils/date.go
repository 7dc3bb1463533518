package utils

import (
	"strings"
	"time"
)

var referenceLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// ParseReferenceTime interpreta a data de referência informada na linha de
// comando. Texto vazio devolve o instante zero, que significa "agora".
func ParseReferenceTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	var lastErr error
	for _, layout := range referenceLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// ReferenceOrNow devolve t, ou o instante atual quando t é zero
func ReferenceOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
