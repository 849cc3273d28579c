package employees

import (
	"errors"
	"time"
)

var errInvalidFormDate = errors.New("tarih 'YYYY-MM-DD' veya 'NA' olmalı")

// parseFormDate - Form tarih alanını çözer. nil/boş alan dokunmaz anlamına
// gelmez: boş ve "NA" tarihi temizler (orijinal form semantiği).
func parseFormDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" || *s == "NA" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, errInvalidFormDate
	}
	return &d, nil
}
