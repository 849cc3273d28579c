package reports

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"timecard-backend/internal/models"

	"gorm.io/gorm"
)

// ErrInvalidDateFilter - date parametresi YYYY-MM-DD formatında değilse döner.
// Ham string asla storage katmanına iletilmez, sınırda yakalanır.
var ErrInvalidDateFilter = errors.New("date filtresi geçersiz, 'YYYY-MM-DD' olmalı")

// TimecardFilters - Timecard satır kalemleri için opsiyonel filtreler.
// Boş alan kısıt uygulamaz, dolu alanlar AND ile birleşir.
type TimecardFilters struct {
	Date    string // YYYY-MM-DD; dönemin start_date <= date <= end_date aralığına düşen satırlar
	User    string // sayısal ise users.id, değilse users.username (birebir eşleşme)
	Project string // sayısal ise projects.id, değilse projects.name (birebir eşleşme)
}

// Predicate - Tek bir filtre kısıtı. Sorguya eklenmeden önce liste halinde
// üretilir, böylece filtre mantığı veritabanı olmadan test edilebilir.
type Predicate struct {
	Expr string
	Args []interface{}
}

// BuildPredicates - Dolu filtre alanlarını kısıt listesine çevirir.
// Eşleşmeyen id/isim değerleri hata değil boş sonuç üretir; sadece bozuk
// tarih formatı hatadır.
func BuildPredicates(f TimecardFilters) ([]Predicate, error) {
	var preds []Predicate

	if f.Date != "" {
		d, err := time.Parse("2006-01-02", f.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDateFilter, f.Date)
		}
		preds = append(preds, Predicate{
			Expr: "reporting_periods.start_date <= ? AND reporting_periods.end_date >= ?",
			Args: []interface{}{d, d},
		})
	}

	if f.User != "" {
		// id veya username kabul edilir; tamamı rakamsa her zaman id'dir,
		// "42" adlı bir kullanıcıya isimle ulaşılamaz
		if isNumeric(f.User) {
			preds = append(preds, Predicate{Expr: "users.id = ?", Args: []interface{}{parseID(f.User)}})
		} else {
			preds = append(preds, Predicate{Expr: "users.username = ?", Args: []interface{}{f.User}})
		}
	}

	if f.Project != "" {
		// id veya proje adı kabul edilir
		if isNumeric(f.Project) {
			preds = append(preds, Predicate{Expr: "projects.id = ?", Args: []interface{}{parseID(f.Project)}})
		} else {
			preds = append(preds, Predicate{Expr: "projects.name = ?", Args: []interface{}{f.Project}})
		}
	}

	return preds, nil
}

// TimecardQuery - Satır kalemlerinin join'lenmiş taban sorgusu. Find
// çağrılana kadar çalışmaz, filtreler üstüne eklenir.
func TimecardQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.TimecardObject{}).
		Joins("JOIN timecards ON timecards.id = timecard_objects.timecard_id").
		Joins("JOIN reporting_periods ON reporting_periods.id = timecards.reporting_period_id").
		Joins("JOIN users ON users.id = timecards.user_id").
		Joins("JOIN projects ON projects.id = timecard_objects.project_id")
}

// ApplyFilters - Kısıtları sorguya AND olarak ekler.
func ApplyFilters(q *gorm.DB, f TimecardFilters) (*gorm.DB, error) {
	preds, err := BuildPredicates(f)
	if err != nil {
		return nil, err
	}
	for _, p := range preds {
		q = q.Where(p.Expr, p.Args...)
	}
	return q, nil
}

// parseID - Rakamlardan oluşan filtre değerini id'ye çevirir. Aralık dışı
// değer hata değildir, hiçbir satırla eşleşmeyen 0 döner.
func parseID(s string) uint64 {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
