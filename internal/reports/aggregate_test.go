package reports

import (
	"strings"
	"testing"
	"time"

	"timecard-backend/internal/models"

	"github.com/shopspring/decimal"
)

func makeItem(id, projectID uint, projectName string, start time.Time, billable bool, hours string) models.TimecardObject {
	return models.TimecardObject{
		ID:         id,
		TimecardID: 1,
		Timecard: &models.Timecard{
			ID: 1,
			ReportingPeriod: &models.ReportingPeriod{
				StartDate: start,
				EndDate:   start.AddDate(0, 0, 6),
			},
		},
		ProjectID: projectID,
		Project: &models.Project{
			ID:             projectID,
			Name:           projectName,
			AccountingCode: &models.AccountingCode{Billable: billable},
		},
		HoursSpent: decimal.RequireFromString(hours),
	}
}

func TestAggregateTimelineSums(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	items := []models.TimecardObject{
		makeItem(1, 1, "ProjectA", jan1, true, "3"),
		makeItem(2, 1, "ProjectA", jan1, true, "2"),
		makeItem(3, 2, "ProjectB", jan2, false, "1"),
	}

	rows, err := AggregateTimeline(items)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("2 grup bekleniyordu, %d geldi", len(rows))
	}

	a := rows[0]
	if a.ProjectID != 1 || a.ProjectName != "ProjectA" || !a.Billable {
		t.Errorf("ilk grup yanlış: %+v", a)
	}
	if !a.HoursSpent.Equal(decimal.RequireFromString("5")) {
		t.Errorf("ProjectA toplamı = %s, beklenen 5", a.HoursSpent)
	}

	b := rows[1]
	if b.ProjectID != 2 || b.Billable {
		t.Errorf("ikinci grup yanlış: %+v", b)
	}
	if !b.HoursSpent.Equal(decimal.RequireFromString("1")) {
		t.Errorf("ProjectB toplamı = %s, beklenen 1", b.HoursSpent)
	}
}

func TestAggregateTimelineEmpty(t *testing.T) {
	rows, err := AggregateTimeline(nil)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	// katkısız grup üretilmez
	if len(rows) != 0 {
		t.Fatalf("boş girişten grup çıkmamalı, %d geldi", len(rows))
	}
}

func TestAggregateTimelineGroupKey(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Aynı isimde farklı id'li projeler birleştirilmez (id ile gruplanır),
	// aynı proje/tarihte billable ayrımı ayrı grup üretir
	items := []models.TimecardObject{
		makeItem(1, 1, "Aynı İsim", jan1, true, "1"),
		makeItem(2, 2, "Aynı İsim", jan1, true, "1"),
		makeItem(3, 1, "Aynı İsim", jan1, false, "1"),
	}

	rows, err := AggregateTimeline(items)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("3 grup bekleniyordu, %d geldi", len(rows))
	}
}

func TestAggregateTimelineDecimalExact(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// float aritmetiğinde 0.1+0.2 != 0.3; toplamlar tam ondalık olmalı
	items := []models.TimecardObject{
		makeItem(1, 1, "ProjectA", jan1, true, "0.1"),
		makeItem(2, 1, "ProjectA", jan1, true, "0.2"),
	}

	rows, err := AggregateTimeline(items)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("1 grup bekleniyordu, %d geldi", len(rows))
	}
	if rows[0].HoursSpent.String() != "0.3" {
		t.Errorf("toplam = %s, beklenen 0.3", rows[0].HoursSpent)
	}
}

func TestAggregateTimelineMissingAccountingCode(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	item := makeItem(1, 1, "ProjectA", jan1, true, "1")
	item.Project.AccountingCode = nil

	_, err := AggregateTimeline([]models.TimecardObject{item})
	if err == nil {
		t.Fatal("muhasebe kodu eksikken hata bekleniyordu")
	}
	if !strings.Contains(err.Error(), "muhasebe kodu eksik") {
		t.Errorf("hata mesajı beklenmedik: %v", err)
	}
}

func TestAggregateTimelineMissingPeriod(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	item := makeItem(1, 1, "ProjectA", jan1, true, "1")
	item.Timecard.ReportingPeriod = nil

	if _, err := AggregateTimeline([]models.TimecardObject{item}); err == nil {
		t.Fatal("reporting period eksikken hata bekleniyordu")
	}
}
