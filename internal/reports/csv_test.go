package reports

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"

	"timecard-backend/internal/models"

	"github.com/shopspring/decimal"
)

func TestWriteTimelineCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTimelineCSV(&buf, nil); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if got := buf.String(); got != "project_id,project_name,start_date,billable,hours_spent\n" {
		t.Errorf("header yanlış: %q", got)
	}
}

// Spec'teki uçtan uca senaryo: (ProjectA, 2024-01-01, billable, 3h) +
// (ProjectA, 2024-01-01, billable, 2h) + (ProjectB, 2024-01-02, non-billable, 1h)
func TestWriteTimelineCSVEndToEnd(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	items := []models.TimecardObject{
		makeItem(1, 1, "ProjectA", jan1, true, "3"),
		makeItem(2, 1, "ProjectA", jan1, true, "2"),
		makeItem(3, 2, "ProjectB", jan2, false, "1"),
	}

	rows, err := AggregateTimeline(items)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteTimelineCSV(&buf, rows); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("üretilen CSV geri okunamadı: %v", err)
	}

	want := [][]string{
		{"project_id", "project_name", "start_date", "billable", "hours_spent"},
		{"1", "ProjectA", "2024-01-01", "true", "5"},
		{"2", "ProjectB", "2024-01-02", "false", "1"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("CSV çıktısı:\n got  %v\n want %v", records, want)
	}
}

// Her aggregate grubu tam olarak bir veri satırı üretir ve geri okununca
// aynı beşliyi verir
func TestWriteTimelineCSVRoundTrip(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := []TimelineRow{
		{ProjectID: 10, ProjectName: `Virgül, ve "tırnak"`, StartDate: jan1, Billable: true, HoursSpent: decimal.RequireFromString("7.25")},
		{ProjectID: 11, ProjectName: "Düz İsim", StartDate: jan1, Billable: false, HoursSpent: decimal.RequireFromString("0.5")},
	}

	var buf bytes.Buffer
	if err := WriteTimelineCSV(&buf, rows); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("RFC 4180 parse hatası: %v", err)
	}

	if len(records) != len(rows)+1 {
		t.Fatalf("%d veri satırı bekleniyordu, %d geldi", len(rows), len(records)-1)
	}

	for i, r := range rows {
		rec := records[i+1]
		if len(rec) != 5 {
			t.Fatalf("satır %d: 5 kolon bekleniyordu, %d geldi", i, len(rec))
		}
		if rec[1] != r.ProjectName {
			t.Errorf("satır %d: proje adı %q, beklenen %q", i, rec[1], r.ProjectName)
		}
		if rec[4] != r.HoursSpent.String() {
			t.Errorf("satır %d: saat %q, beklenen %q", i, rec[4], r.HoursSpent.String())
		}
	}
}
