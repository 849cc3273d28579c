package reports

import (
	"fmt"
	"time"

	"timecard-backend/internal/models"

	"github.com/shopspring/decimal"
)

// TimelineRow - (proje, dönem başlangıcı, billable) grubunun toplam saati.
type TimelineRow struct {
	ProjectID   uint
	ProjectName string
	StartDate   time.Time
	Billable    bool
	HoursSpent  decimal.Decimal
}

type timelineKey struct {
	projectID uint
	startDate string // gün hassasiyeti, YYYY-MM-DD
	billable  bool
}

// AggregateTimeline - Filtrelenmiş satır kalemlerini rapor satırlarına indirger.
// Gruplama anahtarı kesinlikle (project_id, start_date, billable) üçlüsüdür;
// proje adı gösterim için ilk görülen satırdan taşınır (id<->isim 1:1 varsayımı,
// tarihsel bir yeniden adlandırmada eski satırlar ilk görülen adı gösterir).
// Toplamlar tam ondalık aritmetikle hesaplanır; katkısız grup hiç üretilmez.
// Satır sırası ilk görülme sırasıdır, sıralama garantisi isteyen çağıran
// kendisi sıralamalıdır.
func AggregateTimeline(items []models.TimecardObject) ([]TimelineRow, error) {
	index := make(map[timelineKey]int, len(items))
	rows := make([]TimelineRow, 0, len(items))

	for _, item := range items {
		if item.Timecard == nil || item.Timecard.ReportingPeriod == nil {
			return nil, fmt.Errorf("timecard satırı %d: reporting period ilişkisi eksik", item.ID)
		}
		if item.Project == nil {
			return nil, fmt.Errorf("timecard satırı %d: proje ilişkisi eksik", item.ID)
		}
		if item.Project.AccountingCode == nil {
			// billable bilgisi muhasebe kodundan gelir, yoksa satır
			// varsayılan değerle doldurulmaz, istek komple hata alır
			return nil, fmt.Errorf("proje %d (%s): muhasebe kodu eksik, billable belirlenemiyor", item.Project.ID, item.Project.Name)
		}

		start := item.Timecard.ReportingPeriod.StartDate
		key := timelineKey{
			projectID: item.ProjectID,
			startDate: start.Format("2006-01-02"),
			billable:  item.Project.AccountingCode.Billable,
		}

		if i, ok := index[key]; ok {
			rows[i].HoursSpent = rows[i].HoursSpent.Add(item.HoursSpent)
			continue
		}

		index[key] = len(rows)
		rows = append(rows, TimelineRow{
			ProjectID:   item.ProjectID,
			ProjectName: item.Project.Name,
			StartDate:   start,
			Billable:    key.billable,
			HoursSpent:  item.HoursSpent,
		})
	}

	return rows, nil
}
