package reports

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSV kolonları sabittir, iç alan adlarından bu hedef adlara eşlenir.
var timelineHeader = []string{"project_id", "project_name", "start_date", "billable", "hours_spent"}

// WriteTimelineCSV - Aggregate çıktısını RFC 4180 CSV olarak yazar.
// Satır satır flush edilir, bellek kullanımı tek satırla sınırlı kalır.
// Sayfalama yoktur, sonuç kümesinin tamamı yazılır.
func WriteTimelineCSV(w io.Writer, rows []TimelineRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(timelineHeader); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ProjectID), 10),
			r.ProjectName,
			r.StartDate.Format("2006-01-02"),
			strconv.FormatBool(r.Billable),
			r.HoursSpent.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
