package reports

import (
	"fmt"

	"timecard-backend/internal/models"

	"github.com/shopspring/decimal"
)

type ProjectView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Billable    bool   `json:"billable"`
}

type UserView struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TimecardView struct {
	User        string          `json:"user"`
	ProjectID   uint            `json:"project_id"`
	ProjectName string          `json:"project_name"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	HoursSpent  decimal.Decimal `json:"hours_spent"`
	Billable    bool            `json:"billable"`
}

// SerializeProject - billable, AccountingCode üzerinden türetilir. Zorunlu
// ilişki eksikse satır atlanmaz, hata döner (sessizce yanlış billable yerine).
func SerializeProject(p models.Project) (ProjectView, error) {
	if p.AccountingCode == nil {
		return ProjectView{}, fmt.Errorf("proje %d (%s): muhasebe kodu eksik", p.ID, p.Name)
	}
	return ProjectView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Billable:    p.AccountingCode.Billable,
	}, nil
}

func SerializeUser(u models.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// SerializeTimecardObject - Satır kalemi görünümü. Tüm alanlar ilişki zinciri
// üzerinden zorunludur: Timecard -> User / ReportingPeriod ve
// Project -> AccountingCode yüklenmemişse hata döner.
func SerializeTimecardObject(o models.TimecardObject) (TimecardView, error) {
	if o.Timecard == nil {
		return TimecardView{}, fmt.Errorf("timecard satırı %d: timecard ilişkisi eksik", o.ID)
	}
	if o.Timecard.User == nil {
		return TimecardView{}, fmt.Errorf("timecard satırı %d: kullanıcı ilişkisi eksik", o.ID)
	}
	if o.Timecard.ReportingPeriod == nil {
		return TimecardView{}, fmt.Errorf("timecard satırı %d: reporting period ilişkisi eksik", o.ID)
	}
	if o.Project == nil {
		return TimecardView{}, fmt.Errorf("timecard satırı %d: proje ilişkisi eksik", o.ID)
	}
	if o.Project.AccountingCode == nil {
		return TimecardView{}, fmt.Errorf("proje %d (%s): muhasebe kodu eksik", o.Project.ID, o.Project.Name)
	}

	return TimecardView{
		User:        o.Timecard.User.Username,
		ProjectID:   o.ProjectID,
		ProjectName: o.Project.Name,
		StartDate:   o.Timecard.ReportingPeriod.StartDate.Format("2006-01-02"),
		EndDate:     o.Timecard.ReportingPeriod.EndDate.Format("2006-01-02"),
		HoursSpent:  o.HoursSpent,
		Billable:    o.Project.AccountingCode.Billable,
	}, nil
}
