package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportingPeriod - Timecard'ların dosyalandığı tarih aralığı
type ReportingPeriod struct {
	ID           uint      `gorm:"primaryKey"`
	StartDate    time.Time `gorm:"type:date;uniqueIndex;not null"`
	EndDate      time.Time `gorm:"type:date;not null"`
	WorkingHours int       `gorm:"default:40"` // dönemin raporlanabilir kapasitesi
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Timecard struct {
	ID                uint `gorm:"primaryKey"`
	UserID            uint `gorm:"index;not null"`
	User              *User
	ReportingPeriodID uint `gorm:"index;not null"`
	ReportingPeriod   *ReportingPeriod
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TimecardObject - Timecard satır kalemi, raporlamanın toplama birimi.
// Timecard silinirse satır kalemleri de silinir (CASCADE).
type TimecardObject struct {
	ID         uint      `gorm:"primaryKey"`
	TimecardID uint      `gorm:"index;not null"`
	Timecard   *Timecard `gorm:"constraint:OnDelete:CASCADE"`
	ProjectID  uint      `gorm:"index;not null"`
	Project    *Project
	HoursSpent decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
