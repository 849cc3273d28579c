package models

import "time"

// AccountingCode - Faturalanabilirlik bilgisini taşır; bir proje satırının
// billable olup olmadığı Project -> AccountingCode zinciri üzerinden türetilir.
type AccountingCode struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:50;not null"`
	Billable  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Project struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"size:255"`
	// Şemada nullable: muhasebe kodu olmayan proje serileştirme sırasında
	// hata verir, billable asla varsayılan değerle doldurulmaz
	AccountingCodeID *uint `gorm:"index"`
	AccountingCode   *AccountingCode
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
