package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
)

// AuditLog - Çalışan kayıtları üzerindeki değişikliklerin izi.
// Raporlama çekirdeği salt-okunur olduğu için sadece employee tarafı log yazar.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Değişikliği yapan kullanıcı
	UserID   uint   `json:"user_id"`
	UserName string `gorm:"size:150" json:"user_name"` // username (denormalize)

	// Hangi entity? (ör: "user", "user_data")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	// İşlem tipi: create/update
	Action AuditAction `gorm:"size:20" json:"action"`

	// Opsiyonel açıklama (küçük bir özet)
	Description string `gorm:"size:255" json:"description"`

	// Önceki ve sonraki hal (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
