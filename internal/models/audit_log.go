package models

import "time"

// AuditLog records every callback decision and other sensitive actions.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Action     string    `gorm:"size:64;not null;index" json:"action"`
	Resource   string    `gorm:"size:32;not null" json:"resource"`
	ResourceID string    `gorm:"size:255" json:"resource_id"`
	IP         string    `gorm:"size:64" json:"ip"`
	Detail     string    `gorm:"type:text" json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
