package models

import (
	"time"

	"gorm.io/datatypes"
)

// Backup actions recorded by the settings module.
const (
	BackupActionExport    = "export"
	BackupActionImport    = "import"
	BackupActionDeleteAll = "delete_all"
)

// BackupLog is an audit row written after every successful export, import
// or delete-all. Detail holds per-table row counts.
type BackupLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Action    string         `gorm:"size:20;index" json:"action"`
	Detail    datatypes.JSON `gorm:"column:detail" json:"detail"`
	CreatedAt time.Time      `json:"created_at"`
}
