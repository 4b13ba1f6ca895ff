package model

import "time"

// Asset is a stored file registered with the media subsystem, referenced by
// id and storage path.
type Asset struct {
	ID        uint64    `gorm:"column:asset_id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	Source    string    `gorm:"column:source;size:255" json:"source"`
	MimeType  string    `gorm:"column:mime_type;size:64" json:"mime_type"`
	FileSize  int64     `gorm:"column:file_size" json:"file_size"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Asset) TableName() string { return "m_asset" }
