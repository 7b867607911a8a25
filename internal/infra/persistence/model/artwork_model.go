package model

import (
	"time"
)

// ArtworkModel mirrors the 'artworks' table. IDs are human-readable slugs.
type ArtworkModel struct {
	ID              string  `gorm:"type:varchar(128);primaryKey"`
	Title           string  `gorm:"type:varchar(255);not null"`
	Category        string  `gorm:"type:varchar(64);not null;default:'';index"`
	ImageSrc        string  `gorm:"type:text;not null"`
	Published       bool    `gorm:"not null;default:false"`
	SortOrder       int     `gorm:"not null;default:0"`
	RawPrompt       *string `gorm:"type:text"`
	RefinementNotes *string `gorm:"type:text"`
	PromptPrice     *int64
	Techniques      []TechniqueModel `gorm:"many2many:artwork_techniques;joinForeignKey:ArtworkID;joinReferences:TechniqueID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtworkModel) TableName() string {
	return "artworks"
}

// TechniqueModel mirrors the 'techniques' table.
type TechniqueModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description *string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (TechniqueModel) TableName() string {
	return "techniques"
}
