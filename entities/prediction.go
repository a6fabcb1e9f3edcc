package entities

import (
	"time"

	"gorm.io/gorm"
)

// PredictionTimeFormat is the display format stored with every record.
// Presentation binds to it, so it stays day-month-year 12-hour.
const PredictionTimeFormat = "02-01-2006 03:04 PM"

// Prediction is one submitted estimate: the four user inputs plus the
// computed yield. Derived advisory data (soil, weather, irrigation,
// pesticides) is never stored here; every view recomputes it.
type Prediction struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	Crop      string  `gorm:"not null" json:"crop"`
	Soil      string  `gorm:"not null" json:"soil"`
	Acres     float64 `gorm:"not null" json:"acres"`
	Location  string  `gorm:"not null" json:"location"`
	YieldKg   float64 `gorm:"not null" json:"yield_kg"`
	CreatedAt string  `json:"created_at"`
}

func (p *Prediction) BeforeCreate(tx *gorm.DB) (err error) {
	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().Format(PredictionTimeFormat)
	}
	return
}
