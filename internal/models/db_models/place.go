package db_models

import "github.com/lib/pq"

type Place struct {
	ID            string `gorm:"primaryKey"`
	Name          string
	City          string `gorm:"index"`
	Country       string
	Location      string
	Category      string
	Description   string
	Budget        string
	DurationHours *float64
	BestTime      string
	Tips          string
	Tags          pq.StringArray `gorm:"type:text[]"`
	Latitude      *float64
	Longitude     *float64
	Extra         string `gorm:"type:text"` // JSON object of unmapped CSV columns
	Timestamps
}
