package db_models

// Timestamps are unix seconds maintained by gorm.
type Timestamps struct {
	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}
