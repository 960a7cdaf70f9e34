package entity

type Service struct {
	ID        string  `gorm:"primaryKey"`
	Name      string  `gorm:"not null"`
	Category  string
	Duration  int     `gorm:"not null"` // minutes
	Price     float64 `gorm:"not null"`
	Active    bool    `gorm:"not null"`
	CreatedAt int64   `gorm:"not null"`
	UpdatedAt int64   `gorm:"not null"`
}
