package entity

// User is the client record owned by the external identity component.
// This core only reads it: owner resolution and the confirmation email
// recipient.
type User struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex"`
	Phone     string
	IsAdmin   bool  `gorm:"not null"`
	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null"`
}
