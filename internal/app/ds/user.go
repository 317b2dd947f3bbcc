package ds

import "time"

// Staff is a shop employee who reviews incoming orders.
type Staff struct {
	ID        uint   `gorm:"primaryKey"`
	Login     string `gorm:"type:varchar(50);unique;not null"`
	Password  string `gorm:"type:varchar(255);not null"` // bcrypt hash
	FullName  string `gorm:"type:varchar(100)"`
	Role      int    `gorm:"type:int;default:0;not null"`
	CreatedAt time.Time
}
