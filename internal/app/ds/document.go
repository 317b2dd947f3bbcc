package ds

// Document is an uploaded file the customer wants worked on.
type Document struct {
	ID           uint   `gorm:"primaryKey"`
	OrderID      uint   `gorm:"not null;index"`
	Filename     string `gorm:"type:varchar(255);not null"` // generated name in storage
	OriginalName string `gorm:"type:varchar(255);not null"`
	Size         int64  `gorm:"not null"`
	Type         string `gorm:"type:varchar(100)"`
	Pages        int    `gorm:"type:int;default:0"`
}

// PaymentProof is the screenshot or PDF of the out-of-band payment. One per order.
type PaymentProof struct {
	ID           uint   `gorm:"primaryKey"`
	OrderID      uint   `gorm:"not null;uniqueIndex"`
	Filename     string `gorm:"type:varchar(255);not null"`
	OriginalName string `gorm:"type:varchar(255);not null"`
	Size         int64  `gorm:"not null"`
	Type         string `gorm:"type:varchar(100)"`
}
