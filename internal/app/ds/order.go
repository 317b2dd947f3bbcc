package ds

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusPending = "pending"

// Order is one customer submission from any of the three order forms.
type Order struct {
	ID          uint   `gorm:"primaryKey"`
	Reference   string `gorm:"type:varchar(20);uniqueIndex;not null"` // PO-/BO-/PL- human readable id
	ServiceType string `gorm:"type:varchar(20);not null;index"`       // print, binding, plagiarism
	Status      string `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time

	// Print and binding
	BWPages     int    `gorm:"type:int;default:0"`
	ColorPages  int    `gorm:"type:int;default:0"`
	Copies      int    `gorm:"type:int;default:1"`
	PaperGrade  string `gorm:"type:varchar(10)"`
	ColorOption string `gorm:"type:varchar(20)"`
	BindingType string `gorm:"type:varchar(20)"`
	CoverType   string `gorm:"type:varchar(20)"`
	CoverColor  string `gorm:"type:varchar(20)"`

	// Plagiarism
	Services    string `gorm:"type:varchar(100)"` // comma separated service keys
	IsAIService bool   `gorm:"type:boolean;default:false"`
	PageTier    string `gorm:"type:varchar(10)"`

	TotalPages   int             `gorm:"type:int;default:0"`
	PrintPrice   decimal.Decimal `gorm:"type:decimal(12,2)"`
	BindingPrice decimal.Decimal `gorm:"type:decimal(12,2)"`
	CoverPrice   decimal.Decimal `gorm:"type:decimal(12,2)"`
	ServicePrice decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	ContactEmail   string `gorm:"type:varchar(100)"`
	ContactPhone   string `gorm:"type:varchar(30)"`
	Specifications string `gorm:"type:text"`

	Documents    []Document   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PaymentProof PaymentProof `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
