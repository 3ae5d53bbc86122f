package domain

import "time"

// PaymentMethod represents how a package sale was paid
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// IsValid returns true if the value is one of the supported payment methods
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentTransfer
}

// PackageSale records the sale of a class package to a student,
// together with its payment
type PackageSale struct {
	ID            int64
	StudentID     int64
	PackageName   string
	Classes       int // number of classes included in the package
	Price         float64
	PaymentMethod PaymentMethod
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
