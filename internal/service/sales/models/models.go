package models

import (
	"time"

	"github.com/padelcore/PCM-ScheduleService/internal/domain"
)

// Request модели

// CreateSaleRequest запрос на регистрацию продажи пакета занятий
type CreateSaleRequest struct {
	StudentID     int64   `json:"studentId"`
	PackageName   string  `json:"packageName"`
	Classes       int     `json:"classes"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"paymentMethod"` // cash | card | transfer
	Notes         *string `json:"notes,omitempty"`
}

// Response модели

// SaleResponse продажа пакета в ответе API
type SaleResponse struct {
	ID            int64     `json:"id"`
	StudentID     int64     `json:"studentId"`
	PackageName   string    `json:"packageName"`
	Classes       int       `json:"classes"`
	Price         float64   `json:"price"`
	PaymentMethod string    `json:"paymentMethod"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ListSalesResponse список продаж ученика
type ListSalesResponse struct {
	Sales []*SaleResponse `json:"sales"`
	Total int             `json:"total"`
}

// FromDomainSale конвертирует доменную продажу в response
func FromDomainSale(sale *domain.PackageSale) *SaleResponse {
	return &SaleResponse{
		ID:            sale.ID,
		StudentID:     sale.StudentID,
		PackageName:   sale.PackageName,
		Classes:       sale.Classes,
		Price:         sale.Price,
		PaymentMethod: string(sale.PaymentMethod),
		Notes:         sale.Notes,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
	}
}

// FromDomainSales конвертирует список продаж в response
func FromDomainSales(sales []*domain.PackageSale) *ListSalesResponse {
	responses := make([]*SaleResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, FromDomainSale(sale))
	}
	return &ListSalesResponse{
		Sales: responses,
		Total: len(responses),
	}
}
