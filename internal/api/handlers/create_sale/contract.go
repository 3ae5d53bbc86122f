package create_sale

import (
	"context"

	"github.com/padelcore/PCM-ScheduleService/internal/service/sales/models"
)

type SalesService interface {
	Create(ctx context.Context, req *models.CreateSaleRequest) (*models.SaleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
