package usecase

import (
	"slot-booking/internal/data/store"
	"slot-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Customer CustomerService
	Business BusinessService
}

func NewService(st store.Store, confirm ConfirmFunc, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Customer: NewCustomerService(st, confirm, config, log),
		Business: NewBusinessService(st, confirm, log),
	}
}
