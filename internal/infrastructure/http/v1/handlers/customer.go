package handlers

import (
	"context"

	"storeadmin/internal/domain/catalogs/customer"
	"storeadmin/internal/domain/store"
	"storeadmin/internal/infrastructure/http/v1/dto"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	*RecordHandler[*customer.Customer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest, dto.CustomerResponse]
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(base *BaseHandler, service *customer.Service) *CustomerHandler {
	return &CustomerHandler{
		RecordHandler: NewRecordHandler(base, RecordHandlerConfig[*customer.Customer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest, dto.CustomerResponse]{
			Service:      service,
			SearchFields: customer.SearchFields,
			MapCreateDTO: func(ctx context.Context, st *store.Store, req dto.CreateCustomerRequest) (*customer.Customer, error) {
				return req.ToEntity(st.ID), nil
			},
			MapUpdateDTO: func(req dto.UpdateCustomerRequest, existing *customer.Customer) *customer.Customer {
				return req.Apply(existing)
			},
			MapToDTO: dto.FromCustomer,
		}),
	}
}
