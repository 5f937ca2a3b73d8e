// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	"github.com/allisson/orderflow/internal/orders/domain"
	customValidation "github.com/allisson/orderflow/internal/validation"
)

// CreateOrderRequest contains the parameters for placing an order.
// Value accepts a JSON string ("2500.00") or number.
type CreateOrderRequest struct {
	CustomerName string          `json:"customerName"`
	ProductName  string          `json:"productName"`
	Value        decimal.Decimal `json:"value"`
}

// Validate checks if the create order request is valid.
func (r *CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CustomerName,
			validation.Required,
			customValidation.NotBlank,
			customValidation.MaxRunes(domain.MaxNameLength),
		),
		validation.Field(&r.ProductName,
			validation.Required,
			customValidation.NotBlank,
			customValidation.MaxRunes(domain.MaxNameLength),
		),
		validation.Field(&r.Value,
			customValidation.PositiveDecimal,
			customValidation.DecimalPlaces(2),
		),
	)
}
