package dto

import (
	"time"

	"github.com/allisson/orderflow/internal/orders/domain"
)

// StatusHistoryResponse is one entry of an order's status history.
type StatusHistoryResponse struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

// OrderResponse represents an order in API responses.
// History is only included when the order was loaded with it.
type OrderResponse struct {
	ID           string                  `json:"id"`
	CustomerName string                  `json:"customerName"`
	ProductName  string                  `json:"productName"`
	Value        string                  `json:"value"`
	Status       string                  `json:"status"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    *time.Time              `json:"updatedAt,omitempty"`
	History      []StatusHistoryResponse `json:"history,omitempty"`
}

// ListOrdersResponse represents a page of orders in API responses.
type ListOrdersResponse struct {
	Data []OrderResponse `json:"data"`
}

// MapOrderToResponse converts a domain order to an API response including its history.
func MapOrderToResponse(order *domain.Order) OrderResponse {
	response := mapOrder(order)

	history := order.History()
	response.History = make([]StatusHistoryResponse, 0, len(history))
	for _, entry := range history {
		response.History = append(response.History, StatusHistoryResponse{
			Status:    string(entry.Status),
			ChangedAt: entry.ChangedAt,
		})
	}

	return response
}

// MapOrdersToListResponse converts a slice of domain orders to a list response.
func MapOrdersToListResponse(orders []*domain.Order) ListOrdersResponse {
	data := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		data = append(data, mapOrder(order))
	}

	return ListOrdersResponse{
		Data: data,
	}
}

func mapOrder(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID.String(),
		CustomerName: order.CustomerName,
		ProductName:  order.ProductName,
		Value:        order.Value.StringFixed(2),
		Status:       string(order.Status()),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}
