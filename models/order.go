package models

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
)

// StatusPipeline is the canonical production flow, in order.
var StatusPipeline = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusDelivered}

// Valid reports whether s is one of the four known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range StatusPipeline {
		if s == known {
			return true
		}
	}
	return false
}

type DeliveryMethod string

const (
	MethodDelivery DeliveryMethod = "DELIVERY"
	MethodPickup   DeliveryMethod = "PICKUP"
)

// Order is a finalized submission. Items are a value copy of the cart at
// submission time; the neighborhood name and fee are a denormalized
// snapshot, so later fee edits never touch placed orders. After creation
// only Status and IsPrinted are ever mutated.
type Order struct {
	ID                     string         `json:"id"`
	CustomerName           string         `json:"customer_name"`
	Whatsapp               string         `json:"whatsapp"`
	Seller                 string         `json:"seller,omitempty"`
	CompanyName            string         `json:"company_name,omitempty"`
	IsCompleteRegistration bool           `json:"is_complete_registration"`
	DeliveryMethod         DeliveryMethod `json:"delivery_method"`
	PickupStore            string         `json:"pickup_store,omitempty"`
	Neighborhood           string         `json:"neighborhood,omitempty"`
	DeliveryFee            float64        `json:"delivery_fee"`
	Address                string         `json:"address,omitempty"`
	AddressNumber          string         `json:"address_number,omitempty"`
	PostalCode             string         `json:"cep,omitempty"`
	Complement             string         `json:"complement,omitempty"`
	City                   string         `json:"city,omitempty"`
	DeliveryDate           string         `json:"delivery_date,omitempty"`
	DeliveryTime           string         `json:"delivery_time,omitempty"`
	Items                  []CartLine     `json:"items"`
	Total                  float64        `json:"total"`
	Status                 OrderStatus    `json:"status"`
	IsPrinted              bool           `json:"is_printed"`
	CreatedAt              time.Time      `json:"created_at"`
}
