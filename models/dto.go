package models

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateUserRequest struct {
	Username            string `json:"username" form:"username" binding:"required,min=3"`
	Password            string `json:"password" form:"password" binding:"required,min=6"`
	Name                string `json:"name" form:"name" binding:"required"`
	CanAccessProduction bool   `json:"can_access_production" form:"can_access_production"`
	CanAccessAdmin      bool   `json:"can_access_admin" form:"can_access_admin"`
}

type AddNeighborhoodRequest struct {
	Name string  `json:"name" form:"name" binding:"required"`
	Fee  float64 `json:"fee" form:"fee"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
}

type AdjustCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Delta     int    `json:"delta" binding:"required"`
	Note      string `json:"note"`
}

type SubmitOrderRequest struct {
	CartID                 string `json:"cart_id" binding:"required"`
	CustomerName           string `json:"customer_name"`
	Whatsapp               string `json:"whatsapp"`
	Seller                 string `json:"seller"`
	CompanyName            string `json:"company_name"`
	IsCompleteRegistration bool   `json:"is_complete_registration"`
	DeliveryMethod         string `json:"delivery_method" binding:"required,oneof=DELIVERY PICKUP"`
	PickupStore            string `json:"pickup_store"`
	NeighborhoodID         string `json:"neighborhood_id"`
	Address                string `json:"address"`
	AddressNumber          string `json:"address_number"`
	PostalCode             string `json:"cep"`
	Complement             string `json:"complement"`
	City                   string `json:"city"`
	DeliveryDate           string `json:"delivery_date"`
	DeliveryTime           string `json:"delivery_time"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}
