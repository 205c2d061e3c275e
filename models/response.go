package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CatalogMeta accompanies the product listing so clients can show the
// demo-mode indicator when the live source was unreachable.
type CatalogMeta struct {
	Count      int  `json:"count"`
	LiveSource bool `json:"live_source"`
}

type CatalogResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    []Product   `json:"data"`
	Meta    CatalogMeta `json:"meta"`
}

// OrdersMeta carries the pending-production badge count next to listings.
type OrdersMeta struct {
	Count   int `json:"count"`
	Pending int `json:"pending"`
}

type OrdersResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    []Order    `json:"data"`
	Meta    OrdersMeta `json:"meta"`
}

// DashboardStats mirrors the admin panel overview tiles.
type DashboardStats struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	NeighborhoodCount int     `json:"neighborhood_count"`
	PendingProduction int     `json:"pending_production"`
}
