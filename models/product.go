package models

import "encoding/json"

// Product is one catalog entry. The catalog is read-only and replaced
// wholesale on each load, so products carry no timestamps.
type Product struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// DataSnapEnvelope is the upstream ERP response wrapper. Depending on the
// endpoint, "result" is either the row array itself or a single-element
// array wrapping it.
type DataSnapEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// RawProduct is one row of the upstream product listing.
type RawProduct struct {
	IDProduto json.Number `json:"IDPRODUTO"`
	Descricao string      `json:"DESCRICAO"`
	CodBarra  string      `json:"CODBARRA"`
	Unidade   string      `json:"UNIDADE"`
	Categoria string      `json:"CATEGORIA"`
}

// RawPrice is one row of the upstream price listing, joined to products
// by IDPRODUTO.
type RawPrice struct {
	IDProduto  json.Number `json:"IDPRODUTO"`
	ValorVenda float64     `json:"VALORVENDA"`
}
