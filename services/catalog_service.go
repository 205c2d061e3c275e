package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"litoral-shop/models"
)

const (
	catalogCacheKey = "catalog_products"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogService loads the read-only product catalog from the upstream ERP.
// The product and price listings are fetched concurrently and joined by
// product id; any failure on either side falls back to the built-in demo
// catalog and flags the substitution. The catalog is replaced wholesale on
// each load, never patched.
type CatalogService struct {
	client      *http.Client
	productsURL string
	pricesURL   string

	mu         sync.RWMutex
	products   []models.Product
	liveSource bool
	loaded     bool
}

func NewCatalogService(productsURL, pricesURL string) *CatalogService {
	return &CatalogService{
		// No client timeout: a stalled upstream stalls the load (the
		// surrounding caller decides when loads happen).
		client:      &http.Client{},
		productsURL: productsURL,
		pricesURL:   pricesURL,
	}
}

// Load fetches the catalog and swaps it in. Returns the loaded products
// and whether they came from the live source. Never fails: network, parse
// and empty-result problems all degrade to the demo catalog.
func (s *CatalogService) Load(ctx context.Context) ([]models.Product, bool) {
	products, err := s.loadLive(ctx)
	live := err == nil
	if err != nil {
		log.Println("Catalog fetch failed, serving demo catalog:", err)
		products = FallbackCatalog()
	}

	s.mu.Lock()
	s.products = products
	s.liveSource = live
	s.loaded = true
	s.mu.Unlock()

	out := make([]models.Product, len(products))
	copy(out, products)
	return out, live
}

// Products returns the current catalog, loading it on first use.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, bool) {
	s.mu.RLock()
	if s.loaded {
		out := make([]models.Product, len(s.products))
		copy(out, s.products)
		live := s.liveSource
		s.mu.RUnlock()
		return out, live
	}
	s.mu.RUnlock()

	return s.Load(ctx)
}

// Categories derives the distinct category labels in catalog order.
func (s *CatalogService) Categories(ctx context.Context) []string {
	products, _ := s.Products(ctx)

	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// FindProduct looks a product up by id in the current catalog.
func (s *CatalogService) FindProduct(ctx context.Context, id string) (models.Product, error) {
	products, _ := s.Products(ctx)
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, errors.New("product not found in catalog")
}

// Refresh drops the cached catalog and loads again.
func (s *CatalogService) Refresh(ctx context.Context) ([]models.Product, bool) {
	if models.RedisClient != nil {
		models.RedisClient.Del(ctx, catalogCacheKey)
	}
	return s.Load(ctx)
}

// loadLive performs the two upstream requests concurrently, joins prices
// to products, and maps the rows into typed catalog entries. The redis
// cache short-circuits the fetch when a recent live catalog is available;
// demo data is never cached.
func (s *CatalogService) loadLive(ctx context.Context) ([]models.Product, error) {
	if cached, ok := s.cachedCatalog(ctx); ok {
		return cached, nil
	}

	type fetchResult struct {
		body []byte
		err  error
	}

	prodCh := make(chan fetchResult, 1)
	priceCh := make(chan fetchResult, 1)

	go func() {
		body, err := s.get(ctx, s.productsURL)
		prodCh <- fetchResult{body: body, err: err}
	}()
	go func() {
		body, err := s.get(ctx, s.pricesURL)
		priceCh <- fetchResult{body: body, err: err}
	}()

	prodRes := <-prodCh
	priceRes := <-priceCh

	if prodRes.err != nil {
		return nil, fmt.Errorf("product listing: %w", prodRes.err)
	}
	if priceRes.err != nil {
		return nil, fmt.Errorf("price listing: %w", priceRes.err)
	}

	var rawProducts []models.RawProduct
	if err := decodeDataSnapRows(prodRes.body, &rawProducts); err != nil {
		return nil, fmt.Errorf("product listing: %w", err)
	}

	var rawPrices []models.RawPrice
	if err := decodeDataSnapRows(priceRes.body, &rawPrices); err != nil {
		return nil, fmt.Errorf("price listing: %w", err)
	}

	if len(rawProducts) == 0 {
		return nil, errors.New("product listing is empty")
	}

	prices := make(map[string]float64, len(rawPrices))
	for _, p := range rawPrices {
		if id := p.IDProduto.String(); id != "" {
			prices[id] = p.ValorVenda
		}
	}

	products := make([]models.Product, 0, len(rawProducts))
	for _, raw := range rawProducts {
		id := raw.IDProduto.String()

		description := raw.Descricao
		if description == "" {
			description = "Produto sem descricao"
		}
		category := raw.Categoria
		if category == "" {
			category = "DIVERSOS"
		}

		products = append(products, models.Product{
			ID:          id,
			Description: description,
			Category:    category,
			Price:       prices[id],
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/400/300", id),
		})
	}

	s.cacheCatalog(ctx, products)
	return products, nil
}

func (s *CatalogService) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (s *CatalogService) cachedCatalog(ctx context.Context) ([]models.Product, bool) {
	if models.RedisClient == nil {
		return nil, false
	}

	cached, err := models.RedisClient.Get(ctx, catalogCacheKey).Result()
	if err != nil {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(cached), &products); err != nil || len(products) == 0 {
		return nil, false
	}
	return products, true
}

func (s *CatalogService) cacheCatalog(ctx context.Context, products []models.Product) {
	if models.RedisClient == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	models.RedisClient.Set(ctx, catalogCacheKey, data, catalogCacheTTL)
}

// decodeDataSnapRows unwraps the DataSnap envelope into typed rows. The
// "result" field is sometimes the row array itself and sometimes a
// single-element array wrapping it; anything else is a parse error, not a
// silently-defaulted shape.
func decodeDataSnapRows(body []byte, rows interface{}) error {
	var envelope models.DataSnapEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("malformed envelope: %w", err)
	}
	if len(envelope.Result) == 0 {
		return errors.New("envelope has no result field")
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(envelope.Result, &elements); err != nil {
		return fmt.Errorf("result is not an array: %w", err)
	}

	payload := envelope.Result
	if len(elements) == 1 {
		if inner := bytes.TrimSpace(elements[0]); len(inner) > 0 && inner[0] == '[' {
			payload = elements[0]
		}
	}

	if err := json.Unmarshal(payload, rows); err != nil {
		return fmt.Errorf("unexpected row shape: %w", err)
	}
	return nil
}

// FallbackCatalog is the fixed demo dataset served whenever the live
// source is unreachable.
func FallbackCatalog() []models.Product {
	return []models.Product{
		{ID: "M1", Description: "Torta de Chocolate Belga", Category: "TORTAS", Price: 85.00, ImageURL: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400"},
		{ID: "M2", Description: "Torta de Morango com Chantilly", Category: "TORTAS", Price: 78.00, ImageURL: "https://images.unsplash.com/photo-1565958011703-44f9829ba187?w=400"},
		{ID: "M3", Description: "Lasanha Quatro Queijos (1kg)", Category: "MASSAS", Price: 52.00, ImageURL: "https://images.unsplash.com/photo-1551183053-bf91a1d81141?w=400"},
		{ID: "M4", Description: "Fettuccine ao Pesto", Category: "MASSAS", Price: 45.00, ImageURL: "https://images.unsplash.com/photo-1645112481338-358090598944?w=400"},
		{ID: "M5", Description: "Cafe Espresso Gourmet", Category: "CAFES", Price: 12.00, ImageURL: "https://images.unsplash.com/photo-1510972527921-ce03766a1cf1?w=400"},
		{ID: "M6", Description: "Cappuccino Italiano", Category: "CAFES", Price: 15.00, ImageURL: "https://images.unsplash.com/photo-1534778101976-62847782c213?w=400"},
	}
}
