package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"litoral-shop/config"
	"litoral-shop/repositories"
	"litoral-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.LoadConfig()

	store, err := repositories.NewStore(t.TempDir())
	require.NoError(t, err)

	// Unreachable upstream, so every request runs against the demo catalog.
	catalog := services.NewCatalogService("http://127.0.0.1:1/products", "http://127.0.0.1:1/prices")

	router := gin.New()
	SetupRoutes(router, store, catalog)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := do(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestStorefrontCheckoutFlow(t *testing.T) {
	router := newTestRouter(t)

	// Browse the catalog. Upstream is down, so the demo data answers and
	// the payload says so.
	w := do(t, router, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products struct {
		Meta struct {
			Count      int  `json:"count"`
			LiveSource bool `json:"live_source"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Equal(t, 6, products.Meta.Count)
	assert.False(t, products.Meta.LiveSource)

	// Open a cart and add an item twice; the lines merge.
	w = do(t, router, http.MethodPost, "/carts", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var cart struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))

	itemsPath := fmt.Sprintf("/carts/%s/items", cart.Data.ID)
	for i := 0; i < 2; i++ {
		w = do(t, router, http.MethodPost, itemsPath, "", gin.H{"product_id": "M1", "quantity": 1})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/carts/"+cart.Data.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched struct {
		Data struct {
			Lines []struct {
				Quantity int `json:"quantity"`
			} `json:"lines"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Len(t, fetched.Data.Lines, 1)
	assert.Equal(t, 2, fetched.Data.Lines[0].Quantity)

	// Submit as pickup. No account needed.
	w = do(t, router, http.MethodPost, "/orders", "", gin.H{
		"cart_id":         cart.Data.ID,
		"customer_name":   "Joana Silva",
		"whatsapp":        "11 99999-0000",
		"delivery_method": "PICKUP",
		"pickup_store":    "Loja Centro - Av. Principal, 100",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order struct {
		Data struct {
			ID     string  `json:"id"`
			Total  float64 `json:"total"`
			Status string  `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "PENDING", order.Data.Status)
	assert.Equal(t, 170.00, order.Data.Total) // 2x demo torta at 85.00

	// Staff walks the order through the panel.
	token := login(t, router, "admin", "password123")

	w = do(t, router, http.MethodGet, "/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPatch, "/orders/"+order.Data.ID+"/status", token, gin.H{"status": "PREPARING"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, router, http.MethodGet, "/orders/"+order.Data.ID+"/receipt", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RETIRADA EM LOJA")
}

func TestSubmitValidationOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/carts", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var cart struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))

	// Empty cart is refused.
	w = do(t, router, http.MethodPost, "/orders", "", gin.H{
		"cart_id":         cart.Data.ID,
		"customer_name":   "Joana",
		"whatsapp":        "11 99999-0000",
		"delivery_method": "PICKUP",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Blank name is refused even when binding passes.
	w = do(t, router, http.MethodPost, fmt.Sprintf("/carts/%s/items", cart.Data.ID), "", gin.H{"product_id": "M1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, "/orders", "", gin.H{
		"cart_id":         cart.Data.ID,
		"customer_name":   "   ",
		"whatsapp":        "11 99999-0000",
		"delivery_method": "PICKUP",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown cart is a 404.
	w = do(t, router, http.MethodPost, "/orders", "", gin.H{
		"cart_id":         "missing",
		"customer_name":   "Joana",
		"whatsapp":        "11 99999-0000",
		"delivery_method": "PICKUP",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCapabilityGates(t *testing.T) {
	router := newTestRouter(t)

	// No token at all.
	w := do(t, router, http.MethodGet, "/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	adminToken := login(t, router, "admin", "password123")

	// Create a production-only account, then check both gates separately.
	w = do(t, router, http.MethodPost, "/admin/users", adminToken, gin.H{
		"username":              "kitchen",
		"password":              "secret99",
		"name":                  "Kitchen Staff",
		"can_access_production": true,
		"can_access_admin":      false,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	kitchenToken := login(t, router, "kitchen", "secret99")

	w = do(t, router, http.MethodGet, "/orders", kitchenToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/admin/dashboard", kitchenToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Wrong credentials never reach a panel.
	w = do(t, router, http.MethodPost, "/auth/login", "", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRootAdminCannotBeDeletedOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "admin", "password123")

	w := do(t, router, http.MethodDelete, "/admin/users/admin-root", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, router, http.MethodGet, "/admin/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users.Data, 1)
	assert.Equal(t, "admin-root", users.Data[0].ID)
}
