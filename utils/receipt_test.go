package utils

import (
	"strings"
	"testing"
	"time"

	"litoral-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:             "a1b2c3d4-0000-0000-0000-000000000000",
		CustomerName:   "Joana Silva",
		Whatsapp:       "11 99999-0000",
		DeliveryMethod: models.MethodDelivery,
		Neighborhood:   "Centro",
		DeliveryFee:    5.00,
		Address:        "Rua das Gaivotas",
		AddressNumber:  "12",
		PostalCode:     "11700-000",
		Items: []models.CartLine{
			{
				Product:  models.Product{ID: "M1", Description: "Torta de Chocolate Belga", Price: 85.00},
				Quantity: 1,
			},
			{
				Product:  models.Product{ID: "M5", Description: "Cafe Espresso Gourmet", Price: 12.00},
				Quantity: 2,
				Note:     "sem acucar",
			},
		},
		Total:     114.00,
		Status:    models.StatusPending,
		CreatedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local),
	}
}

func TestRenderReceiptDelivery(t *testing.T) {
	text := RenderReceipt(sampleOrder())

	assert.Contains(t, text, "CH LITORAL")
	assert.Contains(t, text, "PEDIDO: #A1B2C3D4")
	assert.Contains(t, text, "DATA: 14/03/2025 09:30")
	assert.Contains(t, text, "CLIENTE: JOANA SILVA")
	assert.Contains(t, text, "ENTREGA EM DOMICILIO")
	assert.Contains(t, text, "BAIRRO: CENTRO")
	assert.Contains(t, text, "ENDERECO: RUA DAS GAIVOTAS, 12")
	assert.Contains(t, text, "CEP: 11700-000")
	assert.Contains(t, text, "ITENS SELECIONADOS:")
	assert.Contains(t, text, ">> SEM ACUCAR")
	assert.Contains(t, text, "R$ 24.00") // 2x espresso line total
	assert.Contains(t, text, "TAXA ENTREGA:")
	assert.Contains(t, text, "R$ 114.00")
	assert.Contains(t, text, "*** FIM DO COMPROVANTE ***")
}

func TestRenderReceiptPickupOmitsDeliveryBlock(t *testing.T) {
	order := sampleOrder()
	order.DeliveryMethod = models.MethodPickup
	order.PickupStore = "Loja Centro - Av. Principal, 100"
	order.Neighborhood = ""
	order.DeliveryFee = 0
	order.Total = 109.00

	text := RenderReceipt(order)

	assert.Contains(t, text, "RETIRADA EM LOJA")
	assert.Contains(t, text, "LOJA: LOJA CENTRO - AV. PRINCIPAL, 100")
	assert.NotContains(t, text, "BAIRRO:")
	assert.NotContains(t, text, "TAXA ENTREGA:")
	assert.Contains(t, text, "TOTAL:")
}

func TestRenderReceiptLinesStayWithinPrinterWidth(t *testing.T) {
	order := sampleOrder()
	order.Items = append(order.Items, models.CartLine{
		Product:  models.Product{ID: "X", Description: "Torta Gelada de Maracuja com Cobertura Especial da Casa", Price: 60.00},
		Quantity: 3,
	})

	for _, line := range strings.Split(RenderReceipt(order), "\n") {
		require.LessOrEqual(t, len(line), 32, "line %q", line)
	}
}

func TestRenderReceiptScheduledDelivery(t *testing.T) {
	order := sampleOrder()
	order.DeliveryDate = "20/03/2025"
	order.DeliveryTime = "14:00"

	assert.Contains(t, RenderReceipt(order), "AGENDADO: 20/03/2025 as 14:00")
}
