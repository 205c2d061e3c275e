package utils

import (
	"fmt"
	"strings"

	"litoral-shop/models"
)

const receiptWidth = 32

// RenderReceipt produces the fixed-width text projection of an order for
// the 80mm production printer: header, contact block, delivery-method
// banner, line items with notes, fee and total, footer. Pure read-only,
// no new data.
func RenderReceipt(order models.Order) string {
	var b strings.Builder

	dashed := strings.Repeat("-", receiptWidth)
	solid := strings.Repeat("=", receiptWidth)

	writeCentered(&b, "CH LITORAL")
	writeCentered(&b, "PRODUCAO E LOGISTICA")
	b.WriteString(dashed + "\n")

	shortID := order.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	fmt.Fprintf(&b, "PEDIDO: #%s\n", strings.ToUpper(shortID))
	fmt.Fprintf(&b, "DATA: %s\n", order.CreatedAt.Format("02/01/2006 15:04"))
	b.WriteString(dashed + "\n")

	fmt.Fprintf(&b, "CLIENTE: %s\n", strings.ToUpper(order.CustomerName))
	fmt.Fprintf(&b, "WHATSAPP: %s\n", order.Whatsapp)
	if order.CompanyName != "" {
		fmt.Fprintf(&b, "EMPRESA: %s\n", strings.ToUpper(order.CompanyName))
	}

	b.WriteString(solid + "\n")
	if order.DeliveryMethod == models.MethodPickup {
		writeCentered(&b, "RETIRADA EM LOJA")
	} else {
		writeCentered(&b, "ENTREGA EM DOMICILIO")
	}
	b.WriteString(solid + "\n")

	if order.DeliveryDate != "" {
		scheduled := "AGENDADO: " + order.DeliveryDate
		if order.DeliveryTime != "" {
			scheduled += " as " + order.DeliveryTime
		}
		b.WriteString(scheduled + "\n")
	}

	if order.DeliveryMethod == models.MethodPickup {
		fmt.Fprintf(&b, "LOJA: %s\n", strings.ToUpper(order.PickupStore))
	} else {
		fmt.Fprintf(&b, "BAIRRO: %s\n", strings.ToUpper(order.Neighborhood))
		fmt.Fprintf(&b, "ENDERECO: %s, %s\n", strings.ToUpper(order.Address), order.AddressNumber)
		if order.Complement != "" {
			fmt.Fprintf(&b, "OBS: %s\n", strings.ToUpper(order.Complement))
		}
		if order.PostalCode != "" {
			fmt.Fprintf(&b, "CEP: %s\n", order.PostalCode)
		}
	}

	b.WriteString(dashed + "\n")
	b.WriteString("ITENS SELECIONADOS:\n")
	for _, line := range order.Items {
		qty := fmt.Sprintf("%dX", line.Quantity)
		price := fmt.Sprintf("R$ %.2f", line.Product.Price*float64(line.Quantity))
		desc := strings.ToUpper(line.Product.Description)
		maxDesc := receiptWidth - len(qty) - len(price) - 2
		if maxDesc > 0 && len(desc) > maxDesc {
			desc = desc[:maxDesc]
		}
		pad := receiptWidth - len(qty) - len(desc) - len(price) - 1
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(&b, "%s %s%s%s\n", qty, desc, strings.Repeat(" ", pad), price)
		if line.Note != "" {
			fmt.Fprintf(&b, "   >> %s\n", strings.ToUpper(line.Note))
		}
	}

	b.WriteString(dashed + "\n")
	if order.DeliveryFee > 0 {
		writeAmount(&b, "TAXA ENTREGA:", order.DeliveryFee)
	}
	writeAmount(&b, "TOTAL:", order.Total)
	b.WriteString(dashed + "\n")

	writeCentered(&b, "Obrigado pela preferencia!")
	writeCentered(&b, "Acompanhe pelo WhatsApp.")
	writeCentered(&b, "*** FIM DO COMPROVANTE ***")

	return b.String()
}

func writeCentered(b *strings.Builder, text string) {
	pad := (receiptWidth - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + text + "\n")
}

func writeAmount(b *strings.Builder, label string, amount float64) {
	value := fmt.Sprintf("R$ %.2f", amount)
	pad := receiptWidth - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(label + strings.Repeat(" ", pad) + value + "\n")
}
