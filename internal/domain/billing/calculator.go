package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoiciz-api/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// Totals es el resultado del cálculo de una factura.
type Totals struct {
	NetTotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	GrandTotal     decimal.Decimal
}

// Calculate deriva los totales de un conjunto de líneas y un porcentaje de
// descuento. Función pura:
//
//	netTotal       = round(Σ item.Total, 2)
//	discountAmount = netTotal × (discount / 100)
//	grandTotal     = round(netTotal − discountAmount, 2)
//
// El redondeo se aplica una sola vez sobre neto y gran total, nunca por línea,
// para no acumular error de redondeo con muchas líneas. discount fuera de
// [0, 100] es un error de validación, no se recorta. Un conjunto vacío produce
// totales en cero sin error.
func Calculate(items []LineItem, discount decimal.Decimal) (Totals, error) {
	if discount.IsNegative() || discount.GreaterThan(oneHundred) {
		return Totals{}, domain.Validationf("discount must be between 0 and 100")
	}
	net := decimal.Zero
	for _, it := range items {
		net = net.Add(it.Total)
	}
	net = net.Round(2)
	discountAmount := net.Mul(discount).Div(oneHundred)
	grand := net.Sub(discountAmount).Round(2)
	return Totals{
		NetTotal:       net,
		DiscountAmount: discountAmount,
		GrandTotal:     grand,
	}, nil
}
