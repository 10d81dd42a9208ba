package entity

// Customer representa un cliente (facturación).
// Cada commit de factura inserta una fila nueva; no hay deduplicación.
type Customer struct {
	ID      string
	Name    string
	Address string
	Phone   string
}
