package entity

// Owner representa el negocio emisor de las facturas.
type Owner struct {
	ID      string
	Name    string
	Address string
	Phone   string
}
