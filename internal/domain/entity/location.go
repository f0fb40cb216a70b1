package entity

import "time"

// Location representa una bodega o ubicación física donde se almacena inventario.
// Name es único; mismo ciclo de vida que Product (solo creación).
type Location struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
