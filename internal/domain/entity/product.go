package entity

import "time"

// Product representa un producto o SKU rastreado por el kardex.
// Name es único a nivel global; Description es opcional.
// Inmutable después de su creación: el alcance actual no define actualización ni borrado.
type Product struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
