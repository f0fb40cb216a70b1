package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el kardex.
// El kardex es append-only: solo inserción y lectura, sin update ni delete.
type MovementRepository interface {
	// Create inserta un movimiento. La inserción es atómica: o queda el
	// registro completo o no queda nada.
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// ListAll escanea el kardex completo en orden cronológico ascendente.
	// Es la entrada del agregador de saldos (recalculo total en cada lectura).
	ListAll() ([]*entity.Movement, error)
	// ListRecent devuelve los movimientos más recientes primero (por timestamp).
	ListRecent(limit, offset int) ([]*entity.Movement, error)
}
