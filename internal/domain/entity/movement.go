package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas semánticas de un movimiento según los extremos presentes.
const (
	MovementKindIN       = "IN"       // entrada: solo destino
	MovementKindOUT      = "OUT"      // salida: solo origen
	MovementKindTRANSFER = "TRANSFER" // traslado: origen y destino
)

// Movement es un registro del kardex: una cantidad de un producto que entra,
// sale o se traslada entre ubicaciones. El kardex es append-only (sin update
// ni delete), por eso sirve como pista de auditoría.
//
// FromLocationID y ToLocationID vacíos significan "extremo ausente"; el
// invariante "al menos un extremo presente" lo garantiza la puerta de
// validación antes de admitir el registro.
type Movement struct {
	ID             string
	ProductID      string
	FromLocationID string // vacío en entradas
	ToLocationID   string // vacío en salidas
	Quantity       decimal.Decimal // entero estrictamente positivo
	CreatedAt      time.Time
	CreatedBy      string // UserID
}

// Kind clasifica el movimiento en una de las tres formas según sus extremos.
// Un movimiento sin extremos no es construible vía la puerta de validación;
// si aparece (fila corrupta), Kind devuelve cadena vacía y el agregador lo
// reporta como inconsistencia.
func (m *Movement) Kind() string {
	switch {
	case m.FromLocationID != "" && m.ToLocationID != "":
		return MovementKindTRANSFER
	case m.ToLocationID != "":
		return MovementKindIN
	case m.FromLocationID != "":
		return MovementKindOUT
	}
	return ""
}
