package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// TestMovementKind verifica la clasificación derivada de los extremos:
// solo destino = IN, solo origen = OUT, ambos = TRANSFER, ninguno = inválido.
func TestMovementKind(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want string
	}{
		{"entrada", "", "loc-a", entity.MovementKindIN},
		{"salida", "loc-a", "", entity.MovementKindOUT},
		{"traslado", "loc-a", "loc-b", entity.MovementKindTRANSFER},
		{"sin extremos", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &entity.Movement{
				ProductID:      "prod-1",
				FromLocationID: tc.from,
				ToLocationID:   tc.to,
				Quantity:       decimal.NewFromInt(1),
			}
			assert.Equal(t, tc.want, m.Kind())
		})
	}
}
