// seed puebla la base de datos con un catálogo de demostración: 3 productos,
// 3 ubicaciones y 20 movimientos que dejan saldos representativos (entradas,
// traslados y salidas). Pensado para entornos de desarrollo y demos.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que el API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
	"github.com/jhoicas/Kardex-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Kardex-api/pkg/config"
)

type seedMovement struct {
	product string // nombre de producto
	from    string // nombre de ubicación origen ("" = entrada)
	to      string // nombre de ubicación destino ("" = salida)
	qty     int64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	products := []*entity.Product{
		{ID: uuid.New().String(), Name: "Laptop Pro", Description: "High-end laptop model", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: `Monitor 27"`, Description: "4K display", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Keyboard Mech", Description: "Mechanical Keyboard", CreatedAt: time.Now()},
	}
	locations := []*entity.Location{
		{ID: uuid.New().String(), Name: "Warehouse A", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Shop Floor", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Receiving Dock", CreatedAt: time.Now()},
	}

	productID := make(map[string]string, len(products))
	for _, p := range products {
		productID[p.Name] = p.ID
	}
	locationID := make(map[string]string, len(locations))
	for _, l := range locations {
		locationID[l.Name] = l.ID
	}

	movements := []seedMovement{
		{product: "Laptop Pro", to: "Warehouse A", qty: 50},
		{product: `Monitor 27"`, to: "Warehouse A", qty: 100},
		{product: "Laptop Pro", to: "Shop Floor", qty: 10},
		{product: "Laptop Pro", from: "Warehouse A", to: "Shop Floor", qty: 5},
		{product: "Laptop Pro", from: "Shop Floor", qty: 1},
		{product: `Monitor 27"`, to: "Shop Floor", qty: 5},
		{product: `Monitor 27"`, from: "Warehouse A", to: "Shop Floor", qty: 2},
		{product: "Keyboard Mech", to: "Warehouse A", qty: 80},
		{product: "Keyboard Mech", from: "Warehouse A", to: "Receiving Dock", qty: 10},
		{product: `Monitor 27"`, from: "Shop Floor", qty: 3},
		{product: "Laptop Pro", from: "Warehouse A", to: "Shop Floor", qty: 2},
		{product: `Monitor 27"`, from: "Warehouse A", to: "Shop Floor", qty: 10},
		{product: "Keyboard Mech", from: "Warehouse A", qty: 5},
		{product: "Laptop Pro", from: "Shop Floor", qty: 1},
		{product: `Monitor 27"`, from: "Shop Floor", qty: 1},
		{product: "Laptop Pro", to: "Warehouse A", qty: 20},
		{product: "Keyboard Mech", to: "Receiving Dock", qty: 5},
		{product: "Keyboard Mech", from: "Receiving Dock", qty: 2},
		{product: `Monitor 27"`, from: "Warehouse A", qty: 5},
		{product: "Laptop Pro", from: "Warehouse A", to: "Receiving Dock", qty: 10},
	}

	// Todo el seed se inserta en una sola transacción: o queda completo o no queda nada.
	txRunner := postgres.NewTxRunner(pool)
	err = txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error {
		for _, p := range products {
			if err := productRepo.Create(p); err != nil {
				return fmt.Errorf("producto %q: %w", p.Name, err)
			}
		}
		for _, l := range locations {
			if err := locationRepo.Create(l); err != nil {
				return fmt.Errorf("ubicación %q: %w", l.Name, err)
			}
		}
		for i, sm := range movements {
			mov := &entity.Movement{
				ID:             uuid.New().String(),
				ProductID:      productID[sm.product],
				FromLocationID: locationID[sm.from],
				ToLocationID:   locationID[sm.to],
				Quantity:       decimal.NewFromInt(sm.qty),
				CreatedAt:      time.Now(),
			}
			if err := movRepo.Create(mov); err != nil {
				return fmt.Errorf("movimiento #%d (%s): %w", i+1, sm.product, err)
			}
		}
		return nil
	})
	if err != nil {
		fail("seed: %v", err)
	}

	fmt.Printf("Seed completo: %d productos, %d ubicaciones, %d movimientos.\n",
		len(products), len(locations), len(movements))
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
