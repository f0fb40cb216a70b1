package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// RegisterMovementUseCase es la puerta única de validación del kardex: todo
// movimiento candidato pasa por aquí antes de cualquier mutación. En caso de
// rechazo no queda ningún efecto secundario.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// MovementInputDTO entrada para registrar un movimiento.
// Entrada: solo ToLocationID. Salida: solo FromLocationID. Traslado: ambos.
type MovementInputDTO struct {
	UserID         string
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       decimal.Decimal
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	return uc.RegisterMovement(ctx, MovementInputDTO{
		UserID:         userID,
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
	})
}

// RegisterMovement valida el candidato y, si pasa, lo admite al kardex con ID
// y timestamp frescos dentro de una transacción.
//
// Rechazos (cada uno con su error específico, antes de tocar el almacén):
//   - ErrInvalidQuantity: cantidad cero, negativa o no entera
//   - ErrMissingEndpoint: sin origen ni destino
//   - ErrSameLocation: origen y destino iguales (auto-traslado)
//   - ErrUnknownReference: producto o ubicación inexistente
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*entity.Movement, error) {
	if input.ProductID == "" {
		return nil, domain.ErrUnknownReference
	}
	// La cantidad viaja como decimal pero el kardex solo admite enteros positivos.
	if input.Quantity.Sign() <= 0 || !input.Quantity.IsInteger() {
		return nil, domain.ErrInvalidQuantity
	}
	if input.FromLocationID == "" && input.ToLocationID == "" {
		return nil, domain.ErrMissingEndpoint
	}
	if input.FromLocationID != "" && input.FromLocationID == input.ToLocationID {
		return nil, domain.ErrSameLocation
	}

	// Integridad referencial: producto y ubicaciones deben existir ya.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("verificar producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrUnknownReference
	}
	for _, locID := range []string{input.FromLocationID, input.ToLocationID} {
		if locID == "" {
			continue
		}
		loc, err := uc.locationRepo.GetByID(locID)
		if err != nil {
			return nil, fmt.Errorf("verificar ubicación: %w", err)
		}
		if loc == nil {
			return nil, domain.ErrUnknownReference
		}
	}

	mov := &entity.Movement{
		ID:             uuid.New().String(),
		ProductID:      input.ProductID,
		FromLocationID: input.FromLocationID,
		ToLocationID:   input.ToLocationID,
		Quantity:       input.Quantity,
		CreatedAt:      time.Now(),
		CreatedBy:      input.UserID,
	}

	// Inserción atómica; Commit si todo ok, Rollback si algo falla.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.ProductRepository,
		_ repository.LocationRepository,
	) error {
		return movRepo.Create(mov)
	})
	if err != nil {
		// Una violación de FK dentro de la tx (carrera con el chequeo de arriba)
		// ya viene mapeada por el repo; cualquier otro fallo del almacén se
		// reporta como error de persistencia sin efecto parcial visible.
		if errors.Is(err, domain.ErrUnknownReference) {
			return nil, domain.ErrUnknownReference
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return mov, nil
}
