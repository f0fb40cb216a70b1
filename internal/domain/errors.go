package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada uno se traduce en la capa HTTP a un código distinto: nunca se presenta
// un error genérico cuando se conoce la causa específica.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicateName      = errors.New("ya existe un registro con ese nombre")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Validación de movimientos (puerta única antes de tocar el kardex).
	ErrInvalidQuantity  = errors.New("la cantidad debe ser un entero mayor que cero")
	ErrMissingEndpoint  = errors.New("se requiere al menos ubicación origen o destino")
	ErrSameLocation     = errors.New("la ubicación origen y destino no pueden ser la misma")
	ErrUnknownReference = errors.New("el producto o la ubicación referenciada no existe")

	// ErrPersistence: el almacén no pudo registrar el movimiento. Garantía:
	// ningún efecto parcial quedó visible; el caller puede reintentar completo.
	ErrPersistence = errors.New("error de persistencia al registrar el movimiento")

	// ErrInconsistentLedger: el kardex contiene una referencia a una entidad
	// inexistente. Inalcanzable bajo los invariantes actuales (no hay borrado);
	// el agregador lo reporta en vez de omitir filas en silencio.
	ErrInconsistentLedger = errors.New("el kardex referencia entidades inexistentes")
)
