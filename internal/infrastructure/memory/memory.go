// Package memory implementa los puertos de persistencia sobre mapas en
// memoria protegidos por mutex. Se usa como doble de pruebas de los casos de
// uso; los adaptadores devuelven copias para que una mutación no confirmada
// nunca toque el almacén.
package memory

import (
	"context"
	"sync"

	"github.com/driveops/driveops-api/internal/domain/repository"
)

// TxRunner versión en memoria del runner transaccional: ejecuta el callback
// directamente contra el repo. No hay rollback; las pruebas que lo usan solo
// ejercitan el camino de commit.
type TxRunner struct {
	ownerships *VehicleOwnershipRepo
}

// NewTxRunner construye el runner con el repo de propiedad en memoria.
func NewTxRunner(ownerships *VehicleOwnershipRepo) *TxRunner {
	return &TxRunner{ownerships: ownerships}
}

// RunTransfer ejecuta fn contra el repo en memoria.
func (r *TxRunner) RunTransfer(_ context.Context, fn func(ownerships repository.VehicleOwnershipRepository) error) error {
	return fn(r.ownerships)
}

// store mapa genérico protegido por mutex, base de todos los repos en memoria.
type store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func newStore[T any]() *store[T] {
	return &store[T]{items: make(map[string]T)}
}
