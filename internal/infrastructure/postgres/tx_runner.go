package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/driveops/driveops-api/internal/application/usecase"
	"github.com/driveops/driveops-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TransferTxRunner.
var _ usecase.TransferTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunTransfer inicia una transacción, ejecuta fn con el repo de propiedades
// atado a la tx y hace Commit o Rollback. El cierre de la propiedad vigente y
// el alta de la nueva quedan en la misma transacción: nunca se observa un
// vehículo con dos dueños vigentes ni con el dueño cerrado a medias.
func (r *TxRunner) RunTransfer(ctx context.Context, fn func(ownerships repository.VehicleOwnershipRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ownershipRepo := NewVehicleOwnershipRepository(tx)

	if err := fn(ownershipRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
