package usecase

import (
	"context"

	"github.com/driveops/driveops-api/internal/domain/repository"
)

// TransferTxRunner ejecuta el callback de transferencia dentro de una
// transacción: apagar el flag del dueño actual e insertar el nuevo registro
// deben confirmarse juntos o no confirmarse, porque un commit parcial violaría
// el invariante de dueño único.
type TransferTxRunner interface {
	RunTransfer(ctx context.Context, fn func(ownerships repository.VehicleOwnershipRepository) error) error
}
