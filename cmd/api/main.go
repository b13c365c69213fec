package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/driveops/driveops-api/internal/application/usecase"
	"github.com/driveops/driveops-api/internal/infrastructure/postgres"
	httpRouter "github.com/driveops/driveops-api/internal/interfaces/http"
	"github.com/driveops/driveops-api/pkg/config"
	"github.com/driveops/driveops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	ownershipRepo := postgres.NewVehicleOwnershipRepository(pool)
	technicianRepo := postgres.NewTechnicianRepository(pool)
	jobOrderRepo := postgres.NewJobOrderRepository(pool)
	issueRepo := postgres.NewReportedIssueRepository(pool)
	findingRepo := postgres.NewInspectionFindingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := usecase.NewCustomerUseCase(customerRepo, ownershipRepo, vehicleRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, ownershipRepo)
	ownershipUC := usecase.NewVehicleOwnershipUseCase(ownershipRepo, vehicleRepo, customerRepo, txRunner)
	technicianUC := usecase.NewTechnicianUseCase(technicianRepo)
	jobOrderUC := usecase.NewJobOrderUseCase(jobOrderRepo, customerRepo, vehicleRepo, technicianRepo)
	issueUC := usecase.NewReportedIssueUseCase(issueRepo, jobOrderRepo)
	findingUC := usecase.NewInspectionFindingUseCase(findingRepo, jobOrderRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:   customerUC,
		VehicleUC:    vehicleUC,
		OwnershipUC:  ownershipUC,
		TechnicianUC: technicianUC,
		JobOrderUC:   jobOrderUC,
		IssueUC:      issueUC,
		FindingUC:    findingUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
