package app

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"

	"renovation-marketplace-api/internal/config"
	"renovation-marketplace-api/internal/controller"
	"renovation-marketplace-api/internal/repo"
	"renovation-marketplace-api/internal/service"
	"renovation-marketplace-api/pkg/http_server"
	"renovation-marketplace-api/pkg/postgres"
)

func runMigrations(postgresDB *postgres.Postgres, cfg *config.Config) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: cfg.DatabaseName})
	if err != nil {
		log.Fatal(err)
	}

	migrations, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, cfg.DatabaseName, driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Println("no change made by migration scripts")
		} else {
			log.Fatal(err)
		}
	}
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error occurred while loading configuration: ", err)
	}

	log.Println("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		log.Fatal("Error occurred while connecting to db: ", err)
	}
	defer postgresDB.Close()

	log.Println("Running migrations...")
	runMigrations(postgresDB, cfg)

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories, service.AuthDeps{
		JwtSecret: cfg.JwtSecret,
		TokenTTL:  cfg.JwtTTL,
	})
	handler := echo.New()

	log.Println("Setup routes...")
	limiter := controller.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	controller.SetupRoutesHandlers(handler, services, limiter)

	log.Println("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress, cfg.ShutdownTimeout)

	log.Println("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Fatal("Notify error: ", err)
	}

	log.Println("Shutting down...")
	err = httpServer.Shutdown()
	if err != nil {
		log.Fatal("Shutdown error: ", err)
	} else {
		log.Println("Successful shutdown")
	}
}
