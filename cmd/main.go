package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "quizdeck/docs"
	"quizdeck/internal/handlers"
	"quizdeck/internal/logger"
	"quizdeck/internal/repository"
	"quizdeck/internal/repository/db"
	"quizdeck/internal/server"
	"quizdeck/internal/service"

	"github.com/spf13/viper"
)

const seedTimeout = 15 * time.Second

// @title        QuizDeck API
// @version      1.0
// @description  Quiz authoring and quiz taking data service.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// init logger
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(service.Deps{
		Repos:         repos,
		SigningKey:    viper.GetString("jwt.secret"),
		AdminUsername: viper.GetString("admin.username"),
		AdminPassword: viper.GetString("admin.password"),
		SeedSamples:   viper.GetBool("seed.sample_quizzes"),
		Log:           log,
	})
	apiHandler := handlers.NewHandler(services, log)

	// one-time idempotent seed before accepting traffic
	if err := runSeed(services); err != nil {
		log.Fatalw("startup seed failed", "err", err)
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	// The signing secret may come from the environment instead of the file.
	viper.SetDefault("jwt.secret", "")
	if err := viper.BindEnv("jwt.secret", "JWT_SECRET"); err != nil {
		return err
	}
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "quizdeck.db")
		dbPath = "quizdeck.db"
	}
	return db.InitDB(dbPath)
}

// runSeed ensures the admin account (and, per deployment, sample quizzes) exist.
func runSeed(services *service.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	return services.Seeder.Run(ctx)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
