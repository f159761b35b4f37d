package main

import (
	"net/http"

	_ "saldoamigo/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"saldoamigo/internal/auth"
	"saldoamigo/internal/cache"
	"saldoamigo/internal/config"
	"saldoamigo/internal/db"
	"saldoamigo/internal/handler"
	"saldoamigo/internal/model"
	"saldoamigo/internal/repository"
	"saldoamigo/internal/router"
	"saldoamigo/internal/service"
	"saldoamigo/pkg/logger"
)

// @title SaldoAmigo API
// @version 1.0
// @description Split expenses API with users, accounts, groups, transactions and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Account{},
		&model.Group{},
		&model.Transaction{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	accountRepo := repository.NewAccountRepository(gormDB)
	groupRepo := repository.NewGroupRepository(gormDB)
	transactionRepo := repository.NewTransactionRepository(gormDB)

	// The signing secret is loaded once and never mutated; rotating it
	// requires a restart and invalidates all outstanding tokens.
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	accountService := service.NewAccountService(accountRepo, cacheClient)
	groupService := service.NewGroupService(groupRepo)
	transactionService := service.NewTransactionService(transactionRepo, accountRepo, groupRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	accountHandler := handler.NewAccountHandler(accountService)
	groupHandler := handler.NewGroupHandler(groupService)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	e := echo.New()
	e.HideBanner = true
	router.Register(
		e,
		jwtService,
		authHandler,
		userHandler,
		accountHandler,
		groupHandler,
		transactionHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
