package main

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"saldoamigo/internal/config"
	"saldoamigo/internal/db"
	"saldoamigo/internal/model"
	"saldoamigo/internal/repository"
	"saldoamigo/pkg/logger"
)

const seedPassword = "password123"

// Seeds a default admin plus a small demo data set so the API is usable
// right after a fresh start. Existing users are left untouched.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

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

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	accounts := repository.NewAccountRepository(gormDB)
	groups := repository.NewGroupRepository(gormDB)
	transactions := repository.NewTransactionRepository(gormDB)

	admin, err := seedUser(ctx, users, "admin", "admin@saldoamigo.local", model.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
	demo, err := seedUser(ctx, users, "maria", "maria@saldoamigo.local", model.RoleUser)
	if err != nil {
		log.Fatal().Err(err).Msg("seed demo user")
	}

	account := &model.Account{
		Name:   "Maria's account",
		PixKey: "maria@saldoamigo.local",
		City:   "São Paulo",
		UserID: demo.ID,
	}
	if err := accounts.Create(ctx, account); err != nil {
		log.Fatal().Err(err).Msg("seed account")
	}

	group := &model.Group{
		Name:        "Road trip",
		Description: "Gas, food and tolls",
		UserID:      demo.ID,
	}
	if err := groups.Create(ctx, group); err != nil {
		log.Fatal().Err(err).Msg("seed group")
	}

	transaction := &model.Transaction{
		Value:     decimal.NewFromFloat(125.50),
		AccountID: account.ID,
		GroupID:   group.ID,
	}
	if err := transactions.Create(ctx, transaction); err != nil {
		log.Fatal().Err(err).Msg("seed transaction")
	}

	log.Info().
		Uint("admin_id", admin.ID).
		Uint("demo_user_id", demo.ID).
		Msg("seed complete")
}

func seedUser(ctx context.Context, users repository.UserRepository, username, email string, role model.Role) (*model.User, error) {
	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		Phone:        "+55 11 99999-0000",
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
