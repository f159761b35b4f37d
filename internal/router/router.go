package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"saldoamigo/internal/auth"
	"saldoamigo/internal/handler"
	appmiddleware "saldoamigo/internal/middleware"
	"saldoamigo/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokens *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	accountHandler *handler.AccountHandler,
	groupHandler *handler.GroupHandler,
	transactionHandler *handler.TransactionHandler,
) {
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Recover())
	e.Use(echoprometheus.NewMiddleware("saldoamigo"))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes: login and registration never see the gate.
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Everything below requires a verified bearer token.
	secured := api.Group("", appmiddleware.Auth(tokens))

	anyRole := appmiddleware.RBAC(model.RoleAdmin, model.RoleUser)
	adminOnly := appmiddleware.RBAC(model.RoleAdmin)

	users := secured.Group("/users")
	users.POST("", userHandler.Create, adminOnly)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/find/username/:username", userHandler.FindByUsername, adminOnly)
	users.GET("/:id", userHandler.Get, anyRole)
	users.PUT("", userHandler.Update, anyRole)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	accounts := secured.Group("/accounts", anyRole)
	accounts.POST("", accountHandler.Create)
	accounts.GET("", accountHandler.List)
	accounts.GET("/find/name/:name", accountHandler.FindByName)
	accounts.GET("/find/city/:city", accountHandler.FindByCity)
	accounts.GET("/find/pixKey/:pixKey", accountHandler.FindByPixKey)
	accounts.GET("/find/user/:userId", accountHandler.FindByUser)
	accounts.GET("/:id", accountHandler.Get)
	accounts.PUT("", accountHandler.Update)
	accounts.DELETE("/:id", accountHandler.Delete, adminOnly)

	groups := secured.Group("/groups", anyRole)
	groups.POST("", groupHandler.Create)
	groups.GET("", groupHandler.List)
	groups.GET("/find/name/:name", groupHandler.FindByName)
	groups.GET("/find/user/:userId", groupHandler.FindByUser)
	groups.GET("/:id", groupHandler.Get)
	groups.PUT("", groupHandler.Update)
	groups.DELETE("/:id", groupHandler.Delete, adminOnly)

	transactions := secured.Group("/transactions", anyRole)
	transactions.POST("", transactionHandler.Create)
	transactions.GET("", transactionHandler.List)
	transactions.GET("/find/date/:date", transactionHandler.FindByDate)
	transactions.GET("/find/account/:accountId", transactionHandler.FindByAccount)
	transactions.GET("/find/group/:groupId", transactionHandler.FindByGroup)
	transactions.GET("/:id", transactionHandler.Get)
	transactions.PUT("", transactionHandler.Update)
	transactions.DELETE("/:id", transactionHandler.Delete, adminOnly)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
