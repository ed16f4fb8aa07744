package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/expertsdental/clinic-system/internal/api/handler"
	"github.com/expertsdental/clinic-system/internal/api/middleware"
	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/service"
	"github.com/expertsdental/clinic-system/internal/i18n"
	mongorepo "github.com/expertsdental/clinic-system/internal/infrastructure/db/mongo"
	redisinfra "github.com/expertsdental/clinic-system/internal/infrastructure/db/redis"
	"github.com/expertsdental/clinic-system/internal/infrastructure/storage"
	"github.com/expertsdental/clinic-system/internal/webapp"
)

// RouterDeps carries the external connections and settings the router needs.
type RouterDeps struct {
	Mongo         *mongo.Database
	Redis         *redis.Client
	Storage       *storage.ImageStore
	JWTSecret     string
	SecureCookies bool
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Repositories ---
	counters := mongorepo.NewCounters(deps.Mongo)
	userRepo := mongorepo.NewUserRepository(deps.Mongo, counters)
	patientRepo := mongorepo.NewPatientRepository(deps.Mongo, counters)
	procedureRepo := mongorepo.NewProcedureRepository(deps.Mongo, counters)
	appointmentRepo := mongorepo.NewAppointmentRepository(deps.Mongo, counters)
	visitRepo := mongorepo.NewVisitRepository(deps.Mongo, counters)
	paymentRepo := mongorepo.NewPaymentRepository(deps.Mongo, counters)
	imageRepo := mongorepo.NewImageRepository(deps.Mongo, counters)
	revoker := redisinfra.NewRevocationStore(deps.Redis)

	// --- Services ---
	authService := service.NewAuthService(userRepo, revoker, deps.JWTSecret, deps.Logger)
	userService := service.NewUserService(userRepo, deps.Logger)
	patientService := service.NewPatientService(patientRepo, visitRepo, paymentRepo, appointmentRepo, imageRepo, deps.Logger)
	procedureService := service.NewProcedureService(procedureRepo, deps.Logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, userRepo, deps.Logger)
	visitService := service.NewVisitService(visitRepo, patientRepo, userRepo, procedureRepo, deps.Logger)
	paymentService := service.NewPaymentService(paymentRepo, patientRepo, userRepo, deps.Logger)
	imageService := service.NewImageService(imageRepo, patientRepo, userRepo, deps.Storage, deps.Logger)

	bundle, err := i18n.NewBundle()
	if err != nil {
		return nil, err
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, deps.JWTSecret, deps.SecureCookies)
	userHandler := handler.NewUserHandler(userService)
	patientHandler := handler.NewPatientHandler(patientService)
	procedureHandler := handler.NewProcedureHandler(procedureService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	visitHandler := handler.NewVisitHandler(visitService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	imageHandler := handler.NewImageHandler(imageService)
	i18nHandler := handler.NewI18nHandler(bundle)

	session := middleware.Session(deps.JWTSecret, revoker)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	adminOrReception := middleware.RequireRoles(domain.RoleAdmin, domain.RoleReceptionist)
	doctorOrAdmin := middleware.RequireRoles(domain.RoleAdmin, domain.RoleDoctor)

	// --- Public routes ---
	api := e.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/i18n/:lang", i18nHandler.Table)
	api.POST("/i18n/language", i18nHandler.SetLanguage)

	// --- Authenticated routes ---
	auth := api.Group("", session)
	auth.GET("/auth/me", authHandler.Me)
	auth.POST("/auth/change-password", authHandler.ChangePassword)

	auth.GET("/doctors", userHandler.ListDoctors)

	auth.POST("/users", userHandler.Create, adminOnly)
	auth.GET("/users", userHandler.List, adminOnly)
	auth.PUT("/users/:id", userHandler.Update, adminOnly)
	auth.DELETE("/users/:id", userHandler.Delete, adminOnly)

	auth.POST("/patients", patientHandler.Create)
	auth.GET("/patients", patientHandler.List)
	auth.GET("/patients/:id", patientHandler.Get)
	auth.PUT("/patients/:id", patientHandler.Update)
	auth.DELETE("/patients/:id", patientHandler.Delete, adminOnly)

	auth.POST("/procedures", procedureHandler.Create, adminOnly)
	auth.GET("/procedures", procedureHandler.List)
	auth.PUT("/procedures/:id", procedureHandler.Update, adminOnly)
	auth.DELETE("/procedures/:id", procedureHandler.Delete, adminOnly)

	auth.POST("/appointments", appointmentHandler.Create)
	auth.GET("/appointments", appointmentHandler.List)
	auth.PUT("/appointments/:id", appointmentHandler.Update)
	auth.DELETE("/appointments/:id", appointmentHandler.Delete, adminOrReception)

	auth.POST("/visits", visitHandler.Create, doctorOrAdmin)
	auth.GET("/visits", visitHandler.List)
	auth.PUT("/visits/:id", visitHandler.Update, doctorOrAdmin)

	auth.POST("/payments", paymentHandler.Create, adminOrReception)
	auth.GET("/payments", paymentHandler.List)

	auth.POST("/images/upload", imageHandler.Upload, doctorOrAdmin)
	auth.GET("/images/patient/:id", imageHandler.ListByPatient)
	auth.GET("/images/:id", imageHandler.Serve)
	auth.DELETE("/images/:id", imageHandler.Delete, doctorOrAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis, deps.Storage)

	e.GET("/health", healthHandler.Liveness)             // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)   // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Server-rendered shell ---
	shell := webapp.NewHandler(bundle, revoker, deps.JWTSecret, deps.Logger)
	shell.Register(e)

	return e, nil
}
