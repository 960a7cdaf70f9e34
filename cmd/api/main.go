package main

import (
	"eclat/cmd/internal/config"
	"eclat/cmd/internal/domain/sqlite"
	"eclat/cmd/internal/domain/sqlite/repository"
	"eclat/cmd/internal/integration/mail"
	"eclat/cmd/internal/routes"
	"eclat/cmd/internal/service"
	"eclat/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	// Init SQLite
	db, err := sqlite.Init(config.DatabasePath())
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	// Messaging collaborator (fire-and-forget, Mailpit-compatible)
	mailer := mail.NewSMTPMailer(config.SMTPHost(), config.SMTPPort(), config.MailFrom())

	// Getting repositories
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	beauticianRepo := repository.NewBeauticianRepository(db)
	apptRepo := repository.NewAppointmentRepository(db)

	// Getting services
	availabilityService := service.NewAvailabilityService(apptRepo, beauticianRepo, serviceRepo)
	apptService := service.NewAppointmentService(apptRepo, serviceRepo, beauticianRepo, userRepo, mailer, validate)
	beauticianService := service.NewBeauticianService(beauticianRepo, validate, config.DefaultWeekHours())
	catalogService := service.NewCatalogService(serviceRepo, validate)

	// Getting routes
	apptRoutes := routes.NewAppointmentDefault(apptService, availabilityService)
	beauticianRoutes := routes.NewBeauticianDefault(beauticianService)
	catalogRoutes := routes.NewCatalogDefault(catalogService)

	e := echo.New()
	e.Use(middleware.CORS())

	// Appointments
	e.GET("/api/appointments/availability", apptRoutes.GetAvailability)
	e.GET("/api/appointments/my-appointments", apptRoutes.GetMyAppointments)
	e.GET("/api/appointments", apptRoutes.GetAppointments)
	e.GET("/api/appointments/:id", apptRoutes.GetAppointment)
	e.POST("/api/appointments", apptRoutes.CreateAppointment)
	e.PUT("/api/appointments/:id/status", apptRoutes.UpdateAppointmentStatus)
	e.PUT("/api/appointments/:id/cancel", apptRoutes.CancelAppointment)

	// Beauticians (personnel)
	e.GET("/api/beauticians", beauticianRoutes.GetBeauticians)
	e.GET("/api/beauticians/:id", beauticianRoutes.GetBeautician)
	e.POST("/api/beauticians", beauticianRoutes.CreateBeautician)
	e.PUT("/api/beauticians/:id/working-hours", beauticianRoutes.UpdateWorkingHours)

	// Services (catalog)
	e.GET("/api/services", catalogRoutes.GetServices)
	e.GET("/api/services/:id", catalogRoutes.GetService)
	e.POST("/api/services", catalogRoutes.CreateService)

	err = e.Start(config.ListenAddr())
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("timeslot", validators.IsTimeSlot)
	_ = validate.RegisterValidation("dateonly", validators.IsDateOnly)
}
