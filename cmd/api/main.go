package main

import (
	"docbook/cmd/internal/config"
	"docbook/cmd/internal/domain/sqlite"
	"docbook/cmd/internal/domain/sqlite/repository"
	"docbook/cmd/internal/routes"
	"docbook/cmd/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// Reference remote store for local development of the booking screen.
func main() {
	cfg := config.Load()
	log.SetLevel(cfg.GommonLevel())

	validate := validator.New()

	// Init SQLite
	db, err := sqlite.Init(cfg.StoreDBPath)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	// Getting repositories
	doctorRepo := repository.NewDoctorRepository(db)
	apptRepo := repository.NewAppointmentRepository(db)

	// Getting services
	doctorService := service.NewDoctorService(doctorRepo)
	apptService := service.NewAppointmentService(apptRepo, validate)

	// Getting routes
	doctorRoutes := routes.NewDoctorDefault(doctorService)
	apptRoutes := routes.NewAppointmentDefault(apptService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Doctors
	e.GET("/doctors", doctorRoutes.GetDoctors)

	// Appointments
	e.GET("/appointments", apptRoutes.GetAppointments)
	e.POST("/appointments", apptRoutes.CreateAppointment)
	e.PATCH("/appointments/:id", apptRoutes.UpdateStatus)

	err = e.Start(cfg.StoreAddr)
	if err != nil {
		e.Logger.Fatal(err)
	}
}
