package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/attendease/attendease-backend-go/internal/config"
	"github.com/attendease/attendease-backend-go/internal/domain/settings"
	appHTTP "github.com/attendease/attendease-backend-go/internal/handler/http"
	"github.com/attendease/attendease-backend-go/internal/pkg/cron"
	"github.com/attendease/attendease-backend-go/internal/pkg/database"
	"github.com/attendease/attendease-backend-go/internal/pkg/email"
	"github.com/attendease/attendease-backend-go/internal/pkg/jwt"
	"github.com/attendease/attendease-backend-go/internal/pkg/oauth"
	"github.com/attendease/attendease-backend-go/internal/pkg/sse"
	"github.com/attendease/attendease-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendease/attendease-backend-go/internal/service/attendance"
	authService "github.com/attendease/attendease-backend-go/internal/service/auth"
	dashboardService "github.com/attendease/attendease-backend-go/internal/service/dashboard"
	employeeService "github.com/attendease/attendease-backend-go/internal/service/employee"
	geofenceService "github.com/attendease/attendease-backend-go/internal/service/geofence"
	leaveService "github.com/attendease/attendease-backend-go/internal/service/leave"
	settingsService "github.com/attendease/attendease-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewAttendanceEventRepository(db)
	summaryRepo := postgresql.NewDaySummaryRepository(db)
	geofenceRepo := postgresql.NewGeofenceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	defaultEmail := settings.EmailSettings{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Enabled:  cfg.SMTP.Host != "",
	}
	emailSvc, err := email.NewEmailService(defaultEmail)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	// Admin-managed SMTP settings stored in the database win over the
	// environment defaults
	if stored, err := settingsRepo.GetEmailSettings(context.Background()); err == nil {
		emailSvc.UpdateSettings(stored)
	}

	defaultPolicy := settings.WorkPolicy{
		StandardWorkMinutes: cfg.Attendance.StandardWorkMinutes,
		LateThreshold:       cfg.Attendance.LateThreshold,
		HalfDayBelowMinutes: cfg.Attendance.HalfDayBelowMinutes,
		DefaultRadiusMeters: cfg.Attendance.DefaultRadiusMeters,
		Timezone:            cfg.Attendance.Timezone,
	}

	settingsSvc := settingsService.NewSettingsService(settingsRepo, emailSvc, defaultPolicy, defaultEmail)
	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo, googleSvc, emailSvc, cfg.App.FrontendURL)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	geofenceSvc := geofenceService.NewGeofenceService(geofenceRepo, settingsSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, summaryRepo, settingsSvc)
	attendanceSvc := attendanceService.NewAttendanceService(
		eventRepo,
		summaryRepo,
		geofenceRepo,
		employeeRepo,
		leaveRepo,
		settingsSvc,
		hub,
		emailSvc,
	)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, settingsSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceSvc, eventRepo, summaryRepo, employeeRepo, leaveRepo, settingsSvc)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtSvc, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Geofence:   appHTTP.NewGeofenceHandler(geofenceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		SSE:        appHTTP.NewSSEHandler(jwtSvc, hub),
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:            cfg.App.Env,
		AllowedOrigins: []string{cfg.App.FrontendURL},
	}, jwtSvc, handlers)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Server running at http://localhost%s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		fmt.Println("Server error:", err)
	}
}
