package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/stafflane/hradmin-backend-go/internal/config"
	appHTTP "github.com/stafflane/hradmin-backend-go/internal/handler/http"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/database"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/jwt"
	"github.com/stafflane/hradmin-backend-go/internal/pkg/storage"
	"github.com/stafflane/hradmin-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafflane/hradmin-backend-go/internal/service/attendance"
	authService "github.com/stafflane/hradmin-backend-go/internal/service/auth"
	employeeService "github.com/stafflane/hradmin-backend-go/internal/service/employee"
	"github.com/stafflane/hradmin-backend-go/internal/service/file"
	reportService "github.com/stafflane/hradmin-backend-go/internal/service/report"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	adminRepo := postgresql.NewAdminRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
	default:
		return fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	auth := authService.NewAuthService(adminRepo, jwtService)
	employees := employeeService.NewEmployeeService(employeeRepo, fileService)
	attendance := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	reports := reportService.NewReportService(attendanceRepo, employeeRepo)

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewAuthHandler(auth),
		appHTTP.NewEmployeeHandler(employees),
		appHTTP.NewAttendanceHandler(attendance, reports),
		appHTTP.RouterConfig{UploadsDir: cfg.Storage.BasePath},
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("server listening", "addr", addr)
	return http.ListenAndServe(addr, router)
}
