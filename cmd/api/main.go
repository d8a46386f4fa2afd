package main

import (
	"fmt"
	"net/http"

	"github.com/ezbpo/staff-activity-backend-go/internal/config"
	appHTTP "github.com/ezbpo/staff-activity-backend-go/internal/handler/http"
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/database"
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/jwt"
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/sse"
	"github.com/ezbpo/staff-activity-backend-go/internal/repository/postgresql"
	"github.com/ezbpo/staff-activity-backend-go/internal/service/activity"
	serviceAuth "github.com/ezbpo/staff-activity-backend-go/internal/service/auth"
	dashboardService "github.com/ezbpo/staff-activity-backend-go/internal/service/dashboard"
	masterService "github.com/ezbpo/staff-activity-backend-go/internal/service/master"
	reportService "github.com/ezbpo/staff-activity-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	statusEntryRepo := postgresql.NewStatusEntryRepository(db)
	statusDefinitionRepo := postgresql.NewStatusDefinitionRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()
	loader := activity.NewLoader(staffRepo, statusEntryRepo, statusDefinitionRepo, departmentRepo, projectRepo)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	dashboardSvc := dashboardService.NewDashboardService(loader, statusEntryRepo, staffRepo, hub)
	masterSvc := masterService.NewMasterDataService(departmentRepo, projectRepo, statusDefinitionRepo)
	reportSvc := reportService.NewReportService(loader)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	masterHandler := appHTTP.NewMasterDataHandler(masterSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	eventsHandler := appHTTP.NewEventsHandler(JWTService, hub)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		dashboardHandler,
		masterHandler,
		reportHandler,
		eventsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
