package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/config"
	appHTTP "github.com/staffhub/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/oauth"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub/staffhub-backend-go/internal/service/attendance"
	authService "github.com/staffhub/staffhub-backend-go/internal/service/auth"
	dashboardService "github.com/staffhub/staffhub-backend-go/internal/service/dashboard"
	leaveService "github.com/staffhub/staffhub-backend-go/internal/service/leave"
	masterService "github.com/staffhub/staffhub-backend-go/internal/service/master"
	profileService "github.com/staffhub/staffhub-backend-go/internal/service/profile"
	taskService "github.com/staffhub/staffhub-backend-go/internal/service/task"
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

	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(txManager, userRepo, departmentRepo, positionRepo, jwtSvc, jwtRepo, cfg.Leave.Allowance)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRepo, userRepo, leaveService.Caps{
		Casual: cfg.Leave.CasualCap,
		Sick:   cfg.Leave.SickCap,
	})
	taskSvc := taskService.NewTaskService(taskRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.Attendance.OfficeStart, cfg.Attendance.Timezone, nil)
	masterSvc := masterService.NewMasterService(txManager, departmentRepo, positionRepo, userRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, cfg.Attendance.Timezone)
	profileSvc := profileService.NewProfileService(userRepo, leaveRepo, taskRepo, attendanceRepo)

	router := appHTTP.NewRouter(jwtSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc),
		Profile:    appHTTP.NewProfileHandler(profileSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
