package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/dakoku/timeclock-backend-go/internal/config"
	appHTTP "github.com/dakoku/timeclock-backend-go/internal/handler/http"
	"github.com/dakoku/timeclock-backend-go/internal/pkg/jwt"
	"github.com/dakoku/timeclock-backend-go/internal/repository/sheets"
	attendanceService "github.com/dakoku/timeclock-backend-go/internal/service/attendance"
	serviceAuth "github.com/dakoku/timeclock-backend-go/internal/service/auth"
	employeeService "github.com/dakoku/timeclock-backend-go/internal/service/employee"
	summaryService "github.com/dakoku/timeclock-backend-go/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	sheetsClient, err := sheets.NewClient(context.Background(), cfg.Sheets)
	if err != nil {
		log.Fatal("Failed to initialize sheets client:", err)
	}

	eventRepo := sheets.NewEventRepository(sheetsClient, cfg.Time.UTCOffsetMinutes)
	employeeRepo := sheets.NewEmployeeRepository(sheetsClient)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(employeeRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(eventRepo, cfg.Time.UTCOffsetMinutes)
	summarySvc := summaryService.NewSummaryService(eventRepo, cfg.Time.UTCOffsetMinutes)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	adminHandler := appHTTP.NewAdminHandler(employeeSvc, attendanceSvc, summarySvc)

	router := appHTTP.NewRouter(JWTService, authHandler, attendanceHandler, adminHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
