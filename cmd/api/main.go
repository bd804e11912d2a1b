package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cashbookhq/cashbook-backend-go/internal/config"
	appHTTP "github.com/cashbookhq/cashbook-backend-go/internal/handler/http"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/cron"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/database"
	"github.com/cashbookhq/cashbook-backend-go/internal/pkg/jwt"
	"github.com/cashbookhq/cashbook-backend-go/internal/repository/postgresql"
	accountService "github.com/cashbookhq/cashbook-backend-go/internal/service/account"
	advanceService "github.com/cashbookhq/cashbook-backend-go/internal/service/advance"
	attendanceService "github.com/cashbookhq/cashbook-backend-go/internal/service/attendance"
	employeeService "github.com/cashbookhq/cashbook-backend-go/internal/service/employee"
	payrollService "github.com/cashbookhq/cashbook-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)
	accountRepo := postgresql.NewAccountRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	advanceSvc := advanceService.NewAdvanceService(db, advanceRepo, employeeRepo, accountRepo, transactionRepo)
	accountSvc := accountService.NewAccountService(accountRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		advanceRepo,
		transactionRepo,
		accountRepo,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	accountHandler := appHTTP.NewAccountHandler(accountSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		employeeHandler,
		attendanceHandler,
		advanceHandler,
		accountHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
