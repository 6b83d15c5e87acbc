package main

import (
	"fmt"
	"log/slog"
	"os"

	"postal/cmd"
	"postal/internal/adapters/in/http"
	"postal/internal/adapters/out/postgres/auditrepo"
	"postal/internal/adapters/out/postgres/clientrepo"
	"postal/internal/adapters/out/postgres/employeerepo"
	"postal/internal/adapters/out/postgres/officerepo"
	"postal/internal/adapters/out/postgres/parcelrepo"
	"postal/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateParcelStatisticsQueryHandler(),
		configs.StatisticsReportSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		StatisticsReportSchedule: goDotEnvVariable("STATISTICS_REPORT_SCHEDULE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&officerepo.OfficeDTO{},
		&employeerepo.EmployeeDTO{},
		&clientrepo.ClientDTO{},
		&auditrepo.EntryDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = http.NewCustomValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "Healthy")
	})

	server := http.NewServer(http.Handlers{
		CreateParcel:       app.CreateCreateParcelCommandHandler(),
		SendParcel:         app.CreateSendParcelCommandHandler(),
		UpdateParcelStatus: app.CreateUpdateParcelStatusCommandHandler(),
		CreateOffice:       app.CreateCreateOfficeCommandHandler(),
		UpdateOffice:       app.CreateUpdateOfficeCommandHandler(),
		DeleteOffice:       app.CreateDeleteOfficeCommandHandler(),
		CreateEmployee:     app.CreateCreateEmployeeCommandHandler(),
		UpdateEmployee:     app.CreateUpdateEmployeeCommandHandler(),
		DeleteEmployee:     app.CreateDeleteEmployeeCommandHandler(),
		CreateClient:       app.CreateCreateClientCommandHandler(),
		UpdateClient:       app.CreateUpdateClientCommandHandler(),
		DeleteClient:       app.CreateDeleteClientCommandHandler(),

		GetParcelByToken: app.CreateGetParcelByTokenQueryHandler(),
		ListParcels:      app.CreateListParcelsQueryHandler(),
		ParcelStatistics: app.CreateParcelStatisticsQueryHandler(),
		GetParcelHistory: app.CreateGetParcelHistoryQueryHandler(),
		GetOffice:        app.CreateGetOfficeQueryHandler(),
		ListOffices:      app.CreateListOfficesQueryHandler(),
		GetEmployee:      app.CreateGetEmployeeQueryHandler(),
		ListEmployees:    app.CreateListEmployeesQueryHandler(),
		GetClient:        app.CreateGetClientQueryHandler(),
		ListClients:      app.CreateListClientsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
