package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/batchrepo"
	"logistics/internal/adapters/out/postgres/counterrepo"
	"logistics/internal/adapters/out/postgres/eventrepo"
	"logistics/internal/adapters/out/postgres/ledgerrepo"
	"logistics/internal/adapters/out/postgres/sessionrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/jobs"
	"logistics/internal/pkg/logging"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr: configs.RedisAddr,
		DB:   configs.RedisDB,
	})

	logger := logging.New()

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	jobManager := jobs.NewJobManager(gormDB, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:    goDotEnvVariable("REDIS_ADDR"),
		RedisDB:      goDotEnvIntVariable("REDIS_DB"),
		CompanyPlan:  goDotEnvVariable("COMPANY_PLAN"),
		AccessTTLSec: goDotEnvIntVariable("ACCESS_CACHE_TTL_SECONDS"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %q", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&batchrepo.BatchDTO{},
		&sessionrepo.SessionDTO{},
		&ledgerrepo.LedgerEntryDTO{},
		&eventrepo.EventDTO{},
		&counterrepo.CounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(app.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
