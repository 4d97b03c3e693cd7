package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"shiptrack/cmd"
	adapter_http "shiptrack/internal/adapters/in/http"
	"shiptrack/internal/adapters/out/pebblestore"
	"shiptrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	db, err := pebblestore.Open(configs.DBPath)
	if err != nil {
		log.Fatalf("Error opening record database: %v", err)
	}
	defer db.Close()

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(db, configs.StoreMetricsCron, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBPath:                  goDotEnvVariable("DB_PATH"),
		PaymentStrictOrderCheck: goDotEnvVariable("PAYMENT_STRICT_ORDER_CHECK") == "true",
		StoreMetricsCron:        goDotEnvVariable("STORE_METRICS_CRON"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = adapter_http.NewCustomValidator()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
