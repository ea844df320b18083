package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"travelorders/cmd"
	"travelorders/internal/adapters/out/postgres/notificationrepo"
	"travelorders/internal/adapters/out/postgres/travelorderrepo"
	"travelorders/internal/adapters/out/postgres/userrepo"
	redisadapter "travelorders/internal/adapters/out/redis"
	sesadapter "travelorders/internal/adapters/out/ses"
	"travelorders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultRetentionDays = 90

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	migrateDB(gormDB)

	ctx := context.Background()

	broadcaster, err := redisadapter.NewBroadcaster(ctx, redisadapter.Config{
		Address:  configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer broadcaster.Close()

	mailer, err := sesadapter.NewMailer(ctx, configs.AWSRegion, configs.MailFrom)
	if err != nil {
		log.Fatalf("Failed to configure SES mailer: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, broadcaster, mailer, logger)

	dispatcher := app.Dispatcher()
	dispatcher.Start()
	defer dispatcher.Stop()

	retention := time.Duration(configs.RetentionDays) * 24 * time.Hour
	jobManager := jobs.NewJobManager(app.CreatePurgeDeletedTravelOrdersCommandHandler(), retention, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
		AWSRegion:     goDotEnvVariable("AWS_REGION"),
		MailFrom:      goDotEnvVariable("MAIL_FROM"),
		RetentionDays: defaultRetentionDays,
	}

	if raw := goDotEnvVariable("RETENTION_DAYS"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			log.Fatalf("RETENTION_DAYS must be a positive integer, got %q", raw)
		}
		config.RetentionDays = days
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&travelorderrepo.TravelOrderDTO{},
		&notificationrepo.NotificationDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateServer().RegisterRoutes(e)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
