package main

import (
	"database/sql"
	"fmt"
	"os"

	"foodorder/cmd"
	adapterhttp "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/adapters/out/postgres/reviewrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)
	gormDB := mustGormOpen(configs)
	mustAutoMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:               goDotEnvVariable("JWT_SECRET"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic:  goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		RatingReconcileSchedule: goDotEnvVariable("RATING_RECONCILE_SCHEDULE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error connecting to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Error checking database existence: %v", err)
	}

	if !exists {
		if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", configs.DBName)); err != nil {
			log.Fatalf("Error creating database: %v", err)
		}
	}
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func mustAutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&reviewrepo.ReviewDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	schedule := configs.RatingReconcileSchedule
	if schedule == "" {
		schedule = "*/10 * * * *"
	}

	jobManager := jobs.NewJobManager(
		app.CreateReconcileRatingsCommandHandler(),
		schedule,
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapterhttp.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateSettlePaymentCommandHandler(),
		app.CreateAddReviewCommandHandler(),
		app.CreateAuthenticateUserQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetRestaurantReviewsQueryHandler(),
		app.TokenParser(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
