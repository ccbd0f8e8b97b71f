package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/joho/godotenv"
	"github.com/renttrack/renttrack/consts"
	"github.com/renttrack/renttrack/handler"
	"github.com/renttrack/renttrack/infra/akahu"
	"github.com/renttrack/renttrack/infra/db/dao"
	"github.com/renttrack/renttrack/infra/locker"
	"github.com/renttrack/renttrack/infra/mailer"
	rentcheckUsecase "github.com/renttrack/renttrack/usecase/rentcheck"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startRentCheckWorker(h *handler.RentCheckHandler, workerID int) {
	for {
		ctx := context.Background()
		err := h.RentCheckExecution(ctx)
		if err != nil {
			log.Printf("[Worker %d] error: %s", workerID, err.Error())
		} else {
			log.Printf("[Worker %d] success", workerID)
		}

		time.Sleep(cfg.Interval)
	}
}

type App struct {
	DB     *gorm.DB
	Locker *locker.Locker
}

func (a *App) startCronWorker(cfg CronWorkerConfig) {
	var wg sync.WaitGroup

	daoMethod := dao.NewDaoMethod(a.DB)
	fetcher := akahu.NewClient(os.Getenv("AKAHU_BASE_URL"))
	notifier := mailer.New(mailerConfigFromEnv(), daoMethod)
	rentcheckUc := rentcheckUsecase.NewRentCheckUsecase(daoMethod, fetcher, notifier, a.Locker)
	h := handler.NewRentCheckHandler(rentcheckUc)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			log.Printf("spawn [Worker %d]", workerID)
			cfg.startRentCheckWorker(h, workerID)
		}(i + 1)
	}
	wg.Wait()
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", DbName, err)
	}
	log.Printf("Connected to database %s", DbName)

	a.Locker = locker.New()
}

func (a *App) RunServer() {
	a.startCronWorker(CronWorkerConfig{
		Workers:  consts.DefaultWorkerNumber,
		Interval: checkIntervalFromEnv(),
	})
}

func checkIntervalFromEnv() time.Duration {
	hours := consts.DefaultIntervalInHours
	if v := os.Getenv("CHECK_INTERVAL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	return time.Duration(hours) * time.Hour
}

func mailerConfigFromEnv() mailer.Config {
	return mailer.Config{
		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    os.Getenv("SMTP_PORT"),
		SenderEmail: os.Getenv("EMAIL_SENDER"),
		Password:    os.Getenv("EMAIL_PASSWORD"),
		DevMode:     os.Getenv("APP_ENV") == "development",
	}
}

func main() {
	godotenv.Load()

	app := App{}
	app.Initialize(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PASSWORD"))

	app.RunServer()
}
