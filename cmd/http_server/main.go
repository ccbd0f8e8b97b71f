package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/joho/godotenv"
	"github.com/renttrack/renttrack/handler"
	"github.com/renttrack/renttrack/infra/akahu"
	"github.com/renttrack/renttrack/infra/db/dao"
	"github.com/renttrack/renttrack/infra/db/model"
	"github.com/renttrack/renttrack/infra/locker"
	"github.com/renttrack/renttrack/infra/mailer"
	"github.com/renttrack/renttrack/middlewares"
	rentcheckUsecase "github.com/renttrack/renttrack/usecase/rentcheck"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", DbName, err)
	}
	log.Printf("Connected to database %s", DbName)

	a.DB.AutoMigrate(
		&model.Landlord{},
		&model.BankCredential{},
		&model.RentalAgreement{},
		&model.RentCheck{},
		&model.EmailLog{},
	) //database migration

	// Deleting a landlord removes its credential and agreements; deleting an
	// agreement removes its rent checks.
	a.DB.Model(&model.BankCredential{}).AddForeignKey("landlord_id", "landlords(id)", "CASCADE", "CASCADE")
	a.DB.Model(&model.RentalAgreement{}).AddForeignKey("landlord_id", "landlords(id)", "CASCADE", "CASCADE")
	a.DB.Model(&model.RentCheck{}).AddForeignKey("agreement_id", "rental_agreements(id)", "CASCADE", "CASCADE")

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func RegisterRentCheckRoutes(router *mux.Router, h *handler.RentCheckHandler) {
	router.HandleFunc("/run_check", h.RunCheck).Methods("POST")
	router.HandleFunc("/run_landlord_check", h.RunLandlordCheck).Methods("POST")
	router.HandleFunc("/rent_checks", h.GetRentChecks).Methods("GET")
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)

	daoMethod := dao.NewDaoMethod(a.DB)
	fetcher := akahu.NewClient(os.Getenv("AKAHU_BASE_URL"))
	notifier := mailer.New(mailer.Config{
		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    os.Getenv("SMTP_PORT"),
		SenderEmail: os.Getenv("EMAIL_SENDER"),
		Password:    os.Getenv("EMAIL_PASSWORD"),
		DevMode:     os.Getenv("APP_ENV") == "development",
	}, daoMethod)

	rentcheckUc := rentcheckUsecase.NewRentCheckUsecase(daoMethod, fetcher, notifier, locker.New())
	h := handler.NewRentCheckHandler(rentcheckUc)
	RegisterRentCheckRoutes(a.Router, h)
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Printf("\nServer starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
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
