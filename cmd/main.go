package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/bahm1979/gestion-locative-backend/internal/app"
	"github.com/bahm1979/gestion-locative-backend/internal/config"
	"github.com/bahm1979/gestion-locative-backend/internal/controllers"
	"github.com/bahm1979/gestion-locative-backend/internal/middleware"
	"github.com/bahm1979/gestion-locative-backend/internal/notifier"
	"github.com/bahm1979/gestion-locative-backend/internal/repositories"
	"github.com/bahm1979/gestion-locative-backend/internal/routes"
	"github.com/bahm1979/gestion-locative-backend/internal/services"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	root := &cobra.Command{
		Use:   "gestion-locative",
		Short: "Backend de gestion locative",
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Démarre le serveur HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Applique le schéma de base de données",
		Run: func(cmd *cobra.Command, args []string) {
			migrate()
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrate() {
	cfg := config.LoadConfig()
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application: ", err)
	}
	defer application.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := application.Migrate(ctx); err != nil {
		utils.Logger.Fatal("Migration failed: ", err)
	}
}

func serve() {
	cfg := config.LoadConfig()
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application: ", err)
	}
	defer application.Close()

	var mailer notifier.Mailer = notifier.LogMailer{}
	if cfg.SendGridAPIKey != "" {
		mailer = notifier.NewSendGridMailer(cfg.SendGridAPIKey, cfg.SendGridFromName, cfg.SendGridFrom, cfg.SendGridSandbox)
	}
	dispatcher := notifier.NewDispatcher(mailer, cfg.NotifierQueueSize)
	defer dispatcher.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	userRepo := repositories.NewUserRepository(application.DB)
	cityRepo := repositories.NewCityRepository(application.DB)
	buildingRepo := repositories.NewBuildingRepository(application.DB)
	floorRepo := repositories.NewFloorRepository(application.DB)
	apartmentRepo := repositories.NewApartmentRepository(application.DB)
	tenantRepo := repositories.NewTenantRepository(application.DB)
	leaseRepo := repositories.NewLeaseRepository(application.DB)
	paymentRepo := repositories.NewPaymentRepository(application.DB)
	supplierRepo := repositories.NewSupplierRepository(application.DB)
	invoiceRepo := repositories.NewSupplierInvoiceRepository(application.DB)
	expenseRepo := repositories.NewExpenseRepository(application.DB)
	accountingRepo := repositories.NewAccountingRepository(application.DB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.UploadDir)
	propertyService := services.NewPropertyService(cityRepo, buildingRepo, floorRepo, apartmentRepo)
	tenantService := services.NewTenantService(tenantRepo)
	leaseService := services.NewLeaseService(leaseRepo, paymentRepo, apartmentRepo, tenantRepo, dispatcher)
	paymentService := services.NewPaymentService(paymentRepo, leaseRepo, tenantRepo, dispatcher)
	supplierService := services.NewSupplierService(supplierRepo, invoiceRepo, expenseRepo, buildingRepo)
	accountingService := services.NewAccountingService(accountingRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(authService)
	propertyController := controllers.NewPropertyController(propertyService)
	tenantController := controllers.NewTenantController(tenantService)
	leaseController := controllers.NewLeaseController(leaseService)
	paymentController := controllers.NewPaymentController(paymentService)
	supplierController := controllers.NewSupplierController(supplierService)
	accountingController := controllers.NewAccountingController(accountingService)
	healthController := controllers.NewHealthController(application.DB)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "Route non trouvée")
	})

	router.HandleFunc(routes.Health, healthController.HealthCheck).Methods("GET")
	router.HandleFunc(routes.AuthRegister, authController.Register).Methods("POST")
	router.HandleFunc(routes.AuthLogin, authController.Login).Methods("POST")

	// Avatars are public once uploaded.
	router.PathPrefix(routes.Uploads).Handler(
		http.StripPrefix(routes.Uploads, http.FileServer(http.Dir(cfg.UploadDir))),
	)

	// Everything below requires a valid token.
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	protected.HandleFunc(routes.AuthMe, authController.Me).Methods("GET")
	protected.HandleFunc(routes.AuthProfile, authController.UpdateProfile).Methods("PUT")

	protected.HandleFunc(routes.BienVilles, propertyController.ListCities).Methods("GET")
	protected.HandleFunc(routes.BienEtages, propertyController.ListFloors).Methods("GET")
	protected.HandleFunc(routes.BienAppartements, propertyController.ListApartments).Methods("GET")
	protected.HandleFunc(routes.Biens, propertyController.ListBuildings).Methods("GET")
	protected.HandleFunc(routes.Biens, propertyController.CreateBuilding).Methods("POST")
	protected.HandleFunc(routes.BienByID, propertyController.GetBuilding).Methods("GET")
	protected.HandleFunc(routes.BienByID, propertyController.UpdateBuilding).Methods("PUT")
	protected.HandleFunc(routes.BienByID, propertyController.DeleteBuilding).Methods("DELETE")

	protected.HandleFunc(routes.Etages, propertyController.ListFloors).Methods("GET")
	protected.HandleFunc(routes.Etages, propertyController.CreateFloor).Methods("POST")
	protected.HandleFunc(routes.EtageByID, propertyController.UpdateFloor).Methods("PUT")
	protected.HandleFunc(routes.EtageByID, propertyController.DeleteFloor).Methods("DELETE")

	protected.HandleFunc(routes.Apparts, propertyController.ListApartments).Methods("GET")
	protected.HandleFunc(routes.Apparts, propertyController.CreateApartment).Methods("POST")
	protected.HandleFunc(routes.AppartByID, propertyController.GetApartment).Methods("GET")
	protected.HandleFunc(routes.AppartByID, propertyController.UpdateApartment).Methods("PUT")
	protected.HandleFunc(routes.AppartByID, propertyController.DeleteApartment).Methods("DELETE")

	protected.HandleFunc(routes.Locataires, tenantController.List).Methods("GET")
	protected.HandleFunc(routes.Locataires, tenantController.Create).Methods("POST")
	protected.HandleFunc(routes.LocataireByID, tenantController.Get).Methods("GET")
	protected.HandleFunc(routes.LocataireByID, tenantController.Update).Methods("PUT")
	protected.HandleFunc(routes.LocataireByID, tenantController.Delete).Methods("DELETE")

	protected.HandleFunc(routes.Contrats, leaseController.List).Methods("GET")
	protected.HandleFunc(routes.Contrats, leaseController.Create).Methods("POST")
	protected.HandleFunc(routes.ContratByID, leaseController.Get).Methods("GET")
	protected.HandleFunc(routes.ContratByID, leaseController.Update).Methods("PUT")
	protected.HandleFunc(routes.ContratByID, leaseController.Delete).Methods("DELETE")
	protected.HandleFunc(routes.ContratSortie, leaseController.Terminate).Methods("POST")

	protected.HandleFunc(routes.PaiementsImpayes, paymentController.ListUnpaid).Methods("GET")
	protected.HandleFunc(routes.PaiementsStats, paymentController.MonthlyStats).Methods("GET")
	protected.HandleFunc(routes.Paiements, paymentController.List).Methods("GET")
	protected.HandleFunc(routes.Paiements, paymentController.Create).Methods("POST")
	protected.HandleFunc(routes.PaiementByID, paymentController.Update).Methods("PUT")
	protected.HandleFunc(routes.PaiementByID, paymentController.Delete).Methods("DELETE")

	protected.HandleFunc(routes.Fournisseurs, supplierController.ListSuppliers).Methods("GET")
	protected.HandleFunc(routes.Fournisseurs, supplierController.CreateSupplier).Methods("POST")
	protected.HandleFunc(routes.FournisseurByID, supplierController.UpdateSupplier).Methods("PUT")
	protected.HandleFunc(routes.FournisseurByID, supplierController.DeleteSupplier).Methods("DELETE")

	protected.HandleFunc(routes.Factures, supplierController.ListInvoices).Methods("GET")
	protected.HandleFunc(routes.Factures, supplierController.CreateInvoice).Methods("POST")
	protected.HandleFunc(routes.FacturePayer, supplierController.PayInvoice).Methods("PUT")
	protected.HandleFunc(routes.FactureByID, supplierController.DeleteInvoice).Methods("DELETE")

	protected.HandleFunc(routes.Depenses, supplierController.ListExpenses).Methods("GET")
	protected.HandleFunc(routes.Depenses, supplierController.CreateExpense).Methods("POST")
	protected.HandleFunc(routes.DepensePayer, supplierController.PayExpense).Methods("PUT")
	protected.HandleFunc(routes.DepenseByID, supplierController.DeleteExpense).Methods("DELETE")

	protected.HandleFunc(routes.Comptabilite, accountingController.BalanceSheet).Methods("GET")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	utils.Logger.Infof("Server listening on :%s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, corsHandler); err != nil {
		utils.Logger.Fatal("Server stopped: ", err)
	}
}
