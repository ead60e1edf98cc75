package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/msriffel/clientrech/internal/ai"
	"github.com/msriffel/clientrech/internal/infra/database"
	"github.com/msriffel/clientrech/internal/infra/http/handlers"
	"github.com/msriffel/clientrech/internal/infra/http/middleware"
	"github.com/msriffel/clientrech/internal/infra/mail"
	"github.com/msriffel/clientrech/internal/infra/queue"
	"github.com/msriffel/clientrech/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	clientRepo := database.NewClientRepository(db)
	contactRepo := database.NewContactRepository(db)
	interactionRepo := database.NewInteractionRepository(db)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
	)
	suggester := ai.NewEngine()

	// 3. Worker (consome a fila e dispara os lembretes por e-mail)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createClientUC := usecase.NewCreateClientUseCase(clientRepo, contactRepo)
	updateClientUC := usecase.NewUpdateClientUseCase(clientRepo)
	deleteClientUC := usecase.NewDeleteClientUseCase(clientRepo, contactRepo, interactionRepo)
	listClientsUC := usecase.NewListClientsUseCase(clientRepo, contactRepo)
	recordInteractionUC := usecase.NewRecordInteractionUseCase(clientRepo, contactRepo, interactionRepo, producer)
	interactionUC := usecase.NewInteractionUseCase(interactionRepo)
	contactUC := usecase.NewContactUseCase(clientRepo, contactRepo)
	suggestStatusUC := usecase.NewSuggestStatusUseCase(clientRepo, interactionRepo, suggester)
	acceptSuggestionUC := usecase.NewAcceptSuggestionUseCase(clientRepo)

	// 5. Handlers
	clientHandler := handlers.NewClientHandler(createClientUC, updateClientUC, deleteClientUC, listClientsUC)
	interactionHandler := handlers.NewInteractionHandler(recordInteractionUC, interactionUC)
	contactHandler := handlers.NewContactHandler(contactUC)
	suggestionHandler := handlers.NewSuggestionHandler(suggestStatusUC, acceptSuggestionUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Route("/clients", func(r chi.Router) {
		r.Get("/", clientHandler.List)
		r.Post("/", clientHandler.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", clientHandler.Get)
			r.Put("/", clientHandler.Update)
			r.Delete("/", clientHandler.Delete)

			r.Get("/interactions", interactionHandler.List)
			r.Post("/interactions", interactionHandler.Record)

			r.Get("/contacts", contactHandler.List)
			r.Post("/contacts", contactHandler.Add)

			r.Post("/status/suggest", suggestionHandler.Suggest)
			r.Post("/status/accept", suggestionHandler.Accept)
		})
	})

	r.Put("/interactions/{id}", interactionHandler.Update)
	r.Delete("/interactions/{id}", interactionHandler.Delete)
	r.Put("/contacts/{id}", contactHandler.Update)
	r.Delete("/contacts/{id}", contactHandler.Delete)

	r.Get("/stats", clientHandler.Stats)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":8080"
	log.Printf("🔥 Server ClientRech rodando na porta %s", port)
	http.ListenAndServe(port, r)
}
