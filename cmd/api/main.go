package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"orbitmarket/internal/adapter/api"
	"orbitmarket/internal/adapter/api/handler"
	apimiddleware "orbitmarket/internal/adapter/api/middleware"
	"orbitmarket/internal/adapter/api/router"
	"orbitmarket/internal/adapter/repository"
	"orbitmarket/internal/domain/service"
	"orbitmarket/internal/infrastructure/firebase"
	"orbitmarket/internal/infrastructure/mail"
	"orbitmarket/internal/infrastructure/storage"
	"orbitmarket/internal/infrastructure/websocket"
	"orbitmarket/internal/usecase"
	"orbitmarket/pkg/config"
	"orbitmarket/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	authClient := firebase.NewAuthClient(fbAuth)

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	var storageClient *storage.CloudStorageClient
	if cfg.StorageBucket != "" {
		storageClient, err = storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
	} else {
		logger.Warn("STORAGE_BUCKET not set, file uploads disabled")
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	gigRepo := repository.NewFirestoreGigRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	var paymentService service.PaymentGatewayService
	if cfg.StripeEnabled() {
		paymentService = service.NewStripePaymentService(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.AppBaseURL)
	} else {
		logger.Warn("Stripe keys not set, checkout disabled")
	}

	var assistantService *service.AssistantService
	if cfg.AssistantEnabled() {
		assistantService = service.NewAssistantService(cfg.GeminiAPIKey, cfg.GeminiModel, service.OrbitSystemPrompt)
	} else {
		logger.Warn("GEMINI_API_KEY not set, assistant disabled")
	}

	var mailer *mail.Mailer
	if cfg.MailEnabled() {
		mailer = mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		logger.Warn("SMTP not configured, intake forms disabled")
	}

	userUseCase := usecase.NewUserUseCase(userRepo, authClient)
	gigUseCase := usecase.NewGigUseCase(gigRepo, userRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, gigRepo, userRepo, paymentService, cfg.ServiceFeeRate)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, orderRepo, gigRepo, userRepo)
	chatUseCase := usecase.NewChatUseCase(conversationRepo, userRepo, wsManager)
	intakeUseCase := usecase.NewIntakeUseCase(mailer, cfg.IntakeEmail)

	handler.Setup(
		userUseCase,
		gigUseCase,
		orderUseCase,
		reviewUseCase,
		intakeUseCase,
		chatUseCase,
		paymentService,
		assistantService,
		wsManager,
		storageClient,
	)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware)

	logger.Info("Starting server on port %s (env %s)", cfg.ServerPort, cfg.Environment)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
