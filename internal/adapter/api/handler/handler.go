package handler

import (
	"orbitmarket/internal/domain/service"
	"orbitmarket/internal/infrastructure/storage"
	"orbitmarket/internal/infrastructure/websocket"
	"orbitmarket/internal/usecase"
)

var (
	userHandler      *UserHandler
	gigHandler       *GigHandler
	orderHandler     *OrderHandler
	paymentHandler   *PaymentHandler
	reviewHandler    *ReviewHandler
	intakeHandler    *IntakeHandler
	assistantHandler *AssistantHandler
	chatHandler      *ChatHandler
	websocketHandler *WebSocketHandler
	fileHandler      *FileHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	gigUseCase *usecase.GigUseCase,
	orderUseCase *usecase.OrderUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	intakeUseCase *usecase.IntakeUseCase,
	chatUseCase *usecase.ChatUseCase,
	paymentService service.PaymentGatewayService,
	assistantService *service.AssistantService,
	wsManager *websocket.Manager,
	storageClient *storage.CloudStorageClient,
) {
	userHandler = NewUserHandler(userUseCase)
	gigHandler = NewGigHandler(gigUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	paymentHandler = NewPaymentHandler(orderUseCase, paymentService)
	reviewHandler = NewReviewHandler(reviewUseCase)
	intakeHandler = NewIntakeHandler(intakeUseCase)
	assistantHandler = NewAssistantHandler(assistantService)
	chatHandler = NewChatHandler(chatUseCase)
	websocketHandler = NewWebSocketHandler(wsManager)
	fileHandler = NewFileHandler(storageClient)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetGigHandler() *GigHandler {
	return gigHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetIntakeHandler() *IntakeHandler {
	return intakeHandler
}

func GetAssistantHandler() *AssistantHandler {
	return assistantHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return websocketHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}
