package service

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/carzone/spareparts-shop/shared/kafka"
	"github.com/carzone/spareparts-shop/shared/models"
)

// NotificationService consumes order-created events and notifies customers.
// It only reads: orders are never mutated after creation.
type NotificationService struct {
	kafkaReader *kafkago.Reader
}

func NewNotificationService(kafkaBrokers []string) *NotificationService {
	return &NotificationService{
		kafkaReader: kafka.NewOrderReader(kafkaBrokers, "notification-service"),
	}
}

// ProcessOrderEvents blocks until ctx is cancelled, sending one confirmation
// per order-created event.
func (s *NotificationService) ProcessOrderEvents(ctx context.Context) {
	defer s.kafkaReader.Close()

	zap.S().Info("Notification Service is waiting for order events...")

	for {
		select {
		case <-ctx.Done():
			zap.S().Info("Stopping notification processing due to context cancellation")
			return
		default:
			msg, err := s.kafkaReader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				zap.S().Errorf("Error reading message: %v", err)
				continue
			}

			s.handleOrderCreated(msg)
		}
	}
}

func (s *NotificationService) handleOrderCreated(msg kafkago.Message) {
	var order models.Order
	if err := json.Unmarshal(msg.Value, &order); err != nil {
		zap.S().Errorf("Failed to unmarshal order: %v", err)
		return
	}

	s.sendConfirmation(order)
}

// sendConfirmation simulates delivering an order confirmation. A real system
// would send email or SMS here.
func (s *NotificationService) sendConfirmation(order models.Order) {
	time.Sleep(time.Millisecond * 200)

	zap.S().Infof("NOTIFICATION TO %s <%s>: Order Confirmed: your order #%s for $%.2f (%d items) has been received.",
		order.CustomerName,
		order.Email,
		order.Id.Hex(),
		order.Total,
		len(order.Items),
	)
}
