package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/localmart/storefront/internal/config"
	"github.com/localmart/storefront/internal/entities"
	"github.com/localmart/storefront/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in service.PlaceOrderInput) (entities.Order, error)
}

// CheckoutMessage is a checkout submitted through the message bus
// instead of the HTTP API. Identity travels in the payload because
// there is no gateway header on this path.
type CheckoutMessage struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
	PlaceOrderRequest
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	placer   OrderPlacer
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, placer OrderPlacer) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.CheckoutTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		placer:   placer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		start := time.Now()
		if err := h.handleCheckout(ctx, m); err != nil {
			checkoutsFailed.Inc()
			h.logger.Error("failed to handle checkout", slog.Any("error", err))

			// Writer already retries internally
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			checkoutsDLQ.Inc()
		} else {
			checkoutsProcessed.Inc()
		}
		checkoutProcessingDuration.Observe(time.Since(start).Seconds())

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleCheckout(ctx context.Context, m kafka.Message) error {
	var msg CheckoutMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal checkout: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid checkout data: %w", err)
	}

	_, err := h.placer.PlaceOrder(ctx, PlaceOrderRequestToInput(msg.UserID, msg.PlaceOrderRequest))
	return err
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
