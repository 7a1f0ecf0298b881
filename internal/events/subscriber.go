package events

import (
	"context"
	"fmt"

	"github.com/Tanim1993/RelocationJobxyz/internal/messaging"
	"github.com/Tanim1993/RelocationJobxyz/internal/processor"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Handler struct {
	logger       *zap.Logger
	nc           *nats.Conn
	tracer       trace.Tracer
	jobProcessor *processor.JobProcessor
	sub          *nats.Subscription
}

func NewHandler(logger *zap.Logger, nc *nats.Conn, tracer trace.Tracer, jobProcessor *processor.JobProcessor) *Handler {
	return &Handler{
		logger:       logger,
		nc:           nc,
		tracer:       tracer,
		jobProcessor: jobProcessor,
	}
}

func (h *Handler) RegisterSubscriptions(lc fx.Lifecycle) error {
	sub, err := h.nc.QueueSubscribe(messaging.RawJobsSubject, "processing-service", h.handleRawJob)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", messaging.RawJobsSubject, err)
	}

	h.sub = sub
	h.logger.Info("registered NATS subscriptions")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.sub.Unsubscribe()
		},
	})

	return nil
}

func (h *Handler) handleRawJob(msg *nats.Msg) {
	ctx, span := h.tracer.Start(context.Background(), "handleRawJob")
	defer span.End()

	if err := h.jobProcessor.ProcessRawJob(ctx, msg.Data); err != nil {
		h.logger.Error("failed to process raw job",
			zap.Error(err),
			zap.String("subject", msg.Subject),
		)
		return
	}

	h.logger.Debug("processed raw job", zap.String("subject", msg.Subject))
}
