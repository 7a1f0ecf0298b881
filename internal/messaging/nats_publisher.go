package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Tanim1993/RelocationJobxyz/common/telemetry"
	"github.com/Tanim1993/RelocationJobxyz/internal/config"
	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
	"github.com/Tanim1993/RelocationJobxyz/internal/models"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("relocationjobs/messaging")

const (
	// RawJobsSubject carries unmapped search results from the polling
	// service to the processing service.
	RawJobsSubject = "jobs.relocation.raw"
)

type Publisher interface {
	PublishRawJob(ctx context.Context, raw models.RawJob) error
	Close()
}

type natsPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(logger *zap.Logger, config *config.Config) (Publisher, error) {
	opts := []nats.Option{
		nats.Timeout(config.NATSConnTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	conn, err := nats.Connect(config.NATSURL, opts...)
	if err != nil {
		return nil, errors.Internal("connecting to NATS", err)
	}

	return &natsPublisher{
		conn:   conn,
		logger: logger,
	}, nil
}

func (p *natsPublisher) PublishRawJob(ctx context.Context, raw models.RawJob) error {
	_, span := tracer.Start(ctx, "PublishRawJob")
	defer span.End()

	data, err := json.Marshal(raw)
	if err != nil {
		span.RecordError(err)
		return errors.Internal("marshaling raw job", err)
	}

	span.SetAttributes(
		telemetry.String("nats.subject", RawJobsSubject),
		telemetry.Int("message.size", len(data)),
	)

	if err := p.conn.Publish(RawJobsSubject, data); err != nil {
		span.RecordError(err)
		p.logger.Error("failed to publish raw job",
			zap.String("title", raw.Title),
			zap.Error(err))
		return errors.Internal("publishing to NATS", err)
	}

	p.logger.Debug("published raw job",
		zap.String("title", raw.Title),
		zap.String("subject", RawJobsSubject))
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
