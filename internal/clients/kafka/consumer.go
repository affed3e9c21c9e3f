package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/analytics"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

var processedReports = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ledger",
		Subsystem: "reporter",
		Name:      "processed_reports_total",
	},
	[]string{"status"},
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type reportGenerator interface {
	Analytics(ctx context.Context, start, end string) (analytics.Report, error)
}

type reportSender interface {
	SendMessage(text string, userID int64) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	processor     *RequestProcessor
}

func NewConsumer(cfg consumerConfig, generator reportGenerator, sender reportSender) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ReportsTopic(),
		processor:     NewRequestProcessor(generator, sender),
	}, err
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() error {
	return c.consumerGroup.Close()
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		logger.Info("received report request", zap.ByteString("key", message.Key))
		c.processor.Process(session.Context(), message.Value)
		session.MarkMessage(message, "")
	}
	return nil
}

// RequestProcessor turns one encoded ReportRequest into a chat message.
type RequestProcessor struct {
	generator reportGenerator
	sender    reportSender
}

func NewRequestProcessor(generator reportGenerator, sender reportSender) *RequestProcessor {
	return &RequestProcessor{generator: generator, sender: sender}
}

// Process never fails: undecodable requests are dropped and generation
// errors are reported to the requesting chat.
func (p *RequestProcessor) Process(ctx context.Context, payload []byte) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "processReportRequest")
	defer span.Finish()

	var req ReportRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		logger.Error("cannot unmarshal kafka message", zap.Error(err))
		processedReports.WithLabelValues("malformed").Inc()
		ext.Error.Set(span, true)
		return
	}

	text, status := p.render(ctx, req)
	if err := p.sender.SendMessage(text, req.ChatID); err != nil {
		logger.Error("failed to send report", zap.Int64("chatID", req.ChatID), zap.Error(err))
		status = "send_failed"
	}
	if status != "ok" {
		ext.Error.Set(span, true)
	}
	processedReports.WithLabelValues(status).Inc()
}

func (p *RequestProcessor) render(ctx context.Context, req ReportRequest) (text, status string) {
	report, err := p.generator.Analytics(ctx, req.Start, req.End)
	if err != nil {
		logger.Error("failed to generate report", zap.Int64("chatID", req.ChatID), zap.Error(err))
		return customerr.UserMessage(err), "generate_failed"
	}
	return analytics.FormatReport(report), "ok"
}
