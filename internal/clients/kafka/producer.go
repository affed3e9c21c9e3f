package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Shopify/sarama"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
)

// ReportRequest asks the reporter to build an analytics report and send it
// to a chat. Empty bounds mean the most recent month.
type ReportRequest struct {
	ChatID int64  `json:"chatID"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type producerConfig interface {
	Brokers() []string
	ReportsTopic() string
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	return &Producer{
		producer: producer,
		topic:    cfg.ReportsTopic(),
	}, err
}

func (p *Producer) RequestReport(ctx context.Context, chatID int64, start, end string) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "requestReport")
	defer span.Finish()

	payload, err := json.Marshal(ReportRequest{ChatID: chatID, Start: start, End: end})
	if err != nil {
		return errors.Wrap(err, "encode report request")
	}
	if err = p.ProduceMessage(strconv.FormatInt(chatID, 10), payload); err != nil {
		return errors.Wrap(err, "produce report request")
	}
	return nil
}

func (p *Producer) ProduceMessage(key string, message []byte) error {
	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(message),
	})
	return err
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
