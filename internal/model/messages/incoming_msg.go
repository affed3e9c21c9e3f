package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

const privateBotMessage = "Sorry, this is a private bot"

type messageSender interface {
	SendMessage(text string, userID int64) error
	SendDocument(name string, payload []byte, userID int64) error
}

type fileFetcher interface {
	FetchFile(ctx context.Context, fileID string) ([]byte, error)
}

type telegramClient interface {
	messageSender
	fileFetcher
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, msg Message) (Response, error)
}

type ownerConfig interface {
	OwnerID() int64
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
	ownerID  int64
}

func NewService(tgClient telegramClient, l ledgerService, generator reportGenerator, cfg ownerConfig, opts ...HandlerOption) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(l, generator, tgClient, opts...),
		ownerID:  cfg.OwnerID(),
	}
}

// Message is an incoming update. FileID is set when a document is attached;
// its caption is passed as Text.
type Message struct {
	Text   string
	UserID int64
	FileID string
}

type Document struct {
	Name    string
	Payload []byte
}

// Response is either a text reply or a document with an optional caption.
type Response struct {
	Text     string
	Document *Document
}

func textResponse(text string) Response {
	return Response{Text: text}
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	if s.ownerID != 0 && msg.UserID != s.ownerID {
		logger.Warn("message from a stranger", zap.Int64("userID", msg.UserID))
		return s.tgClient.SendMessage(privateBotMessage, msg.UserID)
	}

	resp, err := s.handler.HandleMessage(ctx, msg)
	if err != nil {
		_ = s.tgClient.SendMessage(customerr.UserMessage(err), msg.UserID)
		if customerr.Known(err) {
			logger.Info("rejected user input", zap.Error(err))
			return nil
		}
		return err
	}

	if resp.Document != nil {
		return s.tgClient.SendDocument(resp.Document.Name, resp.Document.Payload, msg.UserID)
	}
	return s.tgClient.SendMessage(resp.Text, msg.UserID)
}
