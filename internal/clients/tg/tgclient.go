package tg

import (
	"context"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	timeoutSeconds      = 5

	// import files larger than this are refused
	maxFileBytes = 10 << 20
)

type tokenGetter interface {
	Token() string
}

type Client struct {
	client *tgbotapi.BotAPI
	http   *http.Client
}

func New(tokenGetter tokenGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{
		client: client,
		http:   &http.Client{Timeout: time.Second * timeoutSeconds},
	}, nil
}

func (c *Client) SendMessage(text string, userID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(userID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func (c *Client) SendDocument(name string, payload []byte, userID int64) error {
	doc := tgbotapi.NewDocument(userID, tgbotapi.FileBytes{Name: name, Bytes: payload})
	_, err := c.client.Send(doc)
	if err != nil {
		return errors.Wrap(err, "client.Send document")
	}
	return nil
}

// FetchFile downloads a file the user attached to a message.
func (c *Client) FetchFile(ctx context.Context, fileID string) ([]byte, error) {
	url, err := c.client.GetFileDirectURL(fileID)
	if err != nil {
		return nil, errors.Wrap(err, "get file url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "fetch file")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch file")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch file: unexpected status %s", resp.Status)
	}
	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxFileBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}
	if len(payload) > maxFileBytes {
		return nil, errors.New("fetch file: file is too large")
	}
	return payload, nil
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = 60

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel *messages.Service) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	msg := messages.Message{
		Text:   update.Message.Text,
		UserID: update.Message.From.ID,
	}
	if doc := update.Message.Document; doc != nil {
		msg.Text = update.Message.Caption
		msg.FileID = doc.FileID
	}
	logger.Info(msg.Text, zap.String("user", update.Message.From.UserName))

	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	if err := msgModel.HandleIncomingMessage(ctx, msg); err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}
