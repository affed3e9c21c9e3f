package kafka

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-ledger/internal/clients/kafka/mock"
	"max.ks1230/expense-ledger/internal/model/analytics"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

func Test_OnProcessRequest_ShouldSendRenderedReport(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	generator := mock.NewReportGeneratorMock(m)
	sender := mock.NewReportSenderMock(m)

	generator.AnalyticsMock.
		Inspect(func(_ context.Context, start, end string) {
			assert.Equal(m, "2024-01-01", start)
			assert.Equal(m, "2024-01-31", end)
		}).
		Return(analytics.Report{Window: analytics.Window{Label: "2024-01-01 to 2024-01-31"}}, nil)
	sender.SendMessageMock.
		Expect("Spending for 2024-01-01 to 2024-01-31\n\nNo expenses in this period", int64(42)).
		Return(nil)

	NewRequestProcessor(generator, sender).
		Process(context.Background(), []byte(`{"chatID":42,"start":"2024-01-01","end":"2024-01-31"}`))
}

func Test_OnProcessRequestWithBadRange_ShouldSendUserMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	generator := mock.NewReportGeneratorMock(m)
	sender := mock.NewReportSenderMock(m)

	generator.AnalyticsMock.
		Return(analytics.Report{}, errors.Wrap(customerr.ErrInvalidDateRange, "generate analytics"))
	sender.SendMessageMock.
		Expect(customerr.UserMessage(customerr.ErrInvalidDateRange), int64(7)).
		Return(nil)

	NewRequestProcessor(generator, sender).
		Process(context.Background(), []byte(`{"chatID":7,"start":"2024-02-01","end":"2024-01-01"}`))
}

func Test_OnProcessMalformedRequest_ShouldDropIt(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	generator := mock.NewReportGeneratorMock(m)
	sender := mock.NewReportSenderMock(m)

	NewRequestProcessor(generator, sender).Process(context.Background(), []byte(`not json`))

	assert.Zero(t, generator.AnalyticsBeforeCounter())
	assert.Zero(t, sender.SendMessageBeforeCounter())
}
