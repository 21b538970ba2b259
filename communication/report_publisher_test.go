package communication

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities"
)

type publisherMock struct {
	mock.Mock
}

func (pm *publisherMock) PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte, contentType string) error {
	args := pm.Called(ctx, exchange, routingKey, message, contentType)
	return args.Error(0)
}

func (pm *publisherMock) KillBadBunny() error {
	return pm.Called().Error(0)
}

func newTestResponse() *queryresponse.QueryResponse {
	metadata := entities.NewMetadata("pass-1", "new york city", "stats", "march", "")
	response := queryresponse.NewQueryResponse(metadata, 2)
	response.Duration = &queryresponse.DurationStats{Count: 2, Total: 900, Mean: 450}
	return response
}

func TestPublish(t *testing.T) {
	publisher := new(publisherMock)
	publisher.On("PublishMessageInExchange", mock.Anything, "reports", "report.new_york_city", mock.MatchedBy(func(message []byte) bool {
		var decoded map[string]interface{}
		if err := json.Unmarshal(message, &decoded); err != nil {
			return false
		}
		metadata, ok := decoded["metadata"].(map[string]interface{})
		return ok && metadata["pass_id"] == "pass-1" && metadata["month"] == "march"
	}), "application/json").Return(nil).Once()

	reportPublisher := NewReportPublisherWith(publisher, "reports")
	require.NoError(t, reportPublisher.Publish(context.Background(), newTestResponse()))
	publisher.AssertExpectations(t)
}

func TestPublishError(t *testing.T) {
	brokerErr := errors.New("channel closed")
	publisher := new(publisherMock)
	publisher.On("PublishMessageInExchange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(brokerErr)

	err := NewReportPublisherWith(publisher, "reports").Publish(context.Background(), newTestResponse())
	assert.ErrorIs(t, err, brokerErr)
}

func TestClose(t *testing.T) {
	publisher := new(publisherMock)
	publisher.On("KillBadBunny").Return(nil).Once()

	require.NoError(t, NewReportPublisherWith(publisher, "reports").Close())
	publisher.AssertExpectations(t)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "report.chicago", RoutingKey("Chicago"))
	assert.Equal(t, "report.new_york_city", RoutingKey(" new york city "))
}
