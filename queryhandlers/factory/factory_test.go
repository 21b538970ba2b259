package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

func TestNewQueryHandler(t *testing.T) {
	for _, handlerType := range HandlerTypes {
		handler, err := NewQueryHandler(handlerType)
		require.NoError(t, err)
		assert.Equal(t, handlerType, handler.GetType())
	}

	_, err := NewQueryHandler("rain-handler")
	assert.ErrorIs(t, err, handlerErrors.ErrInvalidHandlerType)
}

func TestNewQueryHandlersKeepsOrder(t *testing.T) {
	handlers := NewQueryHandlers()
	require.Len(t, handlers, 4)

	var queryIDs []string
	for _, handler := range handlers {
		queryIDs = append(queryIDs, handler.GetQueryID())
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, queryIDs)
}
