package artifacts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAPIErrorParsesServerEnvelope(t *testing.T) {
	err := newAPIError(497, "my/Bob/action/gathering", []byte(`{"error":{"code":497,"message":"inventory is full"}}`))
	require.Equal(t, 497, err.StatusCode)
	require.Equal(t, CodeInventoryFull, err.Code)
	require.Equal(t, "inventory is full", err.Message)
	require.Contains(t, err.Error(), "my/Bob/action/gathering")
	require.Contains(t, err.Error(), "status 497")
	require.True(t, IsInventoryFull(err))
}

func TestNewAPIErrorDistinguishesStatusFromCode(t *testing.T) {
	err := newAPIError(486, "my/Bob/action/move", []byte(`{"error":{"code":490,"message":"already there"}}`))
	require.Equal(t, 486, err.StatusCode)
	require.Equal(t, CodeAlreadyAtDestination, err.Code)
	require.Contains(t, err.Error(), "code 490")
}

func TestNewAPIErrorFallsBackToRawBody(t *testing.T) {
	err := newAPIError(503, "items", []byte("  service unavailable\n"))
	require.Equal(t, 503, err.Code)
	require.Equal(t, "service unavailable", err.Message)
}

func TestErrorCodeOnForeignErrors(t *testing.T) {
	require.Equal(t, 0, ErrorCode(errors.New("plain")))
	require.Equal(t, 0, ErrorCode(nil))
	require.False(t, IsCooldownActive(errors.New("plain")))
}

func TestLevelPredicateCoversBothCodes(t *testing.T) {
	require.True(t, IsLevelTooLow(&APIError{StatusCode: 493, Code: CodeLevelTooLow}))
	require.True(t, IsLevelTooLow(&APIError{StatusCode: 496, Code: CodeSkillLevelTooLow}))
	require.False(t, IsLevelTooLow(&APIError{StatusCode: 404, Code: 404}))
}
