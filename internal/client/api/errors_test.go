package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Kind
	}{
		{"unauthorized", http.StatusUnauthorized, KindAuth},
		{"forbidden", http.StatusForbidden, KindAuthorization},
		{"bad request", http.StatusBadRequest, KindValidation},
		{"unprocessable", http.StatusUnprocessableEntity, KindValidation},
		{"not found", http.StatusNotFound, KindNotFound},
		{"internal", http.StatusInternalServerError, KindServer},
		{"bad gateway", http.StatusBadGateway, KindServer},
		{"unexpected 3xx", http.StatusMovedPermanently, KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.status, "msg")
			require.Equal(t, tt.want, err.Kind)
			require.Equal(t, tt.status, err.HTTPStatus)
			require.Equal(t, "msg", err.Message)
		})
	}
}

func TestClassify_EmptyMessageUsesStatusText(t *testing.T) {
	err := classify(http.StatusNotFound, "")
	require.Equal(t, "Not Found", err.Message)
}

func TestError_IsMatchesKind(t *testing.T) {
	err := classify(http.StatusUnauthorized, "nope")
	require.ErrorIs(t, err, &Error{Kind: KindAuth})
	require.NotErrorIs(t, err, &Error{Kind: KindNotFound})
}

func TestIsKind_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("fetching blog: %w", classify(http.StatusForbidden, "not yours"))
	require.True(t, IsAuthorization(wrapped))
	require.False(t, IsAuth(wrapped))
}

func TestIsKind_PlainError(t *testing.T) {
	require.False(t, IsKind(errors.New("boom"), KindServer))
}

func TestError_Messages(t *testing.T) {
	withStatus := classify(http.StatusNotFound, "gone")
	require.Equal(t, "api: not_found (404): gone", withStatus.Error())

	transport := transportError(errors.New("connection refused"))
	require.Equal(t, "api: transport: connection refused", transport.Error())
}
