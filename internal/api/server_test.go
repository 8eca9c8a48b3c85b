// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsdesk/internal/core/news"
	"github.com/taibuivan/newsdesk/internal/core/trash"
	"github.com/taibuivan/newsdesk/internal/platform/config"
	"github.com/taibuivan/newsdesk/internal/platform/constants"
	"github.com/taibuivan/newsdesk/internal/platform/locale"
	"github.com/taibuivan/newsdesk/internal/platform/sec"
)

func newTestServer(t *testing.T) (*Server, *sec.TokenService) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	tokens := sec.NewTokenServiceFromKeys(key, &key.PublicKey, constants.AuthIssuer)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "development", CORSOriginSuffix: "example.com"}

	liveness, readiness := NewHealthHandlers(HealthDependencies{}, logger)
	service := news.NewService(nil, nil, nil, nil, sec.NewChecker(), logger, "/news")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := NewServer(ctx, cfg, logger, tokens, Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		News:      news.NewHandler(service, locale.MustSet([]string{"en"}, "en")),
		Trash:     trash.NewHandler(trash.NewManager(nil, logger)),
	})
	return server, tokens
}

func TestServer_Routing(t *testing.T) {
	server, tokens := newTestServer(t)
	member, err := tokens.GenerateAccessToken("u-1", "reader", sec.RoleMember, nil, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		target string
		token  string
		status int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"news_requires_token", http.MethodGet, "/api/v1/news", "", http.StatusUnauthorized},
		{"bad_token", http.MethodGet, "/api/v1/news/types", "garbage", http.StatusUnauthorized},
		{"member_views_types", http.MethodGet, "/api/v1/news/types", member, http.StatusOK},
		{"trash_requires_editor", http.MethodGet, "/api/v1/trash", member, http.StatusForbidden},
		{"website_requires_path", http.MethodGet, "/api/v1/website/news", "", http.StatusBadRequest},
		{"unknown_route", http.MethodGet, "/api/v2/news", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				request.Header.Set("Authorization", "Bearer "+tt.token)
			}

			recorder := httptest.NewRecorder()
			server.Handler().ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
		})
	}
}
