// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/respond"
	"github.com/taibuivan/newsdesk/pkg/pagination"
)

func TestOK_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.OK(rec, map[string]string{"title": "Hello"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"title":"Hello"}}`, rec.Body.String())
}

func TestPaginated_Meta(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Paginated(rec, []int{1, 2}, pagination.NewMeta(1, 2, 5))

	var body struct {
		Meta pagination.Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Meta.TotalPages)
}

func TestError_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/news/1?action=foo", nil)

	respond.Error(rec, req, apperr.BadRequest(`Unknown action "foo".`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Unknown action \"foo\".","code":"BAD_REQUEST"}`, rec.Body.String())
}

func TestError_PlainErrorBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(rec, req, errors.New("dial tcp: refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestRaw(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Raw(rec, http.StatusOK, []byte(`{"data":1}`))

	assert.Equal(t, `{"data":1}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}
