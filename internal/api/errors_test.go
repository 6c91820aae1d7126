package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpetrenko/castgate/internal/common"
)

func TestAPIError_MessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		code int
		body string
		want string
	}{
		{
			name: "top-level error string wins",
			code: 403,
			body: `{"error":"Upload limit reached","formErrors":["ignored"]}`,
			want: "Upload limit reached",
		},
		{
			name: "message used when error absent",
			code: 400,
			body: `{"message":"Something went wrong"}`,
			want: "Something went wrong",
		},
		{
			name: "form errors joined",
			code: 400,
			body: `{"formErrors":["Title is required","Date is in the past"]}`,
			want: "Title is required, Date is in the past",
		},
		{
			name: "first field error with field name",
			code: 400,
			body: `{"fieldErrors":{"email":["Required"]}}`,
			want: "email: Required",
		},
		{
			name: "raw payload when nothing structured",
			code: 500,
			body: `upstream exploded`,
			want: "upstream exploded",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newAPIError(tc.code, fmt.Sprintf("%d %s", tc.code, http.StatusText(tc.code)), []byte(tc.body))
			assert.Equal(t, tc.want, e.Message())
		})
	}
}

func TestAPIError_EmptyBody_FallsBackToStatusLine(t *testing.T) {
	e := newAPIError(502, "502 Bad Gateway", nil)
	assert.Equal(t, "502 Bad Gateway", e.Message())
}

func TestIsQuotaExceeded(t *testing.T) {
	quota := newAPIError(http.StatusForbidden, "403 Forbidden", []byte(`{"error":"Upload limit reached"}`))
	assert.True(t, IsQuotaExceeded(quota))
	assert.Equal(t, "Upload limit reached", quota.Message())

	// validation failure on the same endpoint stays generic
	validation := newAPIError(http.StatusBadRequest, "400 Bad Request", []byte(`{"fieldErrors":{"email":["Required"]}}`))
	assert.False(t, IsQuotaExceeded(validation))
	assert.Equal(t, "email: Required", validation.Message())

	// plain transport errors are never quota
	assert.False(t, IsQuotaExceeded(errors.New("connection refused")))
	assert.False(t, IsQuotaExceeded(nil))

	// wrapped APIErrors still classify
	wrapped := fmt.Errorf("schedule upload: %w", quota)
	assert.True(t, IsQuotaExceeded(wrapped))
}

func TestAPIError_Is_Unauthorized(t *testing.T) {
	e := newAPIError(http.StatusUnauthorized, "401 Unauthorized", []byte(`{"error":"token expired"}`))
	assert.True(t, errors.Is(e, common.ErrUnauthorized))

	forbidden := newAPIError(http.StatusForbidden, "403 Forbidden", nil)
	assert.False(t, errors.Is(forbidden, common.ErrUnauthorized))
}

func TestAPIError_Is_QuotaExceeded(t *testing.T) {
	forbidden := newAPIError(http.StatusForbidden, "403 Forbidden", []byte(`{"error":"Upload limit reached"}`))
	assert.True(t, errors.Is(forbidden, common.ErrQuotaExceeded))
	assert.True(t, errors.Is(fmt.Errorf("schedule upload: %w", forbidden), common.ErrQuotaExceeded))

	unauthorized := newAPIError(http.StatusUnauthorized, "401 Unauthorized", nil)
	assert.False(t, errors.Is(unauthorized, common.ErrQuotaExceeded))
}

func TestErrorMessage(t *testing.T) {
	apiErr := newAPIError(400, "400 Bad Request", []byte(`{"error":"bad title"}`))
	assert.Equal(t, "bad title", ErrorMessage(apiErr, "fallback"))
	assert.Equal(t, "bad title", ErrorMessage(fmt.Errorf("wrapped: %w", apiErr), "fallback"))

	assert.Equal(t, "plain failure", ErrorMessage(errors.New("plain failure"), "fallback"))
	assert.Equal(t, "", ErrorMessage(nil, "fallback"))
}
