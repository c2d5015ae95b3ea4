package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/noticeboard-server/internal/api/http/context"
	"github.com/dtroode/noticeboard-server/internal/mocks"
	"github.com/dtroode/noticeboard-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		authHeader     string
		tokenSvcUserID uuid.UUID
		tokenSvcErr    error
		wantStatus     int
		wantNextCalled bool
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			wantStatus:     http.StatusUnauthorized,
			wantNextCalled: false,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid",
			tokenSvcErr:    errors.New("failed to parse token"),
			wantStatus:     http.StatusBadRequest,
			wantNextCalled: false,
		},
		{
			name:           "nil user id from token",
			authHeader:     "Bearer token",
			tokenSvcUserID: uuid.Nil,
			wantStatus:     http.StatusBadRequest,
			wantNextCalled: false,
		},
		{
			name:           "valid token with bearer prefix",
			authHeader:     "Bearer token",
			tokenSvcUserID: uuid.New(),
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "valid raw token",
			authHeader:     "token",
			tokenSvcUserID: uuid.New(),
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := httpctx.NewManager()
			svc := mocks.NewTokenService(t)
			if tt.authHeader != "" {
				svc.On("GetUserID", mock.Anything, "token").Return(tt.tokenSvcUserID, tt.tokenSvcErr).Maybe()
				svc.On("GetUserID", mock.Anything, "invalid").Return(tt.tokenSvcUserID, tt.tokenSvcErr).Maybe()
			}
			m := NewAuthenticate(svc, cm, testutil.MakeNoopLogger())

			nextCalled := false
			var gotUserID uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = cm.GetUserIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/notices", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantNextCalled {
				assert.Equal(t, tt.tokenSvcUserID, gotUserID)
			}
		})
	}
}
