package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarrero/jobtrack/internal/service"
	"github.com/dmarrero/jobtrack/models"
)

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(mocks testMocks)
	}{
		{name: "missing header"},
		{name: "header without token", header: "Bearer"},
		{name: "header with empty token", header: "Bearer "},
		{
			name:   "expired or forged token",
			header: "Bearer bad-token",
			setup: func(mocks testMocks) {
				mocks.auth.EXPECT().
					Authenticate(gomock.Any(), "bad-token").
					Return(models.Session{}, service.ErrTokenIsExpiredOrInvalid)
			},
		},
		{
			name:   "closed session",
			header: "Bearer stale-token",
			setup: func(mocks testMocks) {
				mocks.auth.EXPECT().
					Authenticate(gomock.Any(), "stale-token").
					Return(models.Session{}, service.ErrNoActiveSession)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, mocks := newTestRouter(t, ctrl)
			if tt.setup != nil {
				tt.setup(mocks)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_PassesSessionDownstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)

	expectAuthenticated(mocks)
	// The jobs handler acts on the user ID carried by the session, proving
	// the middleware stored it in the request context.
	mocks.jobs.EXPECT().ListJobs(gomock.Any(), testSession.UserID).Return(nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/jobs", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
