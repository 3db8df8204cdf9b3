package post

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sociality/internal/common"
)

// stubPostService overrides just the methods a test exercises; anything else
// panics via the embedded nil interface.
type stubPostService struct {
	PostService
	deleteCommentByID func(ctx context.Context, commentID, actorID uint64) error
}

func (s *stubPostService) DeleteCommentByID(ctx context.Context, commentID, actorID uint64) error {
	return s.deleteCommentByID(ctx, commentID, actorID)
}

func newTestRouter(t *testing.T, svc PostService) (*mux.Router, *common.TokenManager) {
	t.Helper()
	tokens := common.NewTokenManager("test-secret", time.Hour)
	h := NewHandler(svc, nil, zap.NewNop(), "", 8)

	r := mux.NewRouter()
	h.RegisterRoutes(r.PathPrefix("/api").Subrouter(), common.NewAuth(tokens))
	return r, tokens
}

func TestDeleteCommentByIDHandler(t *testing.T) {
	t.Run("deletes by comment id alone", func(t *testing.T) {
		svc := &stubPostService{deleteCommentByID: func(_ context.Context, commentID, actorID uint64) error {
			require.Equal(t, uint64(5), commentID)
			require.Equal(t, uint64(42), actorID)
			return nil
		}}
		router, tokens := newTestRouter(t, svc)

		token, err := tokens.GenerateToken(42, "USER")
		require.NoError(t, err)

		r := httptest.NewRequest("DELETE", "/api/comments/5", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("requires auth", func(t *testing.T) {
		router, _ := newTestRouter(t, &stubPostService{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/comments/5", nil))

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		router, tokens := newTestRouter(t, &stubPostService{})

		token, err := tokens.GenerateToken(42, "USER")
		require.NoError(t, err)

		r := httptest.NewRequest("DELETE", "/api/comments/abc", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service errors pass through", func(t *testing.T) {
		svc := &stubPostService{deleteCommentByID: func(context.Context, uint64, uint64) error {
			return common.ErrForbidden("You cannot delete this comment")
		}}
		router, tokens := newTestRouter(t, svc)

		token, err := tokens.GenerateToken(3, "USER")
		require.NoError(t, err)

		r := httptest.NewRequest("DELETE", "/api/comments/5", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
