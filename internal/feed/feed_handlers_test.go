package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sociality/internal/common"
	"sociality/internal/dbmysql"
	"sociality/internal/post"
)

type stubPostService struct {
	post.PostService
	feed      func(ctx context.Context, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error)
	feedAfter func(ctx context.Context, viewerID, cursor uint64, limit int) ([]dbmysql.PostWithMeta, *uint64, error)
}

func (s *stubPostService) Feed(ctx context.Context, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error) {
	return s.feed(ctx, viewerID, offset, limit)
}

func (s *stubPostService) FeedAfter(ctx context.Context, viewerID, cursor uint64, limit int) ([]dbmysql.PostWithMeta, *uint64, error) {
	return s.feedAfter(ctx, viewerID, cursor, limit)
}

func newFeedRouter(t *testing.T, svc post.PostService) *mux.Router {
	t.Helper()
	tokens := common.NewTokenManager("test-secret", time.Hour)
	r := mux.NewRouter()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(r.PathPrefix("/api").Subrouter(), common.NewAuth(tokens))
	return r
}

func somePosts(ids ...uint64) []dbmysql.PostWithMeta {
	out := make([]dbmysql.PostWithMeta, 0, len(ids))
	for _, id := range ids {
		out = append(out, dbmysql.PostWithMeta{Post: dbmysql.Post{
			PostID:   id,
			ImageURL: "/uploads/a.jpg",
			Author:   dbmysql.User{UserID: 1, Username: "ana"},
		}})
	}
	return out
}

func TestPagedFeed(t *testing.T) {
	router := newFeedRouter(t, &stubPostService{
		feed: func(_ context.Context, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error) {
			require.Zero(t, viewerID)
			require.Equal(t, 0, offset)
			require.Equal(t, 12, limit)
			return somePosts(30, 29), 25, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/feed", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items      []json.RawMessage `json:"items"`
		Posts      []json.RawMessage `json:"posts"`
		Pagination common.Pagination `json:"pagination"`
		NextCursor *string           `json:"nextCursor"`
		Data       json.RawMessage   `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)
	require.Len(t, body.Posts, 2)
	require.Equal(t, int64(25), body.Pagination.Total)
	require.Equal(t, 3, body.Pagination.TotalPages)
	require.NotNil(t, body.NextCursor)
	require.Equal(t, "2", *body.NextCursor)
	require.NotEmpty(t, body.Data)
}

func TestCursorFeed(t *testing.T) {
	t.Run("returns the next cursor from the service", func(t *testing.T) {
		router := newFeedRouter(t, &stubPostService{
			feedAfter: func(_ context.Context, viewerID, cursor uint64, limit int) ([]dbmysql.PostWithMeta, *uint64, error) {
				require.Equal(t, uint64(30), cursor)
				require.Equal(t, 2, limit)
				next := uint64(28)
				return somePosts(29, 28), &next, nil
			},
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/feed?cursor=30&limit=2", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Items      []json.RawMessage `json:"items"`
			NextCursor *string           `json:"nextCursor"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Items, 2)
		require.NotNil(t, body.NextCursor)
		require.Equal(t, "28", *body.NextCursor)
	})

	t.Run("exhausted feed has a null cursor", func(t *testing.T) {
		router := newFeedRouter(t, &stubPostService{
			feedAfter: func(context.Context, uint64, uint64, int) ([]dbmysql.PostWithMeta, *uint64, error) {
				return somePosts(5), nil, nil
			},
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/feed?cursor=6", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"nextCursor":null`)
	})

	t.Run("bad cursor is 400", func(t *testing.T) {
		router := newFeedRouter(t, &stubPostService{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/feed?cursor=abc", nil))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
