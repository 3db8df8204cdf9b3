package user

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sociality/internal/common"
	"sociality/internal/dbmysql"
	"sociality/internal/media"
)

// stubUserService overrides just the methods a test exercises; anything else
// panics via the embedded nil interface.
type stubUserService struct {
	UserService
	register     func(ctx context.Context, in RegisterInput) (string, error)
	login        func(ctx context.Context, email, password string) (string, error)
	profile      func(ctx context.Context, username string, viewerID uint64) (*Profile, error)
	me           func(ctx context.Context, userID uint64) (*dbmysql.User, dbmysql.UserStats, error)
	updateMe     func(ctx context.Context, userID uint64, in UpdateProfileInput) (*dbmysql.User, dbmysql.UserStats, error)
	search       func(ctx context.Context, query string, offset, limit int) ([]dbmysql.User, int64, error)
	followingSet func(ctx context.Context, viewerID uint64, userIDs []uint64) (map[uint64]bool, error)
	follow       func(ctx context.Context, followerID uint64, username string) (*FollowResult, error)
}

func (s *stubUserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	return s.register(ctx, in)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, error) {
	return s.login(ctx, email, password)
}

func (s *stubUserService) Profile(ctx context.Context, username string, viewerID uint64) (*Profile, error) {
	return s.profile(ctx, username, viewerID)
}

func (s *stubUserService) Me(ctx context.Context, userID uint64) (*dbmysql.User, dbmysql.UserStats, error) {
	return s.me(ctx, userID)
}

func (s *stubUserService) UpdateMe(ctx context.Context, userID uint64, in UpdateProfileInput) (*dbmysql.User, dbmysql.UserStats, error) {
	return s.updateMe(ctx, userID, in)
}

func (s *stubUserService) Search(ctx context.Context, query string, offset, limit int) ([]dbmysql.User, int64, error) {
	return s.search(ctx, query, offset, limit)
}

func (s *stubUserService) FollowingSet(ctx context.Context, viewerID uint64, userIDs []uint64) (map[uint64]bool, error) {
	return s.followingSet(ctx, viewerID, userIDs)
}

func (s *stubUserService) Follow(ctx context.Context, followerID uint64, username string) (*FollowResult, error) {
	return s.follow(ctx, followerID, username)
}

func newTestRouter(t *testing.T, svc UserService) (*mux.Router, *common.TokenManager) {
	t.Helper()
	return newTestRouterWithStorage(t, svc, nil)
}

func newTestRouterWithStorage(t *testing.T, svc UserService, storage media.Storage) (*mux.Router, *common.TokenManager) {
	t.Helper()
	tokens := common.NewTokenManager("test-secret", time.Hour)
	h := NewHandler(svc, storage, common.NewValidator(), zap.NewNop(), "", 8)

	r := mux.NewRouter()
	h.RegisterRoutes(r.PathPrefix("/api").Subrouter(), common.NewAuth(tokens))
	return r, tokens
}

func TestRegisterHandler(t *testing.T) {
	t.Run("valid payload returns 201 with token", func(t *testing.T) {
		svc := &stubUserService{register: func(_ context.Context, in RegisterInput) (string, error) {
			require.Equal(t, "ana", in.Username)
			return "jwt-token", nil
		}}
		router, _ := newTestRouter(t, svc)

		body := `{"name":"Ana","username":"ana","email":"ana@example.com","password":"secret123"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "jwt-token", resp["token"])
	})

	t.Run("validation failures are 400 with field details", func(t *testing.T) {
		router, _ := newTestRouter(t, &stubUserService{})

		body := `{"name":"Ana","username":"bad name!","email":"not-an-email","password":"x"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp struct {
			Error   string            `json:"error"`
			Details map[string]string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Details["Username"])
		require.NotEmpty(t, resp.Details["Email"])
		require.NotEmpty(t, resp.Details["Password"])
	})

	t.Run("service conflict surfaces as 400", func(t *testing.T) {
		svc := &stubUserService{register: func(context.Context, RegisterInput) (string, error) {
			return "", common.ErrConflict("Email already registered")
		}}
		router, _ := newTestRouter(t, svc)

		body := `{"name":"Ana","username":"ana","email":"ana@example.com","password":"secret123"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body)))

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Email already registered")
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("bad credentials are 401", func(t *testing.T) {
		svc := &stubUserService{login: func(context.Context, string, string) (string, error) {
			return "", common.ErrUnauthorized("Invalid credentials")
		}}
		router, _ := newTestRouter(t, svc)

		body := `{"email":"ana@example.com","password":"wrong"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body)))

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMeRequiresAuth(t *testing.T) {
	router, tokens := newTestRouter(t, &stubUserService{
		me: func(_ context.Context, userID uint64) (*dbmysql.User, dbmysql.UserStats, error) {
			require.Equal(t, uint64(42), userID)
			return &dbmysql.User{UserID: 42, Username: "ana"}, dbmysql.UserStats{Posts: 2}, nil
		},
	})

	t.Run("without token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/me", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("with token", func(t *testing.T) {
		token, err := tokens.GenerateToken(42, "USER")
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/api/me", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"username":"ana"`)
		require.Contains(t, w.Body.String(), `"isMe":true`)
	})
}

func TestProfileHandler(t *testing.T) {
	router, _ := newTestRouter(t, &stubUserService{
		profile: func(_ context.Context, username string, viewerID uint64) (*Profile, error) {
			require.Equal(t, "ana", username)
			require.Zero(t, viewerID)
			return &Profile{
				User:        dbmysql.User{UserID: 7, Username: "ana"},
				Stats:       dbmysql.UserStats{Followers: 3},
				IsFollowing: false,
			}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/users/ana", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"isFollowing":false`)
	require.Contains(t, w.Body.String(), `"followers":3`)
}

func TestSearchHandler(t *testing.T) {
	svc := &stubUserService{
		search: func(_ context.Context, query string, offset, limit int) ([]dbmysql.User, int64, error) {
			require.Equal(t, "an", query)
			require.Zero(t, offset)
			require.Equal(t, 20, limit)
			return []dbmysql.User{{UserID: 7, Username: "ana"}}, 1, nil
		},
		followingSet: func(_ context.Context, viewerID uint64, ids []uint64) (map[uint64]bool, error) {
			require.Zero(t, viewerID)
			require.Equal(t, []uint64{7}, ids)
			return map[uint64]bool{}, nil
		},
		profile: func(_ context.Context, username string, _ uint64) (*Profile, error) {
			t.Fatalf("search request was routed to the profile handler for %q", username)
			return nil, nil
		},
	}
	router, _ := newTestRouter(t, svc)

	t.Run("dedicated search path", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/users/search?q=an", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"username":"ana"`)
		require.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("bare collection path still searches", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/users?q=an", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"username":"ana"`)
	})
}

// recordingStorage notes every save and delete so tests can assert on upload
// lifecycles without touching disk.
type recordingStorage struct {
	saved   []string
	deleted []string
}

func (s *recordingStorage) Save(_ context.Context, name, _ string, r io.Reader) error {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return err
	}
	s.saved = append(s.saved, name)
	return nil
}

func (s *recordingStorage) Open(context.Context, string) (io.ReadCloser, int64, error) {
	return nil, 0, os.ErrNotExist
}

func (s *recordingStorage) Delete(_ context.Context, name string) error {
	s.deleted = append(s.deleted, name)
	return nil
}

func multipartProfileBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="me.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUpdateMeAvatarLifecycle(t *testing.T) {
	patchMe := func(t *testing.T, svc UserService, storage media.Storage, fields map[string]string) *httptest.ResponseRecorder {
		t.Helper()
		router, tokens := newTestRouterWithStorage(t, svc, storage)
		token, err := tokens.GenerateToken(42, "USER")
		require.NoError(t, err)

		body, contentType := multipartProfileBody(t, fields)
		r := httptest.NewRequest("PATCH", "/api/me", body)
		r.Header.Set("Authorization", "Bearer "+token)
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		return w
	}

	t.Run("successful update keeps the stored avatar", func(t *testing.T) {
		storage := &recordingStorage{}
		svc := &stubUserService{
			updateMe: func(_ context.Context, userID uint64, in UpdateProfileInput) (*dbmysql.User, dbmysql.UserStats, error) {
				require.Equal(t, uint64(42), userID)
				require.NotNil(t, in.AvatarURL)
				require.True(t, strings.HasPrefix(*in.AvatarURL, "/uploads/"))
				return &dbmysql.User{UserID: 42, Username: "ana", AvatarURL: *in.AvatarURL}, dbmysql.UserStats{}, nil
			},
		}

		w := patchMe(t, svc, storage, map[string]string{"name": "Ana"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, storage.saved, 1)
		require.Empty(t, storage.deleted)
	})

	t.Run("rejected update removes the stored avatar", func(t *testing.T) {
		storage := &recordingStorage{}
		svc := &stubUserService{
			updateMe: func(context.Context, uint64, UpdateProfileInput) (*dbmysql.User, dbmysql.UserStats, error) {
				return nil, dbmysql.UserStats{}, common.ErrConflict("Username already taken")
			},
		}

		w := patchMe(t, svc, storage, map[string]string{"username": "taken"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Len(t, storage.saved, 1)
		require.Equal(t, storage.saved, storage.deleted)
	})

	t.Run("invalid fields never reach storage", func(t *testing.T) {
		storage := &recordingStorage{}

		w := patchMe(t, &stubUserService{}, storage, map[string]string{"username": "ab"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Empty(t, storage.saved)
		require.Empty(t, storage.deleted)
	})
}

func TestFollowHandler(t *testing.T) {
	router, tokens := newTestRouter(t, &stubUserService{
		follow: func(_ context.Context, followerID uint64, username string) (*FollowResult, error) {
			require.Equal(t, uint64(42), followerID)
			return &FollowResult{
				Target:    dbmysql.User{UserID: 7, Username: username},
				Stats:     dbmysql.UserStats{Followers: 1},
				Following: true,
			}, nil
		},
	})

	token, err := tokens.GenerateToken(42, "USER")
	require.NoError(t, err)

	r := httptest.NewRequest("POST", "/api/follow/ana", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)
	require.Contains(t, w.Body.String(), `"following":true`)
	require.Contains(t, w.Body.String(), "You are now following @ana")
}
