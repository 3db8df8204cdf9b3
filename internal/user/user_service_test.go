package user

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sociality/internal/common"
	"sociality/internal/dbmysql"
)

type serviceMocks struct {
	users   *MockUserRepository
	follows *MockFollowRepository
	stats   *MockStatsRepository
}

func newTestService(t *testing.T) (UserService, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		users:   NewMockUserRepository(ctrl),
		follows: NewMockFollowRepository(ctrl),
		stats:   NewMockStatsRepository(ctrl),
	}
	tokens := common.NewTokenManager("test-secret", time.Hour)
	return NewUserService(m.users, m.follows, m.stats, tokens), m
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns a token", func(t *testing.T) {
		svc, m := newTestService(t)

		m.users.EXPECT().EmailExists(ctx, "ana@example.com").Return(false, nil)
		m.users.EXPECT().UsernameExists(ctx, "ana", uint64(0)).Return(false, nil)
		m.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *dbmysql.User) error {
			require.Equal(t, "ana@example.com", u.Email)
			require.Equal(t, dbmysql.RoleUser, u.Role)
			require.NotEqual(t, "secret123", u.PasswordHash)
			u.UserID = 7
			return nil
		})

		token, err := svc.Register(ctx, RegisterInput{
			Name:     "Ana",
			Username: "ana",
			Email:    "Ana@Example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, m := newTestService(t)

		m.users.EXPECT().EmailExists(ctx, "ana@example.com").Return(true, nil)

		_, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "ana@example.com", Password: "secret123"})
		require.Error(t, err)
		appErr := common.AsAppError(err)
		require.Equal(t, common.CodeConflict, appErr.Code)
		require.Equal(t, "Email already registered", appErr.Message)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, m := newTestService(t)

		m.users.EXPECT().EmailExists(ctx, "ana@example.com").Return(false, nil)
		m.users.EXPECT().UsernameExists(ctx, "ana", uint64(0)).Return(true, nil)

		_, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "ana@example.com", Password: "secret123"})
		require.Error(t, err)
		require.Equal(t, "Username already taken", common.AsAppError(err).Message)
	})

	t.Run("unique index race maps to conflict", func(t *testing.T) {
		svc, m := newTestService(t)

		m.users.EXPECT().EmailExists(ctx, "ana@example.com").Return(false, nil)
		m.users.EXPECT().UsernameExists(ctx, "ana", uint64(0)).Return(false, nil)
		m.users.EXPECT().Create(ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "ana@example.com", Password: "secret123"})
		require.Equal(t, common.CodeConflict, common.AsAppError(err).Code)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := common.HashPassword("secret123")
	require.NoError(t, err)
	stored := &dbmysql.User{UserID: 7, Email: "ana@example.com", PasswordHash: hash, Role: dbmysql.RoleUser}

	t.Run("success", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByEmail(ctx, "ana@example.com").Return(stored, nil)

		token, err := svc.Login(ctx, " Ana@example.com ", "secret123")
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByEmail(ctx, "ana@example.com").Return(stored, nil)

		_, err := svc.Login(ctx, "ana@example.com", "wrong")
		require.Equal(t, common.CodeUnauthorized, common.AsAppError(err).Code)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByEmail(ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(ctx, "ghost@example.com", "whatever")
		appErr := common.AsAppError(err)
		require.Equal(t, common.CodeUnauthorized, appErr.Code)
		require.Equal(t, "Invalid credentials", appErr.Message)
	})
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	ana := &dbmysql.User{UserID: 7, Username: "ana"}

	t.Run("own profile is isMe and never isFollowing", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByUsername(ctx, "ana").Return(ana, nil)
		m.stats.EXPECT().ForUser(ctx, uint64(7)).Return(dbmysql.UserStats{Posts: 3}, nil)
		// no follows.Exists call: the viewer is the subject

		p, err := svc.Profile(ctx, "ana", 7)
		require.NoError(t, err)
		require.True(t, p.IsMe)
		require.False(t, p.IsFollowing)
		require.Equal(t, int64(3), p.Stats.Posts)
	})

	t.Run("followed profile", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByUsername(ctx, "ana").Return(ana, nil)
		m.stats.EXPECT().ForUser(ctx, uint64(7)).Return(dbmysql.UserStats{}, nil)
		m.follows.EXPECT().Exists(ctx, uint64(2), uint64(7)).Return(true, nil)

		p, err := svc.Profile(ctx, "ana", 2)
		require.NoError(t, err)
		require.False(t, p.IsMe)
		require.True(t, p.IsFollowing)
	})

	t.Run("anonymous viewer skips the follow check", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByUsername(ctx, "ana").Return(ana, nil)
		m.stats.EXPECT().ForUser(ctx, uint64(7)).Return(dbmysql.UserStats{}, nil)

		p, err := svc.Profile(ctx, "ana", 0)
		require.NoError(t, err)
		require.False(t, p.IsMe)
		require.False(t, p.IsFollowing)
	})

	t.Run("unknown username is a 404", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByUsername(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Profile(ctx, "ghost", 0)
		require.Equal(t, common.CodeNotFound, common.AsAppError(err).Code)
	})
}

func TestFollow(t *testing.T) {
	ctx := context.Background()
	ana := &dbmysql.User{UserID: 7, Username: "ana"}

	t.Run("self follow rejected", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByUsername(ctx, "ana").Return(ana, nil)

		_, err := svc.Follow(ctx, 7, "ana")
		require.Equal(t, common.CodeValidation, common.AsAppError(err).Code)
	})

	t.Run("follow upserts and returns target stats", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByUsername(ctx, "ana").Return(ana, nil)
		m.follows.EXPECT().Upsert(ctx, uint64(2), uint64(7)).Return(nil)
		m.stats.EXPECT().ForUser(ctx, uint64(7)).Return(dbmysql.UserStats{Followers: 1}, nil)

		res, err := svc.Follow(ctx, 2, "ana")
		require.NoError(t, err)
		require.True(t, res.Following)
		require.Equal(t, int64(1), res.Stats.Followers)
	})

	t.Run("unfollow is idempotent and flips the flag", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByUsername(ctx, "ana").Return(ana, nil)
		m.follows.EXPECT().Delete(ctx, uint64(2), uint64(7)).Return(nil)
		m.stats.EXPECT().ForUser(ctx, uint64(7)).Return(dbmysql.UserStats{Followers: 0}, nil)

		res, err := svc.Unfollow(ctx, 2, "ana")
		require.NoError(t, err)
		require.False(t, res.Following)
	})
}

func TestUpdateMe(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update leaves absent fields alone", func(t *testing.T) {
		svc, m := newTestService(t)
		existing := &dbmysql.User{UserID: 7, Username: "ana", Name: "Ana", Bio: "old bio"}
		m.users.EXPECT().ByID(ctx, uint64(7)).Return(existing, nil)
		m.users.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *dbmysql.User) error {
			require.Equal(t, "new bio", u.Bio)
			require.Equal(t, "Ana", u.Name)
			require.Equal(t, "ana", u.Username)
			return nil
		})
		m.stats.EXPECT().ForUser(ctx, uint64(7)).Return(dbmysql.UserStats{}, nil)

		bio := "new bio"
		u, _, err := svc.UpdateMe(ctx, 7, UpdateProfileInput{Bio: &bio})
		require.NoError(t, err)
		require.Equal(t, "new bio", u.Bio)
	})

	t.Run("username conflict", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByID(ctx, uint64(7)).Return(&dbmysql.User{UserID: 7, Username: "ana"}, nil)
		m.users.EXPECT().UsernameExists(ctx, "taken", uint64(7)).Return(true, nil)

		name := "taken"
		_, _, err := svc.UpdateMe(ctx, 7, UpdateProfileInput{Username: &name})
		require.Equal(t, common.CodeConflict, common.AsAppError(err).Code)
	})

	t.Run("empty username rejected", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().ByID(ctx, uint64(7)).Return(&dbmysql.User{UserID: 7, Username: "ana"}, nil)

		empty := "  "
		_, _, err := svc.UpdateMe(ctx, 7, UpdateProfileInput{Username: &empty})
		require.Equal(t, common.CodeValidation, common.AsAppError(err).Code)
	})
}

func TestFollowers(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	users := []dbmysql.User{{UserID: 2, Username: "bo"}, {UserID: 3, Username: "cy"}}
	m.follows.EXPECT().Followers(ctx, uint64(7), 0, 20).Return(users, int64(2), nil)
	m.stats.EXPECT().ForUsers(ctx, []uint64{2, 3}).Return(map[uint64]dbmysql.UserStats{
		2: {Posts: 1},
		3: {Posts: 4},
	}, nil)

	page, err := svc.Followers(ctx, 7, 0, 20)
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)
	require.Len(t, page.Users, 2)
	require.Equal(t, int64(4), page.Stats[3].Posts)
}
