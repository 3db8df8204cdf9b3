package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"sociality/internal/common"
	"sociality/internal/dbmysql"
)

type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Phone    string
	Password string
}

// UpdateProfileInput distinguishes "not sent" (nil) from "clear this field"
// (pointer to empty string), like the PATCH semantics require.
type UpdateProfileInput struct {
	Name      *string
	Username  *string
	Phone     *string
	Bio       *string
	AvatarURL *string
}

// Profile is a user resolved relative to a viewer.
type Profile struct {
	User        dbmysql.User
	Stats       dbmysql.UserStats
	IsFollowing bool
	IsMe        bool
}

// FollowPage is one page of followers or following with batched stats.
type FollowPage struct {
	Users []dbmysql.User
	Stats map[uint64]dbmysql.UserStats
	Total int64
}

// FollowResult reports the outcome of a follow/unfollow with the target's
// recomputed counts.
type FollowResult struct {
	Target    dbmysql.User
	Stats     dbmysql.UserStats
	Following bool
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, userID uint64) (*dbmysql.User, dbmysql.UserStats, error)
	UpdateMe(ctx context.Context, userID uint64, in UpdateProfileInput) (*dbmysql.User, dbmysql.UserStats, error)
	ByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	Profile(ctx context.Context, username string, viewerID uint64) (*Profile, error)
	Search(ctx context.Context, query string, offset, limit int) ([]dbmysql.User, int64, error)
	Followers(ctx context.Context, userID uint64, offset, limit int) (*FollowPage, error)
	Following(ctx context.Context, userID uint64, offset, limit int) (*FollowPage, error)
	FollowingSet(ctx context.Context, viewerID uint64, userIDs []uint64) (map[uint64]bool, error)
	StatsFor(ctx context.Context, userIDs []uint64) (map[uint64]dbmysql.UserStats, error)
	Follow(ctx context.Context, followerID uint64, username string) (*FollowResult, error)
	Unfollow(ctx context.Context, followerID uint64, username string) (*FollowResult, error)
}

type userService struct {
	userRepo   UserRepository
	followRepo FollowRepository
	statsRepo  StatsRepository
	tokens     *common.TokenManager
}

func NewUserService(userRepo UserRepository, followRepo FollowRepository, statsRepo StatsRepository, tokens *common.TokenManager) UserService {
	return &userService{userRepo: userRepo, followRepo: followRepo, statsRepo: statsRepo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)

	emailTaken, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return "", err
	}
	if emailTaken {
		return "", common.ErrConflict("Email already registered")
	}

	usernameTaken, err := s.userRepo.UsernameExists(ctx, username, 0)
	if err != nil {
		return "", err
	}
	if usernameTaken {
		return "", common.ErrConflict("Username already taken")
	}

	hashed, err := common.HashPassword(in.Password)
	if err != nil {
		return "", err
	}

	u := &dbmysql.User{
		Name:         strings.TrimSpace(in.Name),
		Username:     username,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hashed,
		Role:         dbmysql.RoleUser,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		// two concurrent registrations can both pass the exists check; the
		// unique index settles it
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", common.ErrConflict("Email or username already taken")
		}
		return "", err
	}

	return s.tokens.GenerateToken(u.UserID, u.Role)
}

func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.userRepo.ByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", common.ErrUnauthorized("Invalid credentials")
		}
		return "", err
	}

	if err := common.CheckPassword(password, u.PasswordHash); err != nil {
		return "", common.ErrUnauthorized("Invalid credentials")
	}

	return s.tokens.GenerateToken(u.UserID, u.Role)
}

func (s *userService) Me(ctx context.Context, userID uint64) (*dbmysql.User, dbmysql.UserStats, error) {
	u, err := s.userRepo.ByID(ctx, userID)
	if err != nil {
		return nil, dbmysql.UserStats{}, err
	}
	stats, err := s.statsRepo.ForUser(ctx, userID)
	if err != nil {
		return nil, dbmysql.UserStats{}, err
	}
	return u, stats, nil
}

func (s *userService) UpdateMe(ctx context.Context, userID uint64, in UpdateProfileInput) (*dbmysql.User, dbmysql.UserStats, error) {
	u, err := s.userRepo.ByID(ctx, userID)
	if err != nil {
		return nil, dbmysql.UserStats{}, err
	}

	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Username != nil {
		desired := strings.TrimSpace(*in.Username)
		if desired == "" {
			return nil, dbmysql.UserStats{}, common.NewError(common.CodeValidation, "Username cannot be empty")
		}
		taken, err := s.userRepo.UsernameExists(ctx, desired, userID)
		if err != nil {
			return nil, dbmysql.UserStats{}, err
		}
		if taken {
			return nil, dbmysql.UserStats{}, common.ErrConflict("Username already taken")
		}
		u.Username = desired
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Bio != nil {
		u.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.AvatarURL != nil {
		u.AvatarURL = strings.TrimSpace(*in.AvatarURL)
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, dbmysql.UserStats{}, common.ErrConflict("Username already taken")
		}
		return nil, dbmysql.UserStats{}, err
	}

	stats, err := s.statsRepo.ForUser(ctx, userID)
	if err != nil {
		return nil, dbmysql.UserStats{}, err
	}
	return u, stats, nil
}

func (s *userService) ByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	u, err := s.userRepo.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound("User not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Profile(ctx context.Context, username string, viewerID uint64) (*Profile, error) {
	u, err := s.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.ForUser(ctx, u.UserID)
	if err != nil {
		return nil, err
	}

	isMe := viewerID != 0 && viewerID == u.UserID

	// your own profile is never "followed by you", whatever the edge table says
	isFollowing := false
	if viewerID != 0 && !isMe {
		isFollowing, err = s.followRepo.Exists(ctx, viewerID, u.UserID)
		if err != nil {
			return nil, err
		}
	}

	return &Profile{User: *u, Stats: stats, IsFollowing: isFollowing, IsMe: isMe}, nil
}

func (s *userService) Search(ctx context.Context, query string, offset, limit int) ([]dbmysql.User, int64, error) {
	return s.userRepo.Search(ctx, query, offset, limit)
}

func (s *userService) Followers(ctx context.Context, userID uint64, offset, limit int) (*FollowPage, error) {
	users, total, err := s.followRepo.Followers(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.followPage(ctx, users, total)
}

func (s *userService) Following(ctx context.Context, userID uint64, offset, limit int) (*FollowPage, error) {
	users, total, err := s.followRepo.Following(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.followPage(ctx, users, total)
}

func (s *userService) followPage(ctx context.Context, users []dbmysql.User, total int64) (*FollowPage, error) {
	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}
	stats, err := s.statsRepo.ForUsers(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &FollowPage{Users: users, Stats: stats, Total: total}, nil
}

func (s *userService) FollowingSet(ctx context.Context, viewerID uint64, userIDs []uint64) (map[uint64]bool, error) {
	return s.followRepo.FollowingSet(ctx, viewerID, userIDs)
}

func (s *userService) StatsFor(ctx context.Context, userIDs []uint64) (map[uint64]dbmysql.UserStats, error) {
	return s.statsRepo.ForUsers(ctx, userIDs)
}

func (s *userService) Follow(ctx context.Context, followerID uint64, username string) (*FollowResult, error) {
	target, err := s.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if target.UserID == followerID {
		return nil, common.NewError(common.CodeValidation, "You cannot follow yourself")
	}

	if err := s.followRepo.Upsert(ctx, followerID, target.UserID); err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.ForUser(ctx, target.UserID)
	if err != nil {
		return nil, err
	}
	return &FollowResult{Target: *target, Stats: stats, Following: true}, nil
}

func (s *userService) Unfollow(ctx context.Context, followerID uint64, username string) (*FollowResult, error) {
	target, err := s.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if target.UserID == followerID {
		return nil, common.NewError(common.CodeValidation, "You cannot unfollow yourself")
	}

	if err := s.followRepo.Delete(ctx, followerID, target.UserID); err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.ForUser(ctx, target.UserID)
	if err != nil {
		return nil, err
	}
	return &FollowResult{Target: *target, Stats: stats, Following: false}, nil
}

// FollowMessage is the human-readable line the follow endpoints return.
func FollowMessage(username string, following bool) string {
	if following {
		return fmt.Sprintf("You are now following @%s", username)
	}
	return fmt.Sprintf("You unfollowed @%s", username)
}
