package user

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"sociality/internal/dbmysql"
)

type UserRepository interface {
	Create(ctx context.Context, user *dbmysql.User) error
	ByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
	ByEmail(ctx context.Context, email string) (*dbmysql.User, error)
	ByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// UsernameExists ignores excludeID so a user can keep their own name on update.
	UsernameExists(ctx context.Context, username string, excludeID uint64) (bool, error)
	Update(ctx context.Context, user *dbmysql.User) error
	Search(ctx context.Context, query string, offset, limit int) ([]dbmysql.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) ByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UsernameExists(ctx context.Context, username string, excludeID uint64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("username = ?", username)
	if excludeID != 0 {
		q = q.Where("user_id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Search(ctx context.Context, query string, offset, limit int) ([]dbmysql.User, int64, error) {
	query = strings.TrimSpace(query)
	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&dbmysql.User{})
		if query != "" {
			like := "%" + query + "%"
			q = q.Where("username LIKE ? OR name LIKE ? OR email LIKE ?", like, like, like)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []dbmysql.User
	err := scope().
		Order("name ASC").
		Order("username ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
