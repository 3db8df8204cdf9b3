package wire

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sociality/internal/common"
	"sociality/internal/config"
	"sociality/internal/dbmongo"
	"sociality/internal/feed"
	"sociality/internal/media"
	"sociality/internal/post"
	"sociality/internal/user"
)

// Application is everything main needs to serve requests.
type Application struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	Auth        *common.Auth
	UserHandler *user.Handler
	PostHandler *post.Handler
	FeedHandler *feed.Handler
	MediaServer *media.Server
}

func ProvideConfig() *config.Config {
	return config.Load()
}

func ProvideLogger(cnf *config.Config) (*zap.Logger, error) {
	return common.NewLogger(cnf.Logging.Level)
}

func ProvideTokenManager(cnf *config.Config) *common.TokenManager {
	return common.NewTokenManager(cnf.Auth.JWTSecret, time.Duration(cnf.Auth.TTLHours)*time.Hour)
}

func ProvideValidator() *validator.Validate {
	return common.NewValidator()
}

// ProvideMediaStorage picks the backend by MEDIA_DRIVER. The cleanup closes
// the Mongo connection when GridFS is in use.
func ProvideMediaStorage(cnf *config.Config) (media.Storage, func(), error) {
	if cnf.Media.Driver == "gridfs" {
		client, err := dbmongo.NewMongoConnection(cnf)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			shutdownCtx, cancel := mongoShutdownContext()
			defer cancel()
			_ = client.Close(shutdownCtx)
		}
		return media.NewGridFSStorage(client), cleanup, nil
	}

	storage, err := media.NewLocalStorage(cnf.Media.UploadDir)
	if err != nil {
		return nil, nil, err
	}
	return storage, func() {}, nil
}

func mongoShutdownContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// ProvideUserDirectory adapts the user service to what the post domain needs.
func ProvideUserDirectory(svc user.UserService) post.UserDirectory {
	return svc
}

func ProvideUserHandler(svc user.UserService, storage media.Storage, validate *validator.Validate, logger *zap.Logger, cnf *config.Config) *user.Handler {
	return user.NewHandler(svc, storage, validate, logger, cnf.Media.PublicBaseURL, cnf.Media.MaxUploadMB)
}

func ProvidePostHandler(svc post.PostService, storage media.Storage, logger *zap.Logger, cnf *config.Config) *post.Handler {
	return post.NewHandler(svc, storage, logger, cnf.Media.PublicBaseURL, cnf.Media.MaxUploadMB)
}

func NewApplication(
	cnf *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	auth *common.Auth,
	userHandler *user.Handler,
	postHandler *post.Handler,
	feedHandler *feed.Handler,
	mediaServer *media.Server,
) *Application {
	return &Application{
		Config:      cnf,
		Logger:      logger,
		DB:          db,
		Auth:        auth,
		UserHandler: userHandler,
		PostHandler: postHandler,
		FeedHandler: feedHandler,
		MediaServer: mediaServer,
	}
}
