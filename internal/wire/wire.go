//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"sociality/internal/common"
	"sociality/internal/dbmysql"
	"sociality/internal/feed"
	"sociality/internal/media"
	"sociality/internal/post"
	"sociality/internal/user"
)

// InitializeApplication builds the whole object graph from environment
// configuration. Run `wire ./internal/wire` after changing providers.
func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideTokenManager,
		ProvideValidator,
		ProvideMediaStorage,
		ProvideUserDirectory,
		ProvideUserHandler,
		ProvidePostHandler,
		common.NewAuth,
		dbmysql.NewMySQL,
		user.NewUserRepository,
		user.NewFollowRepository,
		user.NewStatsRepository,
		user.NewUserService,
		post.NewPostRepository,
		post.NewCommentRepository,
		post.NewEngagementRepository,
		post.NewPostService,
		feed.NewHandler,
		media.NewServer,
		NewApplication,
	)
	return nil, nil, nil
}
