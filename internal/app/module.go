package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/homegrove/estate/internal/app/api/server"
	"github.com/homegrove/estate/internal/app/service/account"
	"github.com/homegrove/estate/internal/app/service/listing"
	"github.com/homegrove/estate/internal/app/service/plan"
	"github.com/homegrove/estate/internal/app/service/statistics"
	"github.com/homegrove/estate/internal/app/service/subscription"
	"github.com/homegrove/estate/internal/app/service/transaction"
	"github.com/homegrove/estate/internal/platform/db"
	"github.com/homegrove/estate/pkg/config"
	"github.com/homegrove/estate/pkg/logger"
	"github.com/homegrove/estate/pkg/token"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

func newTokenMaker(cfg *config.Config) *token.Maker {
	return token.NewMaker(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	fx.Provide(newTokenMaker),
	account.Module,
	plan.Module,
	subscription.Module,
	listing.Module,
	transaction.Module,
	statistics.Module,
)
