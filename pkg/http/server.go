package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/prasetyobagus/anterin/pkg/http/router"
	"github.com/prasetyobagus/anterin/pkg/http/router/controllers"
	http_server "github.com/prasetyobagus/anterin/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	routingService controllers.RoutingService,
	plannerService controllers.RoutePlannerService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "1000s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	g := errgroup.Group{}

	g.Go(func() error {
		err := server.Run(
			ctx, config, log,
			useRateLimit, routingService, plannerService,
		)
		if err != nil {
			// main blocks on GracefulShutdown, so a server that fails to
			// start must at least be visible in the logs
			log.Error("http server stopped", zap.Error(err))
		}
		return err
	})

	return s, nil
}

// GracefulShutdown blocks until SIGINT or SIGTERM arrives.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
