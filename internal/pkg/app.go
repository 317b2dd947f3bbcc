package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"printshop/internal/app/config"
	"printshop/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Limiter *middleware.RateLimiter

	closers []func() error
}

// NewApp bundles a configured router with the resources closed on shutdown.
func NewApp(c *config.Config, r *gin.Engine, l *middleware.RateLimiter, closers ...func() error) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Limiter: l,
		closers: closers,
	}
}

// RunApp serves until ctx is cancelled, then drains in-flight requests.
func (a *Application) RunApp(ctx context.Context) error {
	logrus.Info("Server start up")

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	srv := &http.Server{
		Addr:              serverAddress,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan struct{})
	defer close(stop)
	if a.Limiter != nil {
		go a.Limiter.Run(stop)
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on %s", serverAddress)
		errCh <- srv.ListenAndServe()
	}()

	var runErr error
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			runErr = fmt.Errorf("shutdown: %w", err)
		}
		<-errCh
	}

	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			logrus.WithError(err).Warn("close failed")
		}
	}

	logrus.Info("Server down")
	return runErr
}
