package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/thaitax/pit-estimator/internal/calculation"
	"github.com/thaitax/pit-estimator/internal/domain"
)

// New builds the echo application with all routes registered.
func New(rules domain.RuleSet) *echo.Echo {
	resolver := calculation.NewTaxResolver(rules)
	resolver.SetLogger(calculation.StdLogger{})
	handler := NewTaxHandler(validator.New(), resolver)

	e := echo.New()
	e.HideBanner = true

	e.GET("/healthz", handler.Healthcheck)
	e.POST("/tax/assessments", handler.CalculateAssessment)
	e.POST("/tax/obligations", handler.CalculateObligations)
	return e
}

// Run starts the server on the given port and blocks until SIGINT, then
// shuts down gracefully with a 10 second drain window.
func Run(rules domain.RuleSet, port string) error {
	e := New(rules)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	select {
	case err := <-errCh:
		return err
	case <-shutdown:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
