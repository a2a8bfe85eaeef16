package cmd

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/rnjhnd/telecom-plan-visitor/app/catalog"
	"github.com/rnjhnd/telecom-plan-visitor/app/factory"
	"github.com/rnjhnd/telecom-plan-visitor/app/service"
	"github.com/rnjhnd/telecom-plan-visitor/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type runIDContextKey struct{}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "offers",
		Short:             "Describe telco subscription plan offers",
		SilenceUsage:      true,
		PersistentPreRunE: setupRun,
	}

	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newTelcosCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func setupRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := configureLogging(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, runIDContextKey{}, factory.NewRunID()))
	return nil
}

func newOfferService() *service.OfferService {
	return service.NewOfferService(catalog.NewUnliCallTextCatalog(), catalog.NewUnimplementedUsagePromoCatalog())
}

var errCommandPanic = errors.New("internal error")

func runCommand(cmd *cobra.Command, fn func() error) (err error) {
	var logger logrus.FieldLogger = logrus.WithField("command", cmd.CommandPath())
	if ctx := cmd.Context(); ctx != nil {
		if runID, ok := ctx.Value(runIDContextKey{}).(string); ok {
			logger = factory.LoggerWithRunID(logger, runID)
		}
	}

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			logger.WithField("panic", rec).WithField("stack", string(debug.Stack())).Error("command_panic_recovered")
			err = errCommandPanic
		}
		latency := time.Since(start)
		if err != nil {
			logger.WithError(err).WithField("latency", latency.String()).Error("command_failed")
			return
		}
		logger.WithField("latency", latency.String()).Debug("command_completed")
	}()

	return fn()
}
