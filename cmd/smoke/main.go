package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Behyna/sms-services/clickatell/internal/config"
	"github.com/Behyna/sms-services/clickatell/pkg/clickatell"
	"go.uber.org/zap"
)

// smoke walks one full conversation against a running gateway, once per API
// flavor: send, status, charge, balance, coverage, stop.
const defaultDestination = "27999123456"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "build logger:", err)
		os.Exit(1)
	}

	destinations := cfg.Smoke.Destinations
	if len(destinations) == 0 {
		destinations = []string{defaultDestination}
	}

	gateway := cfg.Gateway
	legacy := clickatell.Config{
		API:            clickatell.APIHTTP,
		BaseURL:        gateway.BaseURL,
		APIID:          gateway.APIID,
		Username:       gateway.Username,
		Password:       gateway.Password,
		Timeout:        gateway.Timeout,
		ConnectTimeout: gateway.ConnectTimeout,
	}
	rest := clickatell.Config{
		API:            clickatell.APIREST,
		BaseURL:        gateway.BaseURL,
		APIID:          gateway.APIID,
		APIKey:         gateway.APIKey,
		Timeout:        gateway.Timeout,
		ConnectTimeout: gateway.ConnectTimeout,
	}

	ctx := context.Background()

	if err := exercise(ctx, legacy, destinations, logger); err != nil {
		logger.Fatal("legacy api conversation failed", zap.Error(err))
	}
	if err := exercise(ctx, rest, destinations, logger); err != nil {
		logger.Fatal("rest api conversation failed", zap.Error(err))
	}

	logger.Info("both api flavors answered")
}

func exercise(ctx context.Context, cfg clickatell.Config, destinations []string, logger *zap.Logger) error {
	logger = logger.With(zap.String("api", string(cfg.API)))

	c, err := clickatell.New(cfg, nil, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	sent, err := c.Send(ctx, "sandbox smoke message", destinations)
	if err != nil {
		return err
	}
	logger.Info("send", zap.Int("status", sent.StatusCode), zap.String("body", sent.Body))

	ids, err := sent.MessageIDs()
	if err != nil {
		return err
	}
	logger.Info("message accepted", zap.Strings("ids", ids))

	status, err := c.GetStatus(ctx, ids[0])
	if err != nil {
		return err
	}
	logger.Info("status", zap.String("body", status.Body))

	charge, err := c.GetCharge(ctx, ids[0])
	if err != nil {
		return err
	}
	logger.Info("charge", zap.String("body", charge.Body))

	balance, err := c.GetBalance(ctx)
	if err != nil {
		return err
	}
	logger.Info("balance", zap.String("body", balance.Body))

	coverage, err := c.GetCoverage(ctx, destinations[0])
	if err != nil {
		return err
	}
	logger.Info("coverage", zap.String("body", coverage.Body))

	stopped, err := c.Stop(ctx, ids[0])
	if err != nil {
		return err
	}
	logger.Info("stop", zap.String("body", stopped.Body))

	return nil
}
