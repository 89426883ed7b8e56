/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/suparena/serviceroulette"
	"github.com/suparena/serviceroulette/config"
	"github.com/suparena/serviceroulette/datastore/ddb"
	"github.com/suparena/serviceroulette/handler"
	"github.com/suparena/serviceroulette/logging"
	"github.com/suparena/serviceroulette/storagemodels"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	invokeFlag  = flag.Bool("invoke", false, "Run a single invocation locally and print the response")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := serviceroulette.GetVersionInfo()
		fmt.Printf("Service Roulette version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	store, err := ddb.NewDynamodbDataStore[storagemodels.Record](ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatal("failed to create datastore", zap.Error(err))
	}

	h := handler.New(store, handler.WithConfig(cfg), handler.WithLogger(logger))

	if *invokeFlag {
		if err := invokeOnce(ctx, h); err != nil {
			logger.Error("invocation failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	logger.Info("starting lambda handler",
		zap.String("version", serviceroulette.Version),
		zap.String("format", cfg.ResponseFormat),
		zap.String("table", cfg.TableName),
	)
	switch cfg.ResponseFormat {
	case config.FormatProxy:
		lambda.Start(h.HandleAPIGateway)
	default:
		lambda.Start(h.Handle)
	}
}

func invokeOnce(ctx context.Context, h *handler.Handler) error {
	resp, err := h.Handle(ctx, nil)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
