//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serviceroulette_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/serviceroulette/config"
	"github.com/suparena/serviceroulette/datastore/ddb"
	"github.com/suparena/serviceroulette/handler"
	"github.com/suparena/serviceroulette/storagemodels"
)

func setupHandler(t *testing.T, tableName string) *handler.Handler {
	cfg := config.Default()
	cfg.TableName = tableName
	if region := os.Getenv("AWS_REGION"); region != "" {
		cfg.Region = region
	}
	cfg.Endpoint = os.Getenv("ROULETTE_TEST_ENDPOINT")
	cfg.AccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.SecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

	store, err := ddb.NewDynamodbDataStore[storagemodels.Record](context.Background(), cfg.Store, nil)
	if err != nil {
		t.Fatalf("Failed to create datastore: %v", err)
	}
	return handler.New(store, handler.WithConfig(cfg))
}

func testTable(t *testing.T) string {
	tableName := os.Getenv("ROULETTE_TEST_TABLE")
	if tableName == "" {
		t.Skip("ROULETTE_TEST_TABLE not set, skipping integration test")
	}
	return tableName
}

func TestIntegrationHandle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	h := setupHandler(t, testTable(t))

	resp, err := h.Handle(context.Background(), nil)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" || resp.Headers["Access-Control-Allow-Credentials"] != true {
		t.Errorf("CORS headers missing: %+v", resp.Headers)
	}

	if len(resp.Body.ServiceList) == 0 {
		if resp.Body.RandomService != nil {
			t.Errorf("Empty catalog must not select a service, got %+v", resp.Body.RandomService)
		}
		return
	}

	want, _ := json.Marshal(resp.Body.RandomService)
	found := false
	for _, rec := range resp.Body.ServiceList {
		got, _ := json.Marshal(rec)
		if string(got) == string(want) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("randomService %s is not in serviceList", want)
	}
}

func TestIntegrationMissingTable(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	h := setupHandler(t, testTable(t)+"-does-not-exist")

	resp, err := h.Handle(context.Background(), nil)
	if resp != nil {
		t.Errorf("Expected no response on failure, got %+v", resp)
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		t.Errorf("Expected the DynamoDB ResourceNotFoundException, got %T: %v", err, err)
	}
}
