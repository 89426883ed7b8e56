/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import (
	"net/http"

	"github.com/suparena/serviceroulette/storagemodels"
)

// Body carries the complete catalog and the record picked from it.
// RandomService is null when the catalog is empty.
type Body struct {
	ServiceList   storagemodels.Collection `json:"serviceList"`
	RandomService storagemodels.Record     `json:"randomService"`
}

// Response is the HTTP-style envelope returned to the invoker.
type Response struct {
	StatusCode int                    `json:"statusCode"`
	Body       Body                   `json:"body"`
	Headers    map[string]interface{} `json:"headers"`
}

// corsHeaders allows any origin, with credentials. A new map is built per
// response so callers may modify it.
func corsHeaders() map[string]interface{} {
	return map[string]interface{}{
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Credentials": true,
	}
}

func newResponse(records storagemodels.Collection, picked storagemodels.Record) *Response {
	if records == nil {
		records = storagemodels.Collection{}
	}
	return &Response{
		StatusCode: http.StatusOK,
		Body: Body{
			ServiceList:   records,
			RandomService: picked,
		},
		Headers: corsHeaders(),
	}
}
