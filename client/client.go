/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package client fetches patients, reference data and readmission rates
// from a remote risk API.
package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/humaidq/riskboard/dashboard"
	"github.com/humaidq/riskboard/logging"
)

var logger = logging.Logger(logging.SourceClient)

const defaultTimeout = 15 * time.Second

// Config describes where the remote services live. ReferenceURL defaults
// to BaseURL when the reference-data service is hosted alongside the API.
type Config struct {
	BaseURL      string
	ReferenceURL string
	Timeout      time.Duration
}

// Client implements dashboard.Source over HTTP.
type Client struct {
	api       *resty.Client
	reference *resty.Client
}

var _ dashboard.Source = (*Client)(nil)

// New returns a client for the configured services.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrBaseURLRequired
	}

	if cfg.ReferenceURL == "" {
		cfg.ReferenceURL = cfg.BaseURL
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		api:       newHTTPClient(cfg.BaseURL, cfg.Timeout),
		reference: newHTTPClient(cfg.ReferenceURL, cfg.Timeout),
	}, nil
}

// Only GET requests are issued, so retrying transport errors is safe.
func newHTTPClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")
}

func get(ctx context.Context, c *resty.Client, path string, query map[string]string, out any) error {
	resp, err := c.R().
		SetContext(ctx).
		SetQueryParams(query).
		ForceContentType("application/json").
		SetResult(out).
		Get(path)
	if err != nil {
		logger.Error("Risk API call failed", "path", path, "error", err)
		return fmt.Errorf("failed to call %s: %w", path, err)
	}

	if resp.IsError() {
		logger.Error("Risk API returned error", "path", path, "status", resp.StatusCode())
		return fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, path, resp.StatusCode())
	}

	logger.Debug("Risk API call finished", "path", path, "status", resp.StatusCode(), "duration", resp.Time())

	return nil
}

type processedPatientsResponse struct {
	Count             int           `json:"count"`
	ProcessedPatients []wirePatient `json:"processedPatients"`
}

type dischargePatientsResponse struct {
	Count             int           `json:"count"`
	DischargePatients []wirePatient `json:"dischargePatients"`
}

// FetchPatients returns the processed patients with their readmission risk.
func (c *Client) FetchPatients(ctx context.Context) ([]dashboard.Patient, error) {
	var body processedPatientsResponse
	if err := get(ctx, c.api, "/api/processed-patients", nil, &body); err != nil {
		return nil, err
	}

	return toPatients(body.ProcessedPatients)
}

// FetchDischargePatients returns the raw discharge patients. This endpoint
// has historically used upper-case field names; both forms decode.
func (c *Client) FetchDischargePatients(ctx context.Context) ([]dashboard.Patient, error) {
	var body dischargePatientsResponse
	if err := get(ctx, c.api, "/api/discharge-patients", nil, &body); err != nil {
		return nil, err
	}

	return toPatients(body.DischargePatients)
}

// FetchReferenceData returns the reference cohort for a patient age.
func (c *Client) FetchReferenceData(ctx context.Context, age float64) (dashboard.ReferenceData, error) {
	var data dashboard.ReferenceData

	query := map[string]string{"ages": strconv.FormatFloat(age, 'f', -1, 64)}
	if err := get(ctx, c.reference, "/v1/get-reference-data", query, &data); err != nil {
		return dashboard.ReferenceData{}, err
	}

	return data, nil
}

// FetchReadmissionData returns the 30-day readmission series.
func (c *Client) FetchReadmissionData(ctx context.Context) (dashboard.ReAdmissionData, error) {
	var data dashboard.ReAdmissionData
	if err := get(ctx, c.reference, "/v1/get-readmission-data", nil, &data); err != nil {
		return dashboard.ReAdmissionData{}, err
	}

	return data, nil
}

func toPatients(wire []wirePatient) ([]dashboard.Patient, error) {
	patients := make([]dashboard.Patient, 0, len(wire))

	for i, w := range wire {
		p, err := w.patient()
		if err != nil {
			return nil, fmt.Errorf("patient %d: %w", i, err)
		}

		patients = append(patients, p)
	}

	return patients, nil
}
