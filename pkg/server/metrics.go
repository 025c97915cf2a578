/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(endpoint string)
	IncChecks(result string)
	AddTokens(n int)
	ObserveCheckNS(endpoint string, t int64)
}

type metricsStore struct {
	registry *prometheus.Registry
	Requests *prometheus.CounterVec
	Checks   *prometheus.CounterVec
	Tokens   prometheus.Counter
	CheckNS  *prometheus.HistogramVec
}

var (
	EndpointLabel = "endpoint"
	ResultLabel   = "result"
)

// Check results, used as values of ResultLabel
const (
	ResultOk           = "ok"
	ResultLexicalError = "lexical_error"
	ResultSyntaxError  = "syntax_error"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(50*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tinyc_requests_total",
			Help: "Request counts for the check service endpoints",
		}, []string{EndpointLabel}),
		Checks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tinyc_checks_total",
			Help: "Programs checked, by outcome",
		}, []string{ResultLabel}),
		Tokens: factory.NewCounter(prometheus.CounterOpts{
			Name: "tinyc_tokens_scanned_total",
			Help: "The total number of tokens produced by the tokenizer",
		}),
		CheckNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tinyc_check_duration_ns",
			Help:    "Time spent tokenizing and checking a request",
			Buckets: buckets,
		}, []string{EndpointLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncRequests(endpoint string) {
	ms.Requests.With(prometheus.Labels{EndpointLabel: endpoint}).Inc()
}

func (ms *metricsStore) IncChecks(result string) {
	ms.Checks.With(prometheus.Labels{ResultLabel: result}).Inc()
}

func (ms *metricsStore) AddTokens(n int) {
	ms.Tokens.Add(float64(n))
}

func (ms *metricsStore) ObserveCheckNS(endpoint string, t int64) {
	ms.CheckNS.
		With(prometheus.Labels{EndpointLabel: endpoint}).
		Observe(float64(t))
}
