/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dburkart/tinyc/pkg/lang"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// MaxProgramBytes bounds the size of a request body
const MaxProgramBytes = 1 << 20

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore

	policy      lang.Policy
	port        int
	metricsPort int
}

func New(log zerolog.Logger, policy lang.Policy, port, metricsPort int) Server {
	return Server{
		log,
		NewMetricsStore(),
		policy,
		port,
		metricsPort,
	}
}

func (s *Server) Metrics() MetricsStore {
	return s.metrics
}

// Handler routes the check endpoints. Every request checks its own copy of
// the program with its own symbol table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/check", s.handle("check", func(id, input string) (any, string) {
		return NewCheckResponse(id, input, s.policy)
	}))

	mux.HandleFunc("/tokens", s.handle("tokens", func(id, input string) (any, string) {
		return NewTokensResponse(id, input)
	}))

	return mux
}

type handleProgram func(id, input string) (any, string)

func (s *Server) handle(endpoint string, f handleProgram) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		log := s.log.With().Str("id", id).Str("endpoint", endpoint).Logger()

		w.Header().Set("X-Request-Id", id)
		s.metrics.IncRequests(endpoint)

		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxProgramBytes))
		if err != nil {
			err = errors.Wrap(err, "unable to read program")
			log.Error().Err(err).Send()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		t := time.Now()
		resp, result := f(id, string(body))
		elapsed := time.Since(t)

		s.metrics.ObserveCheckNS(endpoint, elapsed.Nanoseconds())
		s.metrics.IncChecks(result)
		switch v := resp.(type) {
		case CheckResponse:
			s.metrics.AddTokens(v.Tokens)
		case TokensResponse:
			s.metrics.AddTokens(len(v.Tokens))
		}

		log.Info().
			Str("size", humanize.Bytes(uint64(len(body)))).
			Str("result", result).
			Dur("elapsed", elapsed).
			Msg("checked program")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error().Err(err).Msg("unable to write response")
		}
	}
}

func (s *Server) ServeChecks() error {
	s.log.Info().Int("port", s.port).Str("policy", s.policy.String()).Msg("listening for check requests")

	err := http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.Handler())
	return errors.Wrap(err, "check server stopped")
}

func (s *Server) ServeMetrics() error {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")

	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())

	err := http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), mux)
	return errors.Wrap(err, "metrics server stopped")
}
