/*
 *     Copyright 2024 The Linreg Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package server

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/models"
	"github.com/mlglue/linreg/server/config"
	"github.com/mlglue/linreg/server/handlers"
	"github.com/mlglue/linreg/server/metrics"
	"github.com/mlglue/linreg/server/router"
)

type Server struct {
	// Server configuration.
	config *config.Config

	// Handlers of health checks and invocations.
	handlers *handlers.Handlers

	// HTTP server.
	httpServer *http.Server

	// Metrics server.
	metricsServer *http.Server
}

func New(cfg *config.Config) *Server {
	s := &Server{
		config:   cfg,
		handlers: handlers.New(cfg.Server.MaxBodySize.ToNumber()),
	}

	// Initialize router.
	s.httpServer = &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.Init(cfg, s.handlers),
	}

	// Initialize metrics.
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	return s
}

// Ready returns whether the model is loaded.
func (s *Server) Ready() bool {
	return s.handlers.Ready()
}

// Serve starts listening before the model is loaded, health checks fail
// until it is. Serve returns when ctx is done or any server fails.
func (s *Server) Serve(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return s.loadModel()
	})

	eg.Go(func() error {
		logger.Infof("started server at %s", s.httpServer.Addr)
		return listenAndServe(s.httpServer)
	})

	// Started metrics server.
	if s.metricsServer != nil {
		eg.Go(func() error {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			return listenAndServe(s.metricsServer)
		})
	}

	eg.Go(func() error {
		<-ctx.Done()
		return s.stop()
	})

	return eg.Wait()
}

func (s *Server) loadModel() error {
	path := filepath.Join(s.config.Server.ModelDir, models.ModelFileName)
	lr, err := models.Load(path)
	if err != nil {
		return errors.Wrapf(err, "load model %s", path)
	}

	s.handlers.SetModel(lr)
	logger.Infof("model %s loaded with coefficients %v and intercept %f", path, lr.Coefficients, lr.Intercept)
	return nil
}

func (s *Server) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	var err error
	if serr := s.httpServer.Shutdown(ctx); serr != nil {
		logger.Errorf("shutdown server failed: %s", serr)
		err = serr
	} else {
		logger.Info("shutdown server completed")
	}

	if s.metricsServer != nil {
		if serr := s.metricsServer.Shutdown(ctx); serr != nil {
			logger.Errorf("shutdown metrics server failed: %s", serr)
			err = serr
		} else {
			logger.Info("shutdown metrics server completed")
		}
	}

	return err
}

func listenAndServe(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
