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

package router

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"

	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/server/config"
	"github.com/mlglue/linreg/server/handlers"
)

const (
	PrometheusSubsystemName = "linreg_server"
)

func Init(cfg *config.Config, h *handlers.Handlers) *gin.Engine {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Prometheus metrics of requests, served by the metrics server.
	if cfg.Metrics.Enable {
		p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
		// URL removes query string.
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			return c.Request.URL.Path
		}
		r.Use(p.HandlerFunc())
	}

	// Middleware
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))

	// Router
	r.GET("/ping", h.Ping)
	r.POST("/invocations", h.Invocations)

	return r
}
