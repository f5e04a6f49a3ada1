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

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlglue/linreg/pkg/types"
	"github.com/mlglue/linreg/server/config"
	"github.com/mlglue/linreg/version"
)

// Variables declared for metrics.
var (
	InvocationCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ServerMetricsName,
		Name:      "invocations_total",
		Help:      "Counter of the number of the invocations.",
	})

	InvocationFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ServerMetricsName,
		Name:      "invocation_failure_total",
		Help:      "Counter of the number of failed of the invocations.",
	}, []string{"code"})

	PredictionCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ServerMetricsName,
		Name:      "predictions_total",
		Help:      "Counter of the number of the predicted records.",
	})

	PredictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ServerMetricsName,
		Name:      "prediction_duration_milliseconds",
		Help:      "Histogram of the time each invocation took to predict.",
		Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 10, 50, 100},
	})

	ModelLoadedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ServerMetricsName,
		Name:      "model_loaded",
		Help:      "Whether the model is loaded and the server is ready.",
	})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ServerMetricsName,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version"})
)

func New(cfg *config.MetricsConfig) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion).Set(1)
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
}
