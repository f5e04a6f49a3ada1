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

package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"gonum.org/v1/gonum/mat"

	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/models"
	"github.com/mlglue/linreg/pkg/types"
	"github.com/mlglue/linreg/server/metrics"
)

// HeaderRequestID is the response header carrying the invocation id.
const HeaderRequestID = "X-Request-Id"

type ErrorResponse struct {
	Message string `json:"message"`
}

type Handlers struct {
	model        atomic.Value
	ready        *atomic.Bool
	maxBodyBytes int64
}

func New(maxBodyBytes int64) *Handlers {
	return &Handlers{
		ready:        atomic.NewBool(false),
		maxBodyBytes: maxBodyBytes,
	}
}

// SetModel serves the model and marks the server ready.
func (h *Handlers) SetModel(lr *models.LinearRegression) {
	h.model.Store(lr)
	h.ready.Store(true)
	metrics.ModelLoadedGauge.Set(1)
}

// Ready returns whether a model is served.
func (h *Handlers) Ready() bool {
	return h.ready.Load()
}

func (h *Handlers) loadedModel() (*models.LinearRegression, bool) {
	if !h.ready.Load() {
		return nil, false
	}

	lr, ok := h.model.Load().(*models.LinearRegression)
	return lr, ok
}

// Ping is the health check of the hosting platform.
func (h *Handlers) Ping(ctx *gin.Context) {
	if !h.ready.Load() {
		ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: "model is not loaded"})
		return
	}

	ctx.Status(http.StatusOK)
}

// Invocations predicts the records of the json payload and responds the
// predictions in record order.
func (h *Handlers) Invocations(ctx *gin.Context) {
	requestID := uuid.NewString()
	ctx.Header(HeaderRequestID, requestID)
	log := logger.WithRequestID(requestID)
	metrics.InvocationCount.Inc()

	fail := func(code int, err error) {
		metrics.InvocationFailureCount.WithLabelValues(strconv.Itoa(code)).Inc()
		log.Errorf("invocation failed with %d: %s", code, err)
		ctx.AbortWithStatusJSON(code, ErrorResponse{Message: err.Error()})
	}

	lr, ok := h.loadedModel()
	if !ok {
		fail(http.StatusServiceUnavailable, errors.New("model is not loaded"))
		return
	}

	if contentType := ctx.ContentType(); contentType != types.ContentTypeJSON {
		fail(http.StatusUnsupportedMediaType, errors.New("unsupported content type "+strconv.Quote(contentType)))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			fail(http.StatusRequestEntityTooLarge, err)
			return
		}

		fail(http.StatusBadRequest, err)
		return
	}

	records, err := ParseRecords(body, lr.Features)
	if err != nil {
		fail(http.StatusBadRequest, err)
		return
	}

	x := mat.NewDense(len(records), len(lr.Features), nil)
	for i, record := range records {
		x.SetRow(i, record)
	}

	start := time.Now()
	predictions, err := lr.PredictBatch(x)
	if err != nil {
		fail(http.StatusInternalServerError, err)
		return
	}
	metrics.PredictionDuration.Observe(float64(time.Since(start).Microseconds()) / 1000)
	metrics.PredictionCount.Add(float64(len(predictions)))

	log.Debugf("predicted %d records", len(predictions))
	ctx.JSON(http.StatusOK, predictions)
}
