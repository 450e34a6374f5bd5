package controllers

import (
	"dialogd/internal/codec"
	"dialogd/internal/models"
	"dialogd/internal/providers"
	"dialogd/internal/services"
	"fmt"
	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const SeedHeader = "X-Dialog-Seed"

type DialogController struct {
	logger     providers.Logger
	service    services.DialogServiceInterface
	cache      providers.CacheProviderInterface
	compressor codec.CompressorInterface
	metrics    providers.MetricsProviderInterface
}

func NewDialogController(logger providers.Logger, service services.DialogServiceInterface, cache providers.CacheProviderInterface, compressor codec.CompressorInterface, metrics providers.MetricsProviderInterface) *DialogController {
	return &DialogController{
		logger:     logger,
		service:    service,
		cache:      cache,
		compressor: compressor,
		metrics:    metrics,
	}
}

type summaryResponse struct {
	Seed int64 `json:"seed"`
	models.DialogSummary
}

type rotateResponse struct {
	Seed int64 `json:"seed"`
}

// resolveSeed reads ?seed=, falling back to the current dialog.
func (dc *DialogController) resolveSeed(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return dc.service.CurrentSeed(), nil
	}
	return parseSeed(raw)
}

// parseSeed accepts base 10 integers only. Leading zeros are dropped so cast
// does not read the value as octal.
func parseSeed(raw string) (int64, error) {
	sign, digits := "", raw
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, fmt.Errorf("seed %q is not a decimal integer", raw)
	}
	if digits = strings.TrimLeft(digits, "0"); digits == "" {
		digits = "0"
	}
	return cast.ToInt64E(sign + digits)
}

func acceptsZstd(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		token, _, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if strings.EqualFold(token, codec.Encoding) {
			return true
		}
	}
	return false
}

// projection turns the dialog generated for seed into the response body.
type projection func(seed int64, d *models.DialogData) any

// encode generates the dialog for seed and returns the compressed JSON of project(seed, dialog).
func (dc *DialogController) encode(seed int64, project projection) ([]byte, error) {
	start := time.Now()
	dialog := dc.service.Generate(seed)
	dc.metrics.ObserveGenerationDuration(time.Since(start))
	dc.metrics.ObserveDialogShape(len(dialog.Utterances), dialog.Duration)

	gson, err := json.Marshal(project(seed, dialog))
	if err != nil {
		return nil, err
	}
	return dc.compressor.Compress(gson)
}

func (dc *DialogController) serveSeeded(w http.ResponseWriter, r *http.Request, endpoint string, project projection) {
	logType := providers.GetLogTypeByRequestType(r.Method)

	seed, err := dc.resolveSeed(r)
	if err != nil {
		dc.logger.Debugf(logType, "Rejected seed %q on %s: %s", r.URL.Query().Get("seed"), endpoint, err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cacheKey := endpoint + ":" + strconv.FormatInt(seed, 10)
	payload, ok := dc.cache.Get(cacheKey)
	if !ok {
		payload, err = dc.encode(seed, project)
		if err != nil {
			dc.logger.Errorf(logType, "Unable to encode %s for seed %d: %s", endpoint, seed, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		dc.cache.Set(cacheKey, payload)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(SeedHeader, strconv.FormatInt(seed, 10))
	w.Header().Add("Vary", "Accept-Encoding")

	if acceptsZstd(r) {
		w.Header().Set("Content-Encoding", codec.Encoding)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
		return
	}

	body, err := dc.compressor.Decompress(payload)
	if err != nil {
		dc.logger.Errorf(logType, "Unable to decompress cached %s: %s", cacheKey, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (dc *DialogController) GetDialog(w http.ResponseWriter, r *http.Request) {
	dc.serveSeeded(w, r, "dialog", func(_ int64, d *models.DialogData) any {
		return d
	})
}

func (dc *DialogController) GetSegments(w http.ResponseWriter, r *http.Request) {
	dc.serveSeeded(w, r, "segments", func(_ int64, d *models.DialogData) any {
		return d.MakeSegments()
	})
}

func (dc *DialogController) GetSummary(w http.ResponseWriter, r *http.Request) {
	dc.serveSeeded(w, r, "summary", func(seed int64, d *models.DialogData) any {
		return summaryResponse{Seed: seed, DialogSummary: d.Summarize()}
	})
}

func (dc *DialogController) Rotate(w http.ResponseWriter, r *http.Request) {
	seed := dc.service.Rotate()
	dc.logger.Infof(providers.GetLogTypeByRequestType(r.Method), "Current dialog rotated on request, seed=%d", seed)

	gson, err := json.Marshal(rotateResponse{Seed: seed})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}
