package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	fallback   domain.Coordinate
	logger     *zap.Logger
}

type lookupResponse struct {
	Status string  `json:"status"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// NewGeoIPClient создает клиент IP-геолокации.
// Клиент никогда не возвращает ошибку: отказ в доступе, сетевой сбой или
// некорректный ответ приводят к подстановке координат по умолчанию.
func NewGeoIPClient(cfg *config.GeoConfig, logger *zap.Logger) repository.GeoRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		fallback: domain.Coordinate{
			Lat: cfg.DefaultLat,
			Lon: cfg.DefaultLon,
		},
		logger: logger,
	}
}

// CurrentCoordinates возвращает координаты клиента по IP либо fallback
func (c *client) CurrentCoordinates(ctx context.Context, clientIP string) domain.Coordinate {
	if c.baseURL == "" || clientIP == "" {
		return c.fallback
	}

	reqURL := fmt.Sprintf("%s/json/%s?fields=status,lat,lon", c.baseURL, clientIP)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Debug("Failed to create geoip request", zap.Error(err))
		return c.fallback
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("GeoIP lookup failed", zap.String("ip", clientIP), zap.Error(err))
		return c.fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("GeoIP lookup returned non-OK status",
			zap.String("ip", clientIP),
			zap.Int("status_code", resp.StatusCode))
		return c.fallback
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		c.logger.Debug("Failed to decode geoip response", zap.Error(err))
		return c.fallback
	}

	coord := domain.Coordinate{Lat: lookup.Lat, Lon: lookup.Lon}
	if lookup.Status != "success" || !coord.Valid() {
		return c.fallback
	}

	return coord
}
