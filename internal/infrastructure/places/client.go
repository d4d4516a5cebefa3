package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	logger     *zap.Logger
}

// NewPlacesClient создает новый клиент для places web service API
func NewPlacesClient(cfg *config.PlacesConfig, logger *zap.Logger) repository.PlacesRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		logger:   logger,
	}
}

// Autocomplete возвращает варианты автодополнения для текстового запроса
func (c *client) Autocomplete(
	ctx context.Context,
	input string,
	bias domain.Coordinate,
	radiusMeters int,
) ([]domain.Candidate, error) {
	if input == "" {
		return nil, fmt.Errorf("input cannot be empty")
	}

	params := url.Values{}
	params.Set("input", input)
	params.Set("location", fmt.Sprintf("%f,%f", bias.Lat, bias.Lon))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("language", c.language)
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/place/autocomplete/json?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling places autocomplete API",
		zap.String("input", input),
		zap.Float64("bias_lat", bias.Lat),
		zap.Float64("bias_lon", bias.Lon),
		zap.Int("radius_m", radiusMeters))

	var apiResp autocompleteResponse
	if err := c.doRequest(ctx, reqURL, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Status != statusOK && apiResp.Status != statusZeroResults {
		c.logger.Error("Places API returned non-OK status",
			zap.String("status", apiResp.Status),
			zap.String("error_message", apiResp.ErrorMessage))
		return nil, fmt.Errorf("places API returned status: %s", apiResp.Status)
	}

	candidates := make([]domain.Candidate, 0, len(apiResp.Predictions))
	for _, p := range apiResp.Predictions {
		main := p.StructuredFormatting.MainText
		if main == "" {
			main = p.Description
		}
		candidates = append(candidates, domain.Candidate{
			ID:            p.PlaceID,
			MainText:      main,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}

	c.logger.Debug("Places autocomplete API call successful",
		zap.Int("candidates", len(candidates)))

	return candidates, nil
}

// GetDetails возвращает полные сведения о месте по идентификатору
func (c *client) GetDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	if placeID == "" {
		return nil, fmt.Errorf("place id cannot be empty")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,geometry,formatted_phone_number,website,rating,opening_hours,photos")
	params.Set("language", c.language)
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/place/details/json?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling places details API", zap.String("place_id", placeID))

	var apiResp detailsResponse
	if err := c.doRequest(ctx, reqURL, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Status != statusOK {
		c.logger.Error("Places details API returned non-OK status",
			zap.String("status", apiResp.Status),
			zap.String("error_message", apiResp.ErrorMessage))
		return nil, fmt.Errorf("places API returned status: %s", apiResp.Status)
	}

	result := apiResp.Result

	details := &domain.PlaceDetails{
		PlaceID:          result.PlaceID,
		Name:             result.Name,
		FormattedAddress: result.FormattedAddress,
		Location: domain.Coordinate{
			Lat: result.Geometry.Location.Lat,
			Lon: result.Geometry.Location.Lng,
		},
		Phone:   result.PhoneNumber,
		Website: result.Website,
		Rating:  result.Rating,
	}

	if result.OpeningHours != nil {
		details.OpeningHours = &domain.OpeningHours{
			OpenNow:     result.OpeningHours.OpenNow,
			WeekdayText: result.OpeningHours.WeekdayText,
		}
	}

	// Собираем URL фотографий из photo reference, не больше лимита
	for _, ph := range result.Photos {
		if len(details.PhotoURLs) >= domain.MaxPlacePhotos {
			break
		}
		if ph.PhotoReference == "" {
			continue
		}
		details.PhotoURLs = append(details.PhotoURLs, c.photoURL(ph.PhotoReference))
	}

	c.logger.Debug("Places details API call successful",
		zap.String("place_id", result.PlaceID),
		zap.String("name", result.Name))

	return details, nil
}

func (c *client) photoURL(photoReference string) string {
	params := url.Values{}
	params.Set("maxwidth", "400")
	params.Set("photo_reference", photoReference)
	params.Set("key", c.apiKey)
	return fmt.Sprintf("%s/place/photo?%s", c.baseURL, params.Encode())
}

func (c *client) doRequest(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Places API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("places API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
