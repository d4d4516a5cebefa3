package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/pkg/errors"
	"github.com/place-search-service/internal/pkg/utils"
)

const defaultRadiusMeters = 5000

// SearchUseCase - реестр активных поисковых сессий.
// На один экран поиска приходится не более одной активной сессии;
// сессии разных клиентов независимы.
type SearchUseCase struct {
	mu       sync.RWMutex
	sessions map[string]*SearchSession

	placesRepo repository.PlacesRepository
	geoRepo    repository.GeoRepository
	kvRepo     repository.KVRepository
	history    *HistoryUseCase
	clock      clockwork.Clock
	logger     *zap.Logger
	cfg        config.SearchConfig
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	placesRepo repository.PlacesRepository,
	geoRepo repository.GeoRepository,
	kvRepo repository.KVRepository,
	history *HistoryUseCase,
	clock clockwork.Clock,
	logger *zap.Logger,
	cfg config.SearchConfig,
) *SearchUseCase {
	if !utils.ValidateRadius(cfg.RadiusMeters) {
		logger.Warn("Search radius out of range, using default",
			zap.Int("radius_m", cfg.RadiusMeters))
		cfg.RadiusMeters = defaultRadiusMeters
	}

	return &SearchUseCase{
		sessions:   make(map[string]*SearchSession),
		placesRepo: placesRepo,
		geoRepo:    geoRepo,
		kvRepo:     kvRepo,
		history:    history,
		clock:      clock,
		logger:     logger,
		cfg:        cfg,
	}
}

// CreateSession создает поисковую сессию. Координаты смещения берутся из
// запроса клиента; при их отсутствии - из геолокации по IP с fallback на
// координаты по умолчанию (геолокация никогда не отказывает).
func (uc *SearchUseCase) CreateSession(ctx context.Context, clientIP string, coords *domain.Coordinate) *SearchSession {
	var bias domain.Coordinate
	if coords != nil && coords.Valid() {
		bias = *coords
	} else {
		bias = uc.geoRepo.CurrentCoordinates(ctx, clientIP)
	}

	session := &SearchSession{
		id:         uuid.NewString(),
		bias:       bias,
		state:      StateIdle,
		lastActive: uc.clock.Now(),

		placesRepo: uc.placesRepo,
		kvRepo:     uc.kvRepo,
		history:    uc.history,
		clock:      uc.clock,
		logger:     uc.logger,

		debounceInterval: uc.cfg.DebounceInterval,
		minQueryLength:   uc.cfg.MinQueryLength,
		radiusMeters:     uc.cfg.RadiusMeters,
		cacheTTL:         uc.cfg.CacheTTL,
	}

	uc.mu.Lock()
	uc.sessions[session.id] = session
	uc.mu.Unlock()

	uc.logger.Info("Search session created",
		zap.String("session_id", session.id),
		zap.Float64("bias_lat", bias.Lat),
		zap.Float64("bias_lon", bias.Lon))

	return session
}

// GetSession возвращает сессию по идентификатору
func (uc *SearchUseCase) GetSession(id string) (*SearchSession, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	session, ok := uc.sessions[id]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	return session, nil
}

// CloseSession завершает сессию и удаляет ее из реестра
func (uc *SearchUseCase) CloseSession(id string) error {
	uc.mu.Lock()
	session, ok := uc.sessions[id]
	if ok {
		delete(uc.sessions, id)
	}
	uc.mu.Unlock()

	if !ok {
		return errors.ErrSessionNotFound
	}

	session.Close()
	uc.logger.Info("Search session closed", zap.String("session_id", id))
	return nil
}

// CloseAll завершает все сессии; вызывается при остановке сервиса
func (uc *SearchUseCase) CloseAll() {
	uc.mu.Lock()
	sessions := uc.sessions
	uc.sessions = make(map[string]*SearchSession)
	uc.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}

	if len(sessions) > 0 {
		uc.logger.Info("All search sessions closed", zap.Int("count", len(sessions)))
	}
}

// RunEvictor периодически закрывает сессии, неактивные дольше SessionTTL.
// Блокируется до отмены контекста.
func (uc *SearchUseCase) RunEvictor(ctx context.Context) {
	ticker := uc.clock.NewTicker(uc.cfg.SessionTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			uc.evictIdle()
		}
	}
}

func (uc *SearchUseCase) evictIdle() {
	deadline := uc.clock.Now().Add(-uc.cfg.SessionTTL)

	uc.mu.Lock()
	var expired []*SearchSession
	for id, session := range uc.sessions {
		if session.LastActive().Before(deadline) {
			expired = append(expired, session)
			delete(uc.sessions, id)
		}
	}
	uc.mu.Unlock()

	for _, session := range expired {
		session.Close()
		uc.logger.Debug("Idle search session evicted", zap.String("session_id", session.ID()))
	}
}
