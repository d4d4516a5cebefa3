package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/pkg/errors"
)

// SessionState - состояние конечного автомата поисковой сессии
type SessionState string

const (
	StateIdle              SessionState = "idle"
	StateDebouncing        SessionState = "debouncing"
	StateFetching          SessionState = "fetching"
	StateShowingCandidates SessionState = "showing_candidates"
	StateResolvingDetails  SessionState = "resolving_details"
)

// SearchSession - одна активная поисковая сессия: текст -> debounce ->
// автодополнение -> выбор кандидата -> details -> запись в историю.
//
// Гарантии упорядочивания: побеждает последний debounce и последний fetch.
// Каждое изменение текста инкрементирует generation; ответ fetch применяется
// только если его generation все еще актуален, поэтому устаревшие ответы,
// пришедшие не по порядку, отбрасываются.
type SearchSession struct {
	id   string
	bias domain.Coordinate

	mu         sync.Mutex
	state      SessionState
	text       string
	generation uint64
	candidates []domain.Candidate
	timer      clockwork.Timer
	closed     bool
	lastActive time.Time

	placesRepo repository.PlacesRepository
	kvRepo     repository.KVRepository
	history    *HistoryUseCase
	clock      clockwork.Clock
	logger     *zap.Logger

	debounceInterval time.Duration
	minQueryLength   int
	radiusMeters     int
	cacheTTL         time.Duration
}

// ID возвращает идентификатор сессии
func (s *SearchSession) ID() string {
	return s.id
}

// Bias возвращает координаты смещения поиска
func (s *SearchSession) Bias() domain.Coordinate {
	return s.bias
}

// SetText обрабатывает изменение текста поиска.
// Пустой после trim текст немедленно очищает кандидатов без запроса;
// текст короче минимальной длины также не порождает запрос.
// Иначе (пере)запускается debounce-таймер; предыдущий таймер и любой
// незавершенный fetch считаются устаревшими.
func (s *SearchSession) SetText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.ErrSessionClosed
	}

	s.touchLocked()
	s.stopTimerLocked()
	s.generation++

	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < s.minQueryLength {
		s.text = ""
		s.candidates = nil
		s.state = StateIdle
		return nil
	}

	s.text = trimmed
	s.state = StateDebouncing

	gen := s.generation
	s.timer = s.clock.AfterFunc(s.debounceInterval, func() {
		s.debounceFired(gen)
	})

	return nil
}

// Candidates возвращает текущее состояние и список кандидатов
func (s *SearchSession) Candidates() (SessionState, []domain.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	out := make([]domain.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return s.state, out
}

// Select разрешает выбранного кандидата через details-запрос и при успехе
// вставляет место в историю, делает его текущим выбором и сбрасывает
// состояние сессии. Подписчики истории получают уведомление о смене выбора.
//
// Сбой details-запроса проглатывается: сессия возвращается к показу
// кандидатов, результат nil, ошибка не возвращается. Ошибка персистентной
// записи истории возвращается вызывающему (in-memory состояние обновлено).
//
// Если за время details-запроса сессия была закрыта или текст изменился,
// результат отбрасывается и история не мутируется.
func (s *SearchSession) Select(ctx context.Context, candidateID string) (*domain.Place, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, errors.ErrSessionClosed
	}

	s.touchLocked()

	var picked *domain.Candidate
	for i := range s.candidates {
		if s.candidates[i].ID == candidateID {
			picked = &s.candidates[i]
			break
		}
	}
	if picked == nil {
		s.mu.Unlock()
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"candidate_id": candidateID,
		})
	}

	// Выбор кандидата делает любые незавершенные fetch устаревшими
	s.stopTimerLocked()
	s.generation++
	gen := s.generation
	s.state = StateResolvingDetails
	s.mu.Unlock()

	details, err := s.placesRepo.GetDetails(ctx, candidateID)
	if err != nil {
		s.logger.Warn("Place details lookup failed",
			zap.String("session_id", s.id),
			zap.String("candidate_id", candidateID),
			zap.Error(err))
		s.returnToCandidates()
		return nil, nil
	}

	place, buildErr := s.buildPlace(candidateID, picked, details)
	if buildErr != nil {
		s.logger.Warn("Failed to build place from details",
			zap.String("session_id", s.id),
			zap.String("candidate_id", candidateID),
			zap.Error(buildErr))
		s.returnToCandidates()
		return nil, nil
	}

	// Закрытие сессии или смена текста за время details-запроса отменяют
	// выбор: история после этого не мутируется
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.ErrSessionClosed
	}
	if gen != s.generation {
		return nil, nil
	}

	insertErr := s.history.Insert(ctx, place)
	s.history.Select(&place)

	// Resolved: сброс текста и кандидатов, возврат в Idle
	s.text = ""
	s.candidates = nil
	s.state = StateIdle

	if insertErr != nil {
		return &place, insertErr
	}
	return &place, nil
}

// Close завершает сессию: отменяет debounce-таймер и помечает любые
// незавершенные fetch устаревшими. После закрытия сессия не мутирует
// ни собственное состояние, ни историю.
func (s *SearchSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopTimerLocked()
	s.generation++
	s.candidates = nil
	s.state = StateIdle
}

// LastActive возвращает время последней активности сессии
func (s *SearchSession) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// debounceFired вызывается по истечении debounce-интервала.
// Запрос выполняется вне блокировки; результат применяется только если
// generation не изменился за время запроса.
func (s *SearchSession) debounceFired(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.generation {
		s.mu.Unlock()
		return
	}
	query := s.text
	bias := s.bias
	s.state = StateFetching
	s.mu.Unlock()

	candidates := s.fetchCandidates(query, bias)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.generation {
		s.logger.Debug("Discarding stale autocomplete response",
			zap.String("session_id", s.id),
			zap.String("query", query),
			zap.Uint64("generation", gen))
		return
	}

	s.candidates = candidates
	s.state = StateShowingCandidates
}

// fetchCandidates выполняет запрос автодополнения с кешированием.
// Любой сбой провайдера дает пустой список - ошибка не распространяется.
func (s *SearchSession) fetchCandidates(query string, bias domain.Coordinate) []domain.Candidate {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("places:autocomplete:%s:%.4f,%.4f:%d", query, bias.Lat, bias.Lon, s.radiusMeters)

	if cached, err := s.kvRepo.Get(ctx, cacheKey); err == nil && cached != nil {
		var candidates []domain.Candidate
		if err := json.Unmarshal(cached, &candidates); err == nil {
			s.logger.Debug("Autocomplete cache hit",
				zap.String("session_id", s.id),
				zap.String("query", query))
			return candidates
		}
	}

	candidates, err := s.placesRepo.Autocomplete(ctx, query, bias, s.radiusMeters)
	if err != nil {
		s.logger.Warn("Autocomplete lookup failed, returning no candidates",
			zap.String("session_id", s.id),
			zap.String("query", query),
			zap.Error(err))
		return []domain.Candidate{}
	}
	if candidates == nil {
		candidates = []domain.Candidate{}
	}

	if data, err := json.Marshal(candidates); err == nil {
		if err := s.kvRepo.Set(ctx, cacheKey, data, s.cacheTTL); err != nil {
			s.logger.Debug("Failed to cache autocomplete response", zap.Error(err))
		}
	}

	return candidates
}

// buildPlace нормализует ответ details-запроса в доменную запись.
// Отсутствующие поля заменяются безопасными значениями по умолчанию.
func (s *SearchSession) buildPlace(candidateID string, picked *domain.Candidate, details *domain.PlaceDetails) (domain.Place, error) {
	id := details.PlaceID
	if id == "" {
		id = candidateID
	}

	name := details.Name
	if name == "" {
		name = picked.MainText
	}

	place, err := domain.NewPlace(id, name, details.FormattedAddress, details.Location, s.clock.Now().UnixMilli())
	if err != nil {
		return domain.Place{}, err
	}

	var rating float64
	if details.Rating != nil {
		rating = *details.Rating
	}

	return place.WithEnrichment(details.Phone, details.Website, rating, details.OpeningHours, details.PhotoURLs), nil
}

func (s *SearchSession) returnToCandidates() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state != StateResolvingDetails {
		return
	}
	if len(s.candidates) > 0 {
		s.state = StateShowingCandidates
	} else {
		s.state = StateIdle
	}
}

func (s *SearchSession) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *SearchSession) touchLocked() {
	s.lastActive = s.clock.Now()
}
