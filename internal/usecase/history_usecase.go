package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
)

// HistoryUseCase - хранилище истории поиска и текущего выбранного места.
//
// Инварианты списка истории:
//   - длина никогда не превышает capacity
//   - нет двух записей с одинаковым ID
//   - порядок от новых к старым; повторная вставка ID поднимает запись на позицию 0
//
// Все мутации сериализованы одним мьютексом; персистентная запись выполняется
// внутри мутации, поэтому порядок записей в хранилище совпадает с порядком
// мутаций. При ошибке записи in-memory состояние уже обновлено и остается
// источником истины для текущего процесса.
type HistoryUseCase struct {
	mu       sync.Mutex
	places   []domain.Place
	selected *domain.Place

	capacity   int
	storageKey string
	kvRepo     repository.KVRepository
	logger     *zap.Logger

	subMu          sync.Mutex
	subscribers    []func(domain.HistorySnapshot)
	selSubscribers []func(*domain.Place)
}

// NewHistoryUseCase создает хранилище истории и регидрирует его из key-value
// хранилища. Отсутствующий, поврежденный или несовместимый по версии снимок
// не фатален - история начинается пустой.
func NewHistoryUseCase(
	ctx context.Context,
	kvRepo repository.KVRepository,
	capacity int,
	storageKey string,
	logger *zap.Logger,
) *HistoryUseCase {
	if capacity <= 0 {
		capacity = domain.DefaultHistoryCapacity
	}

	uc := &HistoryUseCase{
		capacity:   capacity,
		storageKey: storageKey,
		kvRepo:     kvRepo,
		logger:     logger,
	}

	uc.rehydrate(ctx)
	return uc
}

// Insert удаляет существующую запись с тем же ID, добавляет запись в начало
// и обрезает список до capacity. Ошибка персистентной записи возвращается
// вызывающему; in-memory состояние при этом уже обновлено.
func (uc *HistoryUseCase) Insert(ctx context.Context, place domain.Place) error {
	uc.mu.Lock()

	filtered := make([]domain.Place, 0, len(uc.places)+1)
	filtered = append(filtered, place)
	for _, p := range uc.places {
		if p.ID != place.ID {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) > uc.capacity {
		filtered = filtered[:uc.capacity]
	}
	uc.places = filtered

	err := uc.persistLocked(ctx)
	snapshot := uc.snapshotLocked()
	uc.mu.Unlock()

	uc.notify(snapshot)

	if err != nil {
		uc.logger.Error("Failed to persist history after insert",
			zap.String("place_id", place.ID),
			zap.Error(err))
		return err
	}

	uc.logger.Debug("Place inserted into history",
		zap.String("place_id", place.ID),
		zap.Int("history_len", len(snapshot.Places)))
	return nil
}

// Select заменяет текущее выбранное место; nil очищает выбор.
// Выбор не влияет на состав истории и не персистируется.
// Подписчики выбора уведомляются при каждом вызове, включая повторный
// выбор того же места.
func (uc *HistoryUseCase) Select(place *domain.Place) {
	uc.mu.Lock()
	if place != nil {
		p := *place
		uc.selected = &p
	} else {
		uc.selected = nil
	}
	snapshot := uc.snapshotLocked()
	uc.mu.Unlock()

	uc.notify(snapshot)
	uc.notifySelection(snapshot.Selected)
}

// Clear опустошает историю и персистирует пустой список.
// Текущее выбранное место не затрагивается.
func (uc *HistoryUseCase) Clear(ctx context.Context) error {
	uc.mu.Lock()
	uc.places = nil

	err := uc.persistLocked(ctx)
	snapshot := uc.snapshotLocked()
	uc.mu.Unlock()

	uc.notify(snapshot)

	if err != nil {
		uc.logger.Error("Failed to persist history after clear", zap.Error(err))
		return err
	}

	uc.logger.Debug("History cleared")
	return nil
}

// Read возвращает снимок истории и текущего выбора без побочных эффектов
func (uc *HistoryUseCase) Read() domain.HistorySnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// Find возвращает запись истории по ID
func (uc *HistoryUseCase) Find(placeID string) (*domain.Place, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, p := range uc.places {
		if p.ID == placeID {
			found := p
			return &found, true
		}
	}
	return nil, false
}

// Subscribe регистрирует подписчика на изменения истории и выбора.
// Подписчик вызывается после каждой мутации со свежим снимком.
func (uc *HistoryUseCase) Subscribe(fn func(domain.HistorySnapshot)) {
	uc.subMu.Lock()
	defer uc.subMu.Unlock()
	uc.subscribers = append(uc.subscribers, fn)
}

// SubscribeSelection регистрирует подписчика на мутации выбора.
// В отличие от Subscribe вызывается только из Select, зато при каждом
// вызове: повторный выбор того же места тоже уведомляет подписчиков.
func (uc *HistoryUseCase) SubscribeSelection(fn func(*domain.Place)) {
	uc.subMu.Lock()
	defer uc.subMu.Unlock()
	uc.selSubscribers = append(uc.selSubscribers, fn)
}

func (uc *HistoryUseCase) snapshotLocked() domain.HistorySnapshot {
	snapshot := domain.HistorySnapshot{
		Places: make([]domain.Place, len(uc.places)),
	}
	copy(snapshot.Places, uc.places)

	if uc.selected != nil {
		sel := *uc.selected
		snapshot.Selected = &sel
	}
	return snapshot
}

func (uc *HistoryUseCase) persistLocked(ctx context.Context) error {
	envelope := domain.HistoryEnvelope{
		Version: domain.HistoryEnvelopeVersion,
		Places:  uc.places,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	if err := uc.kvRepo.Set(ctx, uc.storageKey, data, 0); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

func (uc *HistoryUseCase) rehydrate(ctx context.Context) {
	data, err := uc.kvRepo.Get(ctx, uc.storageKey)
	if err != nil {
		uc.logger.Warn("Failed to read persisted history, starting empty",
			zap.String("key", uc.storageKey),
			zap.Error(err))
		return
	}
	if data == nil {
		uc.logger.Debug("No persisted history found", zap.String("key", uc.storageKey))
		return
	}

	var envelope domain.HistoryEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		uc.logger.Warn("Failed to unmarshal persisted history, starting empty",
			zap.String("key", uc.storageKey),
			zap.Error(err))
		return
	}

	if envelope.Version != domain.HistoryEnvelopeVersion {
		uc.logger.Warn("Unsupported history payload version, starting empty",
			zap.Int("version", envelope.Version))
		return
	}

	places := envelope.Places
	if len(places) > uc.capacity {
		places = places[:uc.capacity]
	}
	uc.places = places

	uc.logger.Info("History rehydrated",
		zap.String("key", uc.storageKey),
		zap.Int("entries", len(places)))
}

func (uc *HistoryUseCase) notify(snapshot domain.HistorySnapshot) {
	uc.subMu.Lock()
	subs := make([]func(domain.HistorySnapshot), len(uc.subscribers))
	copy(subs, uc.subscribers)
	uc.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (uc *HistoryUseCase) notifySelection(selected *domain.Place) {
	uc.subMu.Lock()
	subs := make([]func(*domain.Place), len(uc.selSubscribers))
	copy(subs, uc.selSubscribers)
	uc.subMu.Unlock()

	for _, fn := range subs {
		fn(selected)
	}
}
