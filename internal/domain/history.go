package domain

import "time"

// DefaultHistoryCapacity - максимальное число записей в истории поиска
const DefaultHistoryCapacity = 20

// HistorySnapshot - консистентный снимок состояния истории для читателей.
// Places упорядочены от новых к старым; Selected может отсутствовать.
type HistorySnapshot struct {
	Places   []Place `json:"places"`
	Selected *Place  `json:"selected,omitempty"`
}

// HistoryEnvelope - версионированный формат сериализации истории в key-value
// хранилище. Версия позволяет мигрировать схему в будущем; неизвестная версия
// при регидрации трактуется как пустая история.
type HistoryEnvelope struct {
	Version int     `json:"version"`
	Places  []Place `json:"places"`
}

// HistoryEnvelopeVersion - текущая версия формата
const HistoryEnvelopeVersion = 1

// Stream names
const (
	StreamPlaceSelected = "stream:place:selected"
)

// PlaceSelectedEvent - событие выбора места, публикуемое в Redis Stream.
// Потребляется map-коллаборатором для перемещения viewport и установки маркера.
type PlaceSelectedEvent struct {
	PlaceID    string    `json:"place_id"`
	Name       string    `json:"name"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	SelectedAt time.Time `json:"selected_at"`
}
