package dto

// CreateSessionRequest - запрос на создание поисковой сессии.
// Координаты устройства опциональны; при отсутствии используется геолокация по IP.
type CreateSessionRequest struct {
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
}

// SetTextRequest - изменение текста поиска.
// Пустой текст допустим и очищает кандидатов.
type SetTextRequest struct {
	Text string `json:"text" validate:"max=256"`
}

// SelectCandidateRequest - выбор кандидата автодополнения
type SelectCandidateRequest struct {
	CandidateID string `json:"candidate_id" validate:"required"`
}

// HistorySelectRequest - выбор места из истории.
// Пустой place_id очищает текущий выбор.
type HistorySelectRequest struct {
	PlaceID string `json:"place_id"`
}
