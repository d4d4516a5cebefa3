package dto

import "github.com/place-search-service/internal/domain"

// SessionResponse - ответ на создание сессии
type SessionResponse struct {
	SessionID string            `json:"session_id"`
	Bias      domain.Coordinate `json:"bias"`
}

// CandidatesResponse - текущее состояние сессии и список кандидатов
type CandidatesResponse struct {
	State      string             `json:"state"`
	Candidates []domain.Candidate `json:"candidates"`
}

// SelectResponse - результат выбора кандидата.
// Place отсутствует, если details-запрос не удался; Resolved false в этом случае.
type SelectResponse struct {
	Resolved bool          `json:"resolved"`
	Place    *domain.Place `json:"place,omitempty"`
}

// HistoryResponse - история поиска и текущее выбранное место
type HistoryResponse struct {
	Places   []domain.Place `json:"places"`
	Selected *domain.Place  `json:"selected,omitempty"`
	Total    int            `json:"total"`
}
