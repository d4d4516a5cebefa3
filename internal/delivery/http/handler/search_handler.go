package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/place-search-service/internal/domain"
	apperrors "github.com/place-search-service/internal/pkg/errors"
	"github.com/place-search-service/internal/pkg/utils"
	"github.com/place-search-service/internal/pkg/validator"
	"github.com/place-search-service/internal/usecase"
	"github.com/place-search-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// SearchHandler - обработчик поисковых сессий
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// CreateSession godoc
// @Summary Создание поисковой сессии
// @Description Создает сессию поиска мест. Координаты смещения берутся из тела запроса; при их отсутствии определяются по IP клиента с fallback на координаты по умолчанию.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest false "Координаты устройства"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SearchHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	// Координаты принимаются только парой
	if (req.Lat == nil) != (req.Lon == nil) {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates)
	}

	var coords *domain.Coordinate
	if req.Lat != nil && req.Lon != nil {
		if !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
			return utils.SendError(c, apperrors.ErrInvalidCoordinates)
		}
		coords = &domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon}
	}

	session := h.searchUC.CreateSession(c.Context(), c.IP(), coords)

	return utils.SendSuccess(c, dto.SessionResponse{
		SessionID: session.ID(),
		Bias:      session.Bias(),
	}, nil)
}

// SetText godoc
// @Summary Изменение текста поиска
// @Description Обрабатывает ввод пользователя. Запрос автодополнения выполняется после debounce-паузы; пустой текст очищает кандидатов без запроса.
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param request body dto.SetTextRequest true "Текст поиска"
// @Success 200 {object} utils.SuccessResponse{data=dto.CandidatesResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 410 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/text [put]
func (h *SearchHandler) SetText(c *fiber.Ctx) error {
	session, err := h.searchUC.GetSession(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SetTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := session.SetText(req.Text); err != nil {
		return utils.SendError(c, err)
	}

	state, candidates := session.Candidates()
	return utils.SendSuccess(c, dto.CandidatesResponse{
		State:      string(state),
		Candidates: candidates,
	}, nil)
}

// GetCandidates godoc
// @Summary Текущие кандидаты автодополнения
// @Description Возвращает состояние сессии и список кандидатов. Список пуст, пока сессия находится в debounce или запрос еще выполняется.
// @Tags Search
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} utils.SuccessResponse{data=dto.CandidatesResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/candidates [get]
func (h *SearchHandler) GetCandidates(c *fiber.Ctx) error {
	session, err := h.searchUC.GetSession(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	state, candidates := session.Candidates()
	return utils.SendSuccess(c, dto.CandidatesResponse{
		State:      string(state),
		Candidates: candidates,
	}, &utils.Meta{Total: len(candidates)})
}

// SelectCandidate godoc
// @Summary Выбор кандидата
// @Description Разрешает кандидата через details-запрос, добавляет место в историю и делает его текущим выбором. Сбой details-запроса не является ошибкой: возвращается resolved=false.
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param request body dto.SelectCandidateRequest true "Идентификатор кандидата"
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/select [post]
func (h *SearchHandler) SelectCandidate(c *fiber.Ctx) error {
	session, err := h.searchUC.GetSession(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SelectCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	place, err := session.Select(c.Context(), req.CandidateID)
	if err != nil {
		if place != nil {
			// Место добавлено в память, но запись истории не персистирована
			h.logger.Error("History persistence failed after select",
				zap.String("place_id", place.ID),
				zap.Error(err))
			return utils.SendError(c, apperrors.ErrStorageError)
		}
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.SelectResponse{
		Resolved: place != nil,
		Place:    place,
	}, nil)
}

// CloseSession godoc
// @Summary Завершение поисковой сессии
// @Description Отменяет debounce-таймер и помечает незавершенные запросы устаревшими.
// @Tags Search
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SearchHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.searchUC.CloseSession(c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"closed": true}, nil)
}
