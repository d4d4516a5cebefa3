package handler

import (
	"github.com/gofiber/fiber/v2"
	apperrors "github.com/place-search-service/internal/pkg/errors"
	"github.com/place-search-service/internal/pkg/utils"
	"github.com/place-search-service/internal/pkg/validator"
	"github.com/place-search-service/internal/usecase"
	"github.com/place-search-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// HistoryHandler - обработчик истории поиска
type HistoryHandler struct {
	historyUC *usecase.HistoryUseCase
	logger    *zap.Logger
}

// NewHistoryHandler - создание нового HistoryHandler
func NewHistoryHandler(historyUC *usecase.HistoryUseCase, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyUC: historyUC,
		logger:    logger,
	}
}

// GetHistory godoc
// @Summary История поиска
// @Description Возвращает записи истории от новых к старым и текущее выбранное место. Чтение без побочных эффектов.
// @Tags History
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.HistoryResponse}
// @Router /api/v1/history [get]
func (h *HistoryHandler) GetHistory(c *fiber.Ctx) error {
	snapshot := h.historyUC.Read()

	return utils.SendSuccess(c, dto.HistoryResponse{
		Places:   snapshot.Places,
		Selected: snapshot.Selected,
		Total:    len(snapshot.Places),
	}, &utils.Meta{Total: len(snapshot.Places)})
}

// SelectFromHistory godoc
// @Summary Выбор места из истории
// @Description Делает запись истории текущим выбранным местом. Пустой place_id очищает выбор. Состав истории не меняется.
// @Tags History
// @Accept json
// @Produce json
// @Param request body dto.HistorySelectRequest true "Идентификатор места"
// @Success 200 {object} utils.SuccessResponse{data=dto.HistoryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/history/select [post]
func (h *HistoryHandler) SelectFromHistory(c *fiber.Ctx) error {
	var req dto.HistorySelectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if req.PlaceID == "" {
		h.historyUC.Select(nil)
	} else {
		place, ok := h.historyUC.Find(req.PlaceID)
		if !ok {
			return utils.SendError(c, apperrors.ErrPlaceNotInHistory)
		}
		h.historyUC.Select(place)
	}

	snapshot := h.historyUC.Read()
	return utils.SendSuccess(c, dto.HistoryResponse{
		Places:   snapshot.Places,
		Selected: snapshot.Selected,
		Total:    len(snapshot.Places),
	}, nil)
}

// ClearHistory godoc
// @Summary Очистка истории
// @Description Опустошает историю поиска и персистирует пустой список. Текущее выбранное место не затрагивается.
// @Tags History
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/history [delete]
func (h *HistoryHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.historyUC.Clear(c.Context()); err != nil {
		h.logger.Error("Failed to clear history", zap.Error(err))
		return utils.SendError(c, apperrors.ErrStorageError)
	}

	return utils.SendSuccess(c, fiber.Map{"cleared": true}, nil)
}
