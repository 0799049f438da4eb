package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bandroom/internal/models"
	"bandroom/internal/response"
	"bandroom/internal/storage"
	"bandroom/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRehearsalRequest struct {
	Title             string    `json:"title" binding:"required"`
	Description       string    `json:"description"`
	VenueID           *uint     `json:"venue_id"`
	StartTime         time.Time `json:"start_time" binding:"required"`
	EndTime           time.Time `json:"end_time" binding:"required"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern string    `json:"recurrence_pattern"`
}

// UpdateRehearsalRequest — частичное обновление репетиции.
// Для title, start_time, end_time и venue_id пустое значение означает "оставить прежнее";
// description, is_recurring и recurrence_pattern передаются указателями и могут быть явно очищены.
type UpdateRehearsalRequest struct {
	Title             string    `json:"title"`
	Description       *string   `json:"description"`
	VenueID           uint      `json:"venue_id"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	IsRecurring       *bool     `json:"is_recurring"`
	RecurrencePattern *string   `json:"recurrence_pattern"`
}

// AttendanceInfo представляет ответ одного участника на репетицию.
type AttendanceInfo struct {
	UserID      uint      `json:"user_id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Status      string    `json:"status"`
	Comment     string    `json:"comment"`
	RespondedAt time.Time `json:"responded_at"`
}

// RehearsalResponse представляет репетицию с площадкой и ответами участников.
type RehearsalResponse struct {
	ID                uint             `json:"id"`
	BandID            uint             `json:"band_id"`
	Venue             *VenueResponse   `json:"venue"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	StartTime         time.Time        `json:"start_time"`
	EndTime           time.Time        `json:"end_time"`
	IsRecurring       bool             `json:"is_recurring"`
	RecurrencePattern string           `json:"recurrence_pattern"`
	CreatedBy         uint             `json:"created_by"`
	Attendance        []AttendanceInfo `json:"attendance"`
}

// loadAttendanceRoster возвращает все ответы на репетицию в стабильном порядке (по id записи).
func loadAttendanceRoster(rehearsalID uint) ([]AttendanceInfo, error) {
	var records []models.Attendance
	if err := storage.DB.
		Preload("User").
		Where("rehearsal_id = ?", rehearsalID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	roster := make([]AttendanceInfo, 0, len(records))
	for _, record := range records {
		roster = append(roster, AttendanceInfo{
			UserID:      record.UserID,
			Name:        record.User.Name,
			Surname:     record.User.Surname,
			Status:      record.Status,
			Comment:     record.Comment,
			RespondedAt: record.RespondedAt,
		})
	}
	return roster, nil
}

func buildRehearsalResponse(rehearsal models.Rehearsal) (RehearsalResponse, error) {
	result := RehearsalResponse{
		ID:                rehearsal.ID,
		BandID:            rehearsal.BandID,
		Title:             rehearsal.Title,
		Description:       rehearsal.Description,
		StartTime:         rehearsal.StartTime,
		EndTime:           rehearsal.EndTime,
		IsRecurring:       rehearsal.IsRecurring,
		RecurrencePattern: rehearsal.RecurrencePattern,
		CreatedBy:         rehearsal.CreatedBy,
	}

	if rehearsal.VenueID != nil {
		var venue models.Venue
		if err := storage.DB.First(&venue, *rehearsal.VenueID).Error; err == nil {
			venueResp := venueToResponse(venue)
			result.Venue = &venueResp
		}
	}

	roster, err := loadAttendanceRoster(rehearsal.ID)
	if err != nil {
		return RehearsalResponse{}, err
	}
	result.Attendance = roster

	return result, nil
}

// applyRehearsalPatch применяет частичное обновление к репетиции.
// Политика совместимости: "пустое значение — значит поле не передано" для
// title/start_time/end_time/venue_id; поля-указатели задаются только при наличии
// в запросе и допускают явную очистку.
func applyRehearsalPatch(rehearsal *models.Rehearsal, req UpdateRehearsalRequest) {
	if req.Title != "" {
		rehearsal.Title = req.Title
	}
	if !req.StartTime.IsZero() {
		rehearsal.StartTime = req.StartTime
	}
	if !req.EndTime.IsZero() {
		rehearsal.EndTime = req.EndTime
	}
	if req.VenueID != 0 {
		venueID := req.VenueID
		rehearsal.VenueID = &venueID
	}
	if req.Description != nil {
		rehearsal.Description = *req.Description
	}
	if req.IsRecurring != nil {
		rehearsal.IsRecurring = *req.IsRecurring
	}
	if req.RecurrencePattern != nil {
		rehearsal.RecurrencePattern = *req.RecurrencePattern
	}
}

// GetBandRehearsalsHandler обрабатывает запрос на получение репетиций группы
// @Summary		Список репетиций группы
// @Description	Возвращает репетиции группы с площадкой и ответами участников, по возрастанию времени начала. Доступно участникам
// @Tags			rehearsals
// @Produce		json
// @Param			id	path	string	true	"ID группы"
// @Security		BearerAuth
// @Success		200	{array}		RehearsalResponse	"Список репетиций"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_BAND_ID)"
// @Failure		403	{object}	response.ErrorResponse	"Пользователь не участник группы (NOT_BAND_MEMBER)"
// @Failure		404	{object}	response.ErrorResponse	"Группа не найдена (BAND_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/bands/{id}/rehearsals [get]
func GetBandRehearsalsHandler(c *gin.Context) {
	bandID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_BAND_ID",
			Message: "Неверный идентификатор группы",
		})
		return
	}

	var band models.Band
	if err := storage.DB.First(&band, bandID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "BAND_NOT_FOUND",
			Message: "Группа не найдена",
		})
		return
	}

	userID := c.GetUint("userID")
	if !isBandMember(band.ID, userID) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_BAND_MEMBER",
			Message: "Нет доступа к репетициям этой группы",
		})
		return
	}

	var rehearsals []models.Rehearsal
	if err := storage.DB.
		Where("band_id = ?", band.ID).
		Order("start_time ASC").
		Find(&rehearsals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки репетиций",
			Details: err.Error(),
		})
		return
	}

	result := make([]RehearsalResponse, 0, len(rehearsals))
	for _, rehearsal := range rehearsals {
		item, err := buildRehearsalResponse(rehearsal)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Ошибка загрузки ответов участников",
				Details: err.Error(),
			})
			return
		}
		result = append(result, item)
	}

	c.JSON(http.StatusOK, result)
}

// GetRehearsalByIDHandler обрабатывает запрос на получение репетиции по ID
// @Summary		Получение репетиции
// @Description	Возвращает репетицию с площадкой и ответами участников. Доступно участникам группы
// @Tags			rehearsals
// @Produce		json
// @Param			id	path	string	true	"ID репетиции"
// @Security		BearerAuth
// @Success		200	{object}	RehearsalResponse	"Репетиция"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_REHEARSAL_ID)"
// @Failure		403	{object}	response.ErrorResponse	"Пользователь не участник группы (NOT_BAND_MEMBER)"
// @Failure		404	{object}	response.ErrorResponse	"Репетиция не найдена (REHEARSAL_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/rehearsals/{id} [get]
func GetRehearsalByIDHandler(c *gin.Context) {
	rehearsalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_REHEARSAL_ID",
			Message: "Неверный идентификатор репетиции",
		})
		return
	}

	var rehearsal models.Rehearsal
	if err := storage.DB.First(&rehearsal, rehearsalID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "REHEARSAL_NOT_FOUND",
			Message: "Репетиция не найдена",
		})
		return
	}

	userID := c.GetUint("userID")
	if !isBandMember(rehearsal.BandID, userID) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_BAND_MEMBER",
			Message: "Нет доступа к этой репетиции",
		})
		return
	}

	result, err := buildRehearsalResponse(rehearsal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки ответов участников",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateRehearsalHandler обрабатывает запрос на создание репетиции
// @Summary		Создание репетиции
// @Description	Создает репетицию и заводит каждому текущему участнику группы ответ "maybe" одной транзакцией. Только для администратора
// @Tags			rehearsals
// @Accept			json
// @Produce		json
// @Param			id			path	string					true	"ID группы"
// @Param			rehearsal	body	CreateRehearsalRequest	true	"Данные репетиции"
// @Security		BearerAuth
// @Success		201	{object}	RehearsalResponse	"Созданная репетиция с ответами участников"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (INVALID_BAND_ID, VALIDATION_ERROR, VENUE_NOT_FOUND)"
// @Failure		403	{object}	response.ErrorResponse	"Требуется роль администратора (NOT_BAND_ADMIN)"
// @Failure		404	{object}	response.ErrorResponse	"Группа не найдена (BAND_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/bands/{id}/rehearsals [post]
func CreateRehearsalHandler(c *gin.Context) {
	bandID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_BAND_ID",
			Message: "Неверный идентификатор группы",
		})
		return
	}

	var req CreateRehearsalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	var band models.Band
	if err := storage.DB.First(&band, bandID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "BAND_NOT_FOUND",
			Message: "Группа не найдена",
		})
		return
	}

	userID := c.GetUint("userID")
	if !isBandAdmin(band.ID, userID) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_BAND_ADMIN",
			Message: "Требуется роль администратора группы",
		})
		return
	}

	if req.VenueID != nil {
		var venue models.Venue
		if err := storage.DB.Where("id = ? AND band_id = ?", *req.VenueID, band.ID).First(&venue).Error; err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "VENUE_NOT_FOUND",
				Message: "Площадка не найдена в этой группе",
			})
			return
		}
	}

	rehearsal := models.Rehearsal{
		BandID:            band.ID,
		VenueID:           req.VenueID,
		Title:             req.Title,
		Description:       req.Description,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
		CreatedBy:         userID,
	}

	// Репетиция и ответы участников создаются в одной транзакции:
	// никто не должен увидеть репетицию с неполным списком ответов.
	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rehearsal).Error; err != nil {
			return err
		}

		var memberships []models.BandMember
		if err := tx.Where("band_id = ?", band.ID).Order("joined_at ASC").Find(&memberships).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, m := range memberships {
			attendance := models.Attendance{
				RehearsalID: rehearsal.ID,
				UserID:      m.UserID,
				Status:      models.StatusMaybe,
				RespondedAt: now,
			}
			if err := tx.Create(&attendance).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании репетиции",
			Details: err.Error(),
		})
		return
	}

	result, err := buildRehearsalResponse(rehearsal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки ответов участников",
			Details: err.Error(),
		})
		return
	}

	ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
		EventType: "rehearsal.created",
		BandID:    strconv.Itoa(int(band.ID)),
		Data: map[string]interface{}{
			"rehearsal_id": rehearsal.ID,
			"title":        rehearsal.Title,
			"start_time":   rehearsal.StartTime,
		},
	})

	c.JSON(http.StatusCreated, result)
}

// UpdateRehearsalHandler обрабатывает запрос на изменение репетиции
// @Summary		Изменение репетиции
// @Description	Частичное обновление репетиции. Только для администратора группы
// @Tags			rehearsals
// @Accept			json
// @Produce		json
// @Param			id			path	string					true	"ID репетиции"
// @Param			rehearsal	body	UpdateRehearsalRequest	true	"Изменяемые поля"
// @Security		BearerAuth
// @Success		200	{object}	RehearsalResponse	"Обновленная репетиция"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (INVALID_REHEARSAL_ID, VALIDATION_ERROR, VENUE_NOT_FOUND)"
// @Failure		403	{object}	response.ErrorResponse	"Требуется роль администратора (NOT_BAND_ADMIN)"
// @Failure		404	{object}	response.ErrorResponse	"Репетиция не найдена (REHEARSAL_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/rehearsals/{id} [put]
func UpdateRehearsalHandler(c *gin.Context) {
	rehearsalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_REHEARSAL_ID",
			Message: "Неверный идентификатор репетиции",
		})
		return
	}

	var req UpdateRehearsalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	var rehearsal models.Rehearsal
	if err := storage.DB.First(&rehearsal, rehearsalID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "REHEARSAL_NOT_FOUND",
			Message: "Репетиция не найдена",
		})
		return
	}

	userID := c.GetUint("userID")
	if !isBandAdmin(rehearsal.BandID, userID) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_BAND_ADMIN",
			Message: "Требуется роль администратора группы",
		})
		return
	}

	if req.VenueID != 0 {
		var venue models.Venue
		if err := storage.DB.Where("id = ? AND band_id = ?", req.VenueID, rehearsal.BandID).First(&venue).Error; err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "VENUE_NOT_FOUND",
				Message: "Площадка не найдена в этой группе",
			})
			return
		}
	}

	applyRehearsalPatch(&rehearsal, req)

	if err := storage.DB.Save(&rehearsal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при обновлении репетиции",
			Details: err.Error(),
		})
		return
	}

	result, err := buildRehearsalResponse(rehearsal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки ответов участников",
			Details: err.Error(),
		})
		return
	}

	ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
		EventType: "rehearsal.updated",
		BandID:    strconv.Itoa(int(rehearsal.BandID)),
		Data: map[string]interface{}{
			"rehearsal_id": rehearsal.ID,
			"title":        rehearsal.Title,
			"start_time":   rehearsal.StartTime,
		},
	})

	c.JSON(http.StatusOK, result)
}

// DeleteRehearsalHandler обрабатывает запрос на удаление репетиции
// @Summary		Удаление репетиции
// @Description	Удаляет репетицию вместе с ответами участников и материалами. Только для администратора
// @Tags			rehearsals
// @Produce		json
// @Param			id	path	string	true	"ID репетиции"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Репетиция удалена"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_REHEARSAL_ID)"
// @Failure		403	{object}	response.ErrorResponse	"Требуется роль администратора (NOT_BAND_ADMIN)"
// @Failure		404	{object}	response.ErrorResponse	"Репетиция не найдена (REHEARSAL_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/rehearsals/{id} [delete]
func DeleteRehearsalHandler(c *gin.Context) {
	rehearsalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_REHEARSAL_ID",
			Message: "Неверный идентификатор репетиции",
		})
		return
	}

	var rehearsal models.Rehearsal
	if err := storage.DB.First(&rehearsal, rehearsalID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "REHEARSAL_NOT_FOUND",
			Message: "Репетиция не найдена",
		})
		return
	}

	userID := c.GetUint("userID")
	if !isBandAdmin(rehearsal.BandID, userID) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_BAND_ADMIN",
			Message: "Требуется роль администратора группы",
		})
		return
	}

	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rehearsal_id = ?", rehearsal.ID).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("rehearsal_id = ?", rehearsal.ID).Delete(&models.Resource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&rehearsal).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при удалении репетиции",
			Details: err.Error(),
		})
		return
	}

	ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
		EventType: "rehearsal.deleted",
		BandID:    strconv.Itoa(int(rehearsal.BandID)),
		Data: map[string]interface{}{
			"rehearsal_id": rehearsal.ID,
		},
	})

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Репетиция успешно удалена"})
}
