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
)

type SetAttendanceRequest struct {
	Status  string  `json:"status" binding:"required"`
	Comment *string `json:"comment"`
}

// AttendanceRosterResponse содержит репетицию и актуальные ответы всех участников.
type AttendanceRosterResponse struct {
	RehearsalID uint             `json:"rehearsal_id"`
	Attendance  []AttendanceInfo `json:"attendance"`
}

func isValidAttendanceStatus(status string) bool {
	switch status {
	case models.StatusAttending, models.StatusMaybe, models.StatusNotAttending:
		return true
	}
	return false
}

// SetAttendanceHandler обрабатывает запрос на изменение своего ответа на репетицию
// @Summary		Ответ на репетицию
// @Description	Участник группы задает свой статус (attending, maybe, not_attending). Повторный вызов обновляет существующий ответ. Возвращает ответы всех участников
// @Tags			attendance
// @Accept			json
// @Produce		json
// @Param			id			path	string					true	"ID репетиции"
// @Param			attendance	body	SetAttendanceRequest	true	"Статус и комментарий"
// @Security		BearerAuth
// @Success		200	{object}	AttendanceRosterResponse	"Все ответы на репетицию"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (INVALID_REHEARSAL_ID, VALIDATION_ERROR, INVALID_STATUS)"
// @Failure		403	{object}	response.ErrorResponse	"Пользователь не участник группы (NOT_BAND_MEMBER)"
// @Failure		404	{object}	response.ErrorResponse	"Репетиция не найдена (REHEARSAL_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/rehearsals/{id}/attendance [put]
func SetAttendanceHandler(c *gin.Context) {
	rehearsalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_REHEARSAL_ID",
			Message: "Неверный идентификатор репетиции",
		})
		return
	}

	var req SetAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	if !isValidAttendanceStatus(req.Status) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_STATUS",
			Message: "Статус должен быть attending, maybe или not_attending",
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

	if err := upsertAttendance(rehearsal.ID, userID, req); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при сохранении ответа",
			Details: err.Error(),
		})
		return
	}

	roster, err := loadAttendanceRoster(rehearsal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки ответов участников",
			Details: err.Error(),
		})
		return
	}

	ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
		EventType: "attendance.updated",
		BandID:    strconv.Itoa(int(rehearsal.BandID)),
		Data: map[string]interface{}{
			"rehearsal_id": rehearsal.ID,
			"user_id":      userID,
			"status":       req.Status,
		},
	})

	c.JSON(http.StatusOK, AttendanceRosterResponse{
		RehearsalID: rehearsal.ID,
		Attendance:  roster,
	})
}

// upsertAttendance записывает ответ пользователя на репетицию.
// На пару (rehearsal_id, user_id) существует не больше одной записи:
// гонку двух одновременных вставок разрешает уникальный индекс, проигравшая
// вставка повторяется как обновление.
func upsertAttendance(rehearsalID, userID uint, req SetAttendanceRequest) error {
	var attendance models.Attendance
	err := storage.DB.Where("rehearsal_id = ? AND user_id = ?", rehearsalID, userID).First(&attendance).Error
	if err == nil {
		attendance.Status = req.Status
		if req.Comment != nil {
			attendance.Comment = *req.Comment
		}
		attendance.RespondedAt = time.Now()
		return storage.DB.Save(&attendance).Error
	}

	attendance = models.Attendance{
		RehearsalID: rehearsalID,
		UserID:      userID,
		Status:      req.Status,
		RespondedAt: time.Now(),
	}
	if req.Comment != nil {
		attendance.Comment = *req.Comment
	}
	if createErr := storage.DB.Create(&attendance).Error; createErr != nil {
		// Параллельная вставка успела раньше — обновляем существующую запись.
		var existing models.Attendance
		if findErr := storage.DB.Where("rehearsal_id = ? AND user_id = ?", rehearsalID, userID).First(&existing).Error; findErr != nil {
			return createErr
		}
		existing.Status = req.Status
		if req.Comment != nil {
			existing.Comment = *req.Comment
		}
		existing.RespondedAt = time.Now()
		return storage.DB.Save(&existing).Error
	}
	return nil
}
