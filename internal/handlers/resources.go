package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bandroom/internal/models"
	"bandroom/internal/response"
	"bandroom/internal/storage"

	"github.com/gin-gonic/gin"
)

type CreateResourceRequest struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required"`
	FileURL string `json:"file_url" binding:"required"`
}

// ResourceResponse представляет материал репетиции в ответе API.
type ResourceResponse struct {
	ID          uint      `json:"id"`
	RehearsalID uint      `json:"rehearsal_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	FileURL     string    `json:"file_url"`
	UploadedBy  uint      `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func resourceToResponse(resource models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          resource.ID,
		RehearsalID: resource.RehearsalID,
		Name:        resource.Name,
		Type:        resource.Type,
		FileURL:     resource.FileURL,
		UploadedBy:  resource.UploadedBy,
		CreatedAt:   resource.CreatedAt,
	}
}

func isValidResourceType(t string) bool {
	switch t {
	case models.ResourceSetlist, models.ResourceSheetMusic, models.ResourceRecording, models.ResourceOther:
		return true
	}
	return false
}

// GetRehearsalResourcesHandler обрабатывает запрос на получение материалов репетиции
// @Summary		Материалы репетиции
// @Description	Возвращает материалы репетиции (сет-листы, ноты, записи). Доступно участникам группы
// @Tags			resources
// @Produce		json
// @Param			id	path	string	true	"ID репетиции"
// @Security		BearerAuth
// @Success		200	{array}		ResourceResponse	"Список материалов"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_REHEARSAL_ID)"
// @Failure		403	{object}	response.ErrorResponse	"Пользователь не участник группы (NOT_BAND_MEMBER)"
// @Failure		404	{object}	response.ErrorResponse	"Репетиция не найдена (REHEARSAL_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/rehearsals/{id}/resources [get]
func GetRehearsalResourcesHandler(c *gin.Context) {
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

	var resources []models.Resource
	if err := storage.DB.Where("rehearsal_id = ?", rehearsal.ID).Order("id ASC").Find(&resources).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки материалов",
			Details: err.Error(),
		})
		return
	}

	result := make([]ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		result = append(result, resourceToResponse(resource))
	}

	c.JSON(http.StatusOK, result)
}

// CreateResourceHandler обрабатывает запрос на добавление материала репетиции
// @Summary		Добавление материала
// @Description	Прикрепляет материал к репетиции. Доступно участникам группы
// @Tags			resources
// @Accept			json
// @Produce		json
// @Param			id			path	string					true	"ID репетиции"
// @Param			resource	body	CreateResourceRequest	true	"Метаданные материала"
// @Security		BearerAuth
// @Success		201	{object}	ResourceResponse	"Добавленный материал"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (INVALID_REHEARSAL_ID, VALIDATION_ERROR, INVALID_RESOURCE_TYPE)"
// @Failure		403	{object}	response.ErrorResponse	"Пользователь не участник группы (NOT_BAND_MEMBER)"
// @Failure		404	{object}	response.ErrorResponse	"Репетиция не найдена (REHEARSAL_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/rehearsals/{id}/resources [post]
func CreateResourceHandler(c *gin.Context) {
	rehearsalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_REHEARSAL_ID",
			Message: "Неверный идентификатор репетиции",
		})
		return
	}

	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	if !isValidResourceType(req.Type) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_RESOURCE_TYPE",
			Message: "Тип должен быть setlist, sheet_music, recording или other",
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

	resource := models.Resource{
		RehearsalID: rehearsal.ID,
		Name:        req.Name,
		Type:        req.Type,
		FileURL:     req.FileURL,
		UploadedBy:  userID,
	}
	if err := storage.DB.Create(&resource).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при добавлении материала",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, resourceToResponse(resource))
}

// DeleteResourceHandler обрабатывает запрос на удаление материала
// @Summary		Удаление материала
// @Description	Удаляет материал репетиции. Доступно загрузившему или администратору группы
// @Tags			resources
// @Produce		json
// @Param			id	path	string	true	"ID материала"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Материал удален"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_RESOURCE_ID)"
// @Failure		403	{object}	response.ErrorResponse	"Нет прав на удаление (NOT_RESOURCE_OWNER)"
// @Failure		404	{object}	response.ErrorResponse	"Материал не найден (RESOURCE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/resources/{id} [delete]
func DeleteResourceHandler(c *gin.Context) {
	resourceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_RESOURCE_ID",
			Message: "Неверный идентификатор материала",
		})
		return
	}

	var resource models.Resource
	if err := storage.DB.First(&resource, resourceID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "RESOURCE_NOT_FOUND",
			Message: "Материал не найден",
		})
		return
	}

	var rehearsal models.Rehearsal
	if err := storage.DB.First(&rehearsal, resource.RehearsalID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "REHEARSAL_NOT_FOUND",
			Message: "Репетиция не найдена",
		})
		return
	}

	userID := c.GetUint("userID")
	if resource.UploadedBy != userID && !isBandAdmin(rehearsal.BandID, userID) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_RESOURCE_OWNER",
			Message: "Удалить материал может загрузивший или администратор группы",
		})
		return
	}

	if err := storage.DB.Delete(&resource).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при удалении материала",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Материал успешно удален"})
}
