package handlers

import (
	"net/http"
	"strconv"

	"bandroom/internal/models"
	"bandroom/internal/response"
	"bandroom/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateVenueRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type UpdateVenueRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// VenueResponse представляет площадку в ответе API.
type VenueResponse struct {
	ID          uint   `json:"id"`
	BandID      uint   `json:"band_id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func venueToResponse(venue models.Venue) VenueResponse {
	return VenueResponse{
		ID:          venue.ID,
		BandID:      venue.BandID,
		Name:        venue.Name,
		Address:     venue.Address,
		Description: venue.Description,
	}
}

// GetBandVenuesHandler обрабатывает запрос на получение площадок группы
// @Summary		Список площадок группы
// @Description	Возвращает все площадки группы, доступно участникам
// @Tags			venues
// @Produce		json
// @Param			id	path	string	true	"ID группы"
// @Security		BearerAuth
// @Success		200	{array}		VenueResponse	"Список площадок"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_BAND_ID)"
// @Failure		403	{object}	response.ErrorResponse	"Пользователь не участник группы (NOT_BAND_MEMBER)"
// @Failure		404	{object}	response.ErrorResponse	"Группа не найдена (BAND_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/bands/{id}/venues [get]
func GetBandVenuesHandler(c *gin.Context) {
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
			Message: "Нет доступа к этой группе",
		})
		return
	}

	var venues []models.Venue
	if err := storage.DB.Where("band_id = ?", band.ID).Order("name ASC").Find(&venues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки площадок",
			Details: err.Error(),
		})
		return
	}

	result := make([]VenueResponse, 0, len(venues))
	for _, venue := range venues {
		result = append(result, venueToResponse(venue))
	}

	c.JSON(http.StatusOK, result)
}

// CreateVenueHandler обрабатывает запрос на создание площадки
// @Summary		Создание площадки
// @Description	Добавляет площадку группе. Только для администратора
// @Tags			venues
// @Accept			json
// @Produce		json
// @Param			id		path	string				true	"ID группы"
// @Param			venue	body	CreateVenueRequest	true	"Данные площадки"
// @Security		BearerAuth
// @Success		201	{object}	VenueResponse	"Созданная площадка"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (INVALID_BAND_ID, VALIDATION_ERROR)"
// @Failure		403	{object}	response.ErrorResponse	"Требуется роль администратора (NOT_BAND_ADMIN)"
// @Failure		404	{object}	response.ErrorResponse	"Группа не найдена (BAND_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/bands/{id}/venues [post]
func CreateVenueHandler(c *gin.Context) {
	bandID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_BAND_ID",
			Message: "Неверный идентификатор группы",
		})
		return
	}

	var req CreateVenueRequest
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

	venue := models.Venue{
		BandID:      band.ID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	}
	if err := storage.DB.Create(&venue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании площадки",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, venueToResponse(venue))
}

// UpdateVenueHandler обрабатывает запрос на изменение площадки
// @Summary		Изменение площадки
// @Description	Частичное обновление: пустое поле означает "оставить прежнее значение". Только для администратора
// @Tags			venues
// @Accept			json
// @Produce		json
// @Param			id		path	string				true	"ID площадки"
// @Param			venue	body	UpdateVenueRequest	true	"Изменяемые поля"
// @Security		BearerAuth
// @Success		200	{object}	VenueResponse	"Обновленная площадка"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (INVALID_VENUE_ID, VALIDATION_ERROR)"
// @Failure		403	{object}	response.ErrorResponse	"Требуется роль администратора (NOT_BAND_ADMIN)"
// @Failure		404	{object}	response.ErrorResponse	"Площадка не найдена (VENUE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/venues/{id} [put]
func UpdateVenueHandler(c *gin.Context) {
	venueID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_VENUE_ID",
			Message: "Неверный идентификатор площадки",
		})
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	var venue models.Venue
	if err := storage.DB.First(&venue, venueID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "VENUE_NOT_FOUND",
			Message: "Площадка не найдена",
		})
		return
	}

	userID := c.GetUint("userID")
	if !isBandAdmin(venue.BandID, userID) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_BAND_ADMIN",
			Message: "Требуется роль администратора группы",
		})
		return
	}

	if req.Name != "" {
		venue.Name = req.Name
	}
	if req.Address != "" {
		venue.Address = req.Address
	}
	if req.Description != "" {
		venue.Description = req.Description
	}

	if err := storage.DB.Save(&venue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при обновлении площадки",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, venueToResponse(venue))
}

// DeleteVenueHandler обрабатывает запрос на удаление площадки
// @Summary		Удаление площадки
// @Description	Удаляет площадку; у репетиций на этой площадке ссылка обнуляется, сами репетиции остаются. Только для администратора
// @Tags			venues
// @Produce		json
// @Param			id	path	string	true	"ID площадки"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Площадка удалена"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_VENUE_ID)"
// @Failure		403	{object}	response.ErrorResponse	"Требуется роль администратора (NOT_BAND_ADMIN)"
// @Failure		404	{object}	response.ErrorResponse	"Площадка не найдена (VENUE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/venues/{id} [delete]
func DeleteVenueHandler(c *gin.Context) {
	venueID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_VENUE_ID",
			Message: "Неверный идентификатор площадки",
		})
		return
	}

	var venue models.Venue
	if err := storage.DB.First(&venue, venueID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "VENUE_NOT_FOUND",
			Message: "Площадка не найдена",
		})
		return
	}

	userID := c.GetUint("userID")
	if !isBandAdmin(venue.BandID, userID) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_BAND_ADMIN",
			Message: "Требуется роль администратора группы",
		})
		return
	}

	// Репетиции на этой площадке не удаляются, ссылка на площадку обнуляется.
	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Rehearsal{}).
			Where("venue_id = ?", venue.ID).
			Update("venue_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при удалении площадки",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Площадка успешно удалена"})
}
