package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bandroom/internal/models"
	"bandroom/internal/response"
	"bandroom/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateBandRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateBandRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AddMemberRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Role        string `json:"role"`
	Instruments string `json:"instruments"`
}

// MemberInfo представляет участника группы в ответе API.
type MemberInfo struct {
	UserID      uint      `json:"user_id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Instruments string    `json:"instruments"`
	JoinedAt    time.Time `json:"joined_at"`
}

// BandResponse представляет группу со списком участников.
type BandResponse struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedBy   uint         `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	Members     []MemberInfo `json:"members"`
}

func buildBandResponse(band models.Band) (BandResponse, error) {
	var memberships []models.BandMember
	if err := storage.DB.
		Preload("User").
		Where("band_id = ?", band.ID).
		Order("joined_at ASC").
		Find(&memberships).Error; err != nil {
		return BandResponse{}, err
	}

	members := make([]MemberInfo, 0, len(memberships))
	for _, m := range memberships {
		members = append(members, MemberInfo{
			UserID:      m.UserID,
			Name:        m.User.Name,
			Surname:     m.User.Surname,
			Email:       m.User.Email,
			Role:        m.Role,
			Instruments: m.Instruments,
			JoinedAt:    m.JoinedAt,
		})
	}

	return BandResponse{
		ID:          band.ID,
		Name:        band.Name,
		Description: band.Description,
		CreatedBy:   band.CreatedBy,
		CreatedAt:   band.CreatedAt,
		Members:     members,
	}, nil
}

// GetUserBandsHandler обрабатывает запрос на получение групп пользователя
// @Summary		Список групп пользователя
// @Description	Возвращает группы, в которых состоит пользователь, с участниками, новые первыми
// @Tags			bands
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		BandResponse	"Список групп"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/bands [get]
func GetUserBandsHandler(c *gin.Context) {
	userID := c.GetUint("userID")

	var memberships []models.BandMember
	if err := storage.DB.Where("user_id = ?", userID).Find(&memberships).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки участий пользователя",
			Details: err.Error(),
		})
		return
	}

	if len(memberships) == 0 {
		c.JSON(http.StatusOK, []BandResponse{})
		return
	}

	bandIDs := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		bandIDs = append(bandIDs, m.BandID)
	}

	var bands []models.Band
	if err := storage.DB.
		Where("id IN ?", bandIDs).
		Order("created_at DESC").
		Find(&bands).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки групп",
			Details: err.Error(),
		})
		return
	}

	result := make([]BandResponse, 0, len(bands))
	for _, band := range bands {
		item, err := buildBandResponse(band)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Ошибка загрузки участников группы",
				Details: err.Error(),
			})
			return
		}
		result = append(result, item)
	}

	c.JSON(http.StatusOK, result)
}

// GetBandByIDHandler обрабатывает запрос на получение группы по ID
// @Summary		Получение группы
// @Description	Возвращает группу с участниками, доступно только участникам группы
// @Tags			bands
// @Produce		json
// @Param			id	path	string	true	"ID группы"
// @Security		BearerAuth
// @Success		200	{object}	BandResponse	"Группа с участниками"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_BAND_ID)"
// @Failure		403	{object}	response.ErrorResponse	"Пользователь не участник группы (NOT_BAND_MEMBER)"
// @Failure		404	{object}	response.ErrorResponse	"Группа не найдена (BAND_NOT_FOUND)"
// @Router			/api/bands/{id} [get]
func GetBandByIDHandler(c *gin.Context) {
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

	result, err := buildBandResponse(band)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки участников группы",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateBandHandler обрабатывает запрос на создание группы
// @Summary		Создание группы
// @Description	Создает группу и зачисляет создателя администратором одной транзакцией
// @Tags			bands
// @Accept			json
// @Produce		json
// @Param			band	body	CreateBandRequest	true	"Данные группы"
// @Security		BearerAuth
// @Success		201	{object}	BandResponse	"Созданная группа"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/bands [post]
func CreateBandHandler(c *gin.Context) {
	var req CreateBandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	userID := c.GetUint("userID")
	band := models.Band{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
	}

	// Группа и членство создателя создаются в одной транзакции:
	// группа без администратора существовать не должна.
	err := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&band).Error; err != nil {
			return err
		}
		membership := models.BandMember{
			BandID:   band.ID,
			UserID:   userID,
			Role:     models.RoleAdmin,
			JoinedAt: time.Now(),
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании группы",
			Details: err.Error(),
		})
		return
	}

	result, err := buildBandResponse(band)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки участников группы",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdateBandHandler обрабатывает запрос на изменение группы
// @Summary		Изменение группы
// @Description	Частичное обновление: пустое поле означает "оставить прежнее значение". Только для администратора
// @Tags			bands
// @Accept			json
// @Produce		json
// @Param			id		path	string				true	"ID группы"
// @Param			band	body	UpdateBandRequest	true	"Изменяемые поля"
// @Security		BearerAuth
// @Success		200	{object}	BandResponse	"Обновленная группа"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (INVALID_BAND_ID, VALIDATION_ERROR)"
// @Failure		403	{object}	response.ErrorResponse	"Требуется роль администратора (NOT_BAND_ADMIN)"
// @Failure		404	{object}	response.ErrorResponse	"Группа не найдена (BAND_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/bands/{id} [put]
func UpdateBandHandler(c *gin.Context) {
	bandID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_BAND_ID",
			Message: "Неверный идентификатор группы",
		})
		return
	}

	var req UpdateBandRequest
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

	if req.Name != "" {
		band.Name = req.Name
	}
	if req.Description != "" {
		band.Description = req.Description
	}

	if err := storage.DB.Save(&band).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при обновлении группы",
			Details: err.Error(),
		})
		return
	}

	result, err := buildBandResponse(band)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки участников группы",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteBandHandler обрабатывает запрос на удаление группы
// @Summary		Удаление группы
// @Description	Удаляет группу вместе с участниками, площадками, репетициями и их ответами. Только для администратора
// @Tags			bands
// @Produce		json
// @Param			id	path	string	true	"ID группы"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Группа удалена"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_BAND_ID)"
// @Failure		403	{object}	response.ErrorResponse	"Требуется роль администратора (NOT_BAND_ADMIN)"
// @Failure		404	{object}	response.ErrorResponse	"Группа не найдена (BAND_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/bands/{id} [delete]
func DeleteBandHandler(c *gin.Context) {
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
	if !isBandAdmin(band.ID, userID) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "NOT_BAND_ADMIN",
			Message: "Требуется роль администратора группы",
		})
		return
	}

	// Каскадное удаление всего, чем владеет группа, одной транзакцией.
	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		var rehearsalIDs []uint
		if err := tx.Model(&models.Rehearsal{}).Where("band_id = ?", band.ID).Pluck("id", &rehearsalIDs).Error; err != nil {
			return err
		}
		if len(rehearsalIDs) > 0 {
			if err := tx.Where("rehearsal_id IN ?", rehearsalIDs).Delete(&models.Attendance{}).Error; err != nil {
				return err
			}
			if err := tx.Where("rehearsal_id IN ?", rehearsalIDs).Delete(&models.Resource{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("band_id = ?", band.ID).Delete(&models.Rehearsal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("band_id = ?", band.ID).Delete(&models.Venue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("band_id = ?", band.ID).Delete(&models.BandMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&band).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при удалении группы",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Группа успешно удалена"})
}

// AddMemberHandler обрабатывает запрос на добавление участника в группу
// @Summary		Добавление участника
// @Description	Находит пользователя по email и добавляет его в группу. Только для администратора
// @Tags			bands
// @Accept			json
// @Produce		json
// @Param			id		path	string				true	"ID группы"
// @Param			member	body	AddMemberRequest	true	"Данные нового участника"
// @Security		BearerAuth
// @Success		201	{object}	MemberInfo	"Добавленный участник"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (INVALID_BAND_ID, VALIDATION_ERROR, INVALID_ROLE, ALREADY_MEMBER)"
// @Failure		403	{object}	response.ErrorResponse	"Требуется роль администратора (NOT_BAND_ADMIN)"
// @Failure		404	{object}	response.ErrorResponse	"Группа или пользователь не найдены (BAND_NOT_FOUND, USER_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/bands/{id}/members [post]
func AddMemberHandler(c *gin.Context) {
	bandID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_BAND_ID",
			Message: "Неверный идентификатор группы",
		})
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	if req.Role == "" {
		req.Role = models.RoleMember
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleMember {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_ROLE",
			Message: "Роль должна быть admin или member",
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

	var userToAdd models.User
	if err := storage.DB.Where("email = ?", req.Email).First(&userToAdd).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "USER_NOT_FOUND",
			Message: "Пользователь с таким email не найден",
		})
		return
	}

	if getMembership(band.ID, userToAdd.ID) != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "ALREADY_MEMBER",
			Message: "Пользователь уже состоит в этой группе",
		})
		return
	}

	membership := models.BandMember{
		BandID:      band.ID,
		UserID:      userToAdd.ID,
		Role:        req.Role,
		Instruments: req.Instruments,
		JoinedAt:    time.Now(),
	}
	if err := storage.DB.Create(&membership).Error; err != nil {
		// Уникальный индекс (band_id, user_id) страхует от гонки двух одновременных добавлений.
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "ALREADY_MEMBER",
			Message: "Пользователь уже состоит в этой группе",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, MemberInfo{
		UserID:      userToAdd.ID,
		Name:        userToAdd.Name,
		Surname:     userToAdd.Surname,
		Email:       userToAdd.Email,
		Role:        membership.Role,
		Instruments: membership.Instruments,
		JoinedAt:    membership.JoinedAt,
	})
}
