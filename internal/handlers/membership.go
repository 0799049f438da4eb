package handlers

import (
	"bandroom/internal/models"
	"bandroom/internal/storage"
)

// getMembership возвращает запись участника группы или nil, если пользователь не состоит в группе.
// Отсутствие записи — не ошибка: вызывающий код сам решает, что делать с "не участником".
func getMembership(bandID, userID uint) *models.BandMember {
	var membership models.BandMember
	if err := storage.DB.Where("band_id = ? AND user_id = ?", bandID, userID).First(&membership).Error; err != nil {
		return nil
	}
	return &membership
}

// isBandAdmin проверяет, что пользователь — администратор группы.
// Роль запрашивается заново при каждой проверке, кэширование между запросами недопустимо.
func isBandAdmin(bandID, userID uint) bool {
	membership := getMembership(bandID, userID)
	return membership != nil && membership.Role == models.RoleAdmin
}

// isBandMember проверяет, что пользователь состоит в группе (с любой ролью).
func isBandMember(bandID, userID uint) bool {
	return getMembership(bandID, userID) != nil
}
