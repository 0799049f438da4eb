package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"bandroom/internal/models"
	"bandroom/internal/storage"

	"github.com/stretchr/testify/assert"
)

// createBandWithRehearsal подготавливает группу из двух участников и одну репетицию.
func createBandWithRehearsal(t *testing.T, ts string) (models.User, models.User, uint, uint) {
	admin := createTestUser(t, "Сергей", "Кузнецов")
	member := createTestUser(t, "Олег", "Васильев")

	res := doJSON(t, "POST", ts+"/api/bands", admin.ID, map[string]interface{}{
		"name": "Квартет",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Не удалось создать группу")
	var band map[string]interface{}
	json.NewDecoder(res.Body).Decode(&band)
	res.Body.Close()
	bandID := uint(band["id"].(float64))

	res = doJSON(t, "POST", ts+fmt.Sprintf("/api/bands/%d/members", bandID), admin.ID, map[string]interface{}{
		"email": member.Email,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Не удалось добавить участника")
	res.Body.Close()

	start := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	res = doJSON(t, "POST", ts+fmt.Sprintf("/api/bands/%d/rehearsals", bandID), admin.ID, map[string]interface{}{
		"title":      "Прогон программы",
		"start_time": start.Format(time.RFC3339),
		"end_time":   start.Add(3 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Не удалось создать репетицию")
	var rehearsal map[string]interface{}
	json.NewDecoder(res.Body).Decode(&rehearsal)
	res.Body.Close()
	rehearsalID := uint(rehearsal["id"].(float64))

	return admin, member, bandID, rehearsalID
}

func TestAttendanceUpsert(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	_, member, _, rehearsalID := createBandWithRehearsal(t, ts.URL)

	// Два последовательных ответа одного участника: запись одна, статус — последний.
	res := doJSON(t, "PUT", ts.URL+fmt.Sprintf("/api/rehearsals/%d/attendance", rehearsalID), member.ID, map[string]interface{}{
		"status":  "attending",
		"comment": "буду вовремя",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Первый ответ не прошел")
	res.Body.Close()

	res = doJSON(t, "PUT", ts.URL+fmt.Sprintf("/api/rehearsals/%d/attendance", rehearsalID), member.ID, map[string]interface{}{
		"status": "attending",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Повторный ответ не прошел")
	res.Body.Close()

	var rows []models.Attendance
	storage.DB.Where("rehearsal_id = ? AND user_id = ?", rehearsalID, member.ID).Find(&rows)
	assert.Equal(t, 1, len(rows), "Для пары (репетиция, пользователь) должна быть одна запись")
	assert.Equal(t, "attending", rows[0].Status, "Статус должен быть attending")
	assert.Equal(t, "буду вовремя", rows[0].Comment, "Комментарий без нового значения должен сохраниться")

	// Статус вне перечисления отклоняется до записи.
	res = doJSON(t, "PUT", ts.URL+fmt.Sprintf("/api/rehearsals/%d/attendance", rehearsalID), member.ID, map[string]interface{}{
		"status": "probably",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Недопустимый статус должен быть отклонен")
	var errResp map[string]interface{}
	json.NewDecoder(res.Body).Decode(&errResp)
	res.Body.Close()
	assert.Equal(t, "INVALID_STATUS", errResp["code"], "Ожидался код INVALID_STATUS")

	var after models.Attendance
	storage.DB.Where("rehearsal_id = ? AND user_id = ?", rehearsalID, member.ID).First(&after)
	assert.Equal(t, "attending", after.Status, "Отклоненный статус не должен был записаться")
}

func TestVenueDeleteClearsRehearsalReference(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	admin, _, bandID, rehearsalID := createBandWithRehearsal(t, ts.URL)

	// Создаем площадку и привязываем к ней репетицию.
	res := doJSON(t, "POST", ts.URL+fmt.Sprintf("/api/bands/%d/venues", bandID), admin.ID, map[string]interface{}{
		"name":    "Гараж",
		"address": "ул. Ленина, 1",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Не удалось создать площадку")
	var venue map[string]interface{}
	json.NewDecoder(res.Body).Decode(&venue)
	res.Body.Close()
	venueID := uint(venue["id"].(float64))

	res = doJSON(t, "PUT", ts.URL+fmt.Sprintf("/api/rehearsals/%d", rehearsalID), admin.ID, map[string]interface{}{
		"venue_id": venueID,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Не удалось привязать площадку")
	res.Body.Close()

	var rehearsal models.Rehearsal
	storage.DB.First(&rehearsal, rehearsalID)
	assert.NotNil(t, rehearsal.VenueID, "У репетиции должна быть площадка")

	// Удаление площадки: репетиция остается, ссылка обнуляется.
	res = doJSON(t, "DELETE", ts.URL+fmt.Sprintf("/api/venues/%d", venueID), admin.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Не удалось удалить площадку")
	res.Body.Close()

	storage.DB.First(&rehearsal, rehearsalID)
	assert.Nil(t, rehearsal.VenueID, "Ссылка на удаленную площадку должна обнулиться")
	assert.Equal(t, "Прогон программы", rehearsal.Title, "Репетиция не должна удаляться вместе с площадкой")
}

func TestRehearsalDeleteCascade(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	admin, member, _, rehearsalID := createBandWithRehearsal(t, ts.URL)

	// Прикрепляем материал, чтобы проверить каскад целиком.
	res := doJSON(t, "POST", ts.URL+fmt.Sprintf("/api/rehearsals/%d/resources", rehearsalID), member.ID, map[string]interface{}{
		"name":     "Сет-лист прогона",
		"type":     "setlist",
		"file_url": "https://files.example.com/setlist.pdf",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Не удалось добавить материал")
	res.Body.Close()

	// Обычный участник не может удалить репетицию, данные не меняются.
	res = doJSON(t, "DELETE", ts.URL+fmt.Sprintf("/api/rehearsals/%d", rehearsalID), member.ID, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Не администратор не должен удалять репетицию")
	res.Body.Close()

	var intact models.Rehearsal
	err := storage.DB.First(&intact, rehearsalID).Error
	assert.NoError(t, err, "Репетиция должна остаться после отказа в удалении")
	assert.Equal(t, "Прогон программы", intact.Title, "Репетиция не должна измениться")

	var attendanceCount int64
	storage.DB.Model(&models.Attendance{}).Where("rehearsal_id = ?", rehearsalID).Count(&attendanceCount)
	assert.Equal(t, int64(2), attendanceCount, "Ответы участников должны сохраниться")

	// Администратор удаляет репетицию вместе с ответами и материалами.
	res = doJSON(t, "DELETE", ts.URL+fmt.Sprintf("/api/rehearsals/%d", rehearsalID), admin.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Администратор должен удалить репетицию")
	res.Body.Close()

	res = doJSON(t, "GET", ts.URL+fmt.Sprintf("/api/rehearsals/%d", rehearsalID), admin.ID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "Удаленная репетиция не должна находиться")
	res.Body.Close()

	storage.DB.Model(&models.Attendance{}).Where("rehearsal_id = ?", rehearsalID).Count(&attendanceCount)
	assert.Equal(t, int64(0), attendanceCount, "Ответы должны удаляться вместе с репетицией")

	var resourceCount int64
	storage.DB.Model(&models.Resource{}).Where("rehearsal_id = ?", rehearsalID).Count(&resourceCount)
	assert.Equal(t, int64(0), resourceCount, "Материалы должны удаляться вместе с репетицией")
}

func TestBandAdminGate(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	_, member, bandID, _ := createBandWithRehearsal(t, ts.URL)

	// Обычный участник не может менять и удалять группу, добавлять участников.
	res := doJSON(t, "PUT", ts.URL+fmt.Sprintf("/api/bands/%d", bandID), member.ID, map[string]interface{}{
		"name": "Чужое название",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Не администратор не должен менять группу")
	res.Body.Close()

	res = doJSON(t, "DELETE", ts.URL+fmt.Sprintf("/api/bands/%d", bandID), member.ID, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Не администратор не должен удалять группу")
	res.Body.Close()

	outsider := createTestUser(t, "Дмитрий", "Орлов")
	res = doJSON(t, "POST", ts.URL+fmt.Sprintf("/api/bands/%d/members", bandID), member.ID, map[string]interface{}{
		"email": outsider.Email,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Не администратор не должен добавлять участников")
	res.Body.Close()

	var band models.Band
	storage.DB.First(&band, bandID)
	assert.Equal(t, "Квартет", band.Name, "Название группы не должно измениться")

	// Площадки меняет только администратор; участнику доступно чтение.
	res = doJSON(t, "POST", ts.URL+fmt.Sprintf("/api/bands/%d/venues", bandID), member.ID, map[string]interface{}{
		"name": "Подвал",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Не администратор не должен создавать площадки")
	res.Body.Close()

	var admin models.BandMember
	storage.DB.Where("band_id = ? AND role = ?", bandID, "admin").First(&admin)
	res = doJSON(t, "POST", ts.URL+fmt.Sprintf("/api/bands/%d/venues", bandID), admin.UserID, map[string]interface{}{
		"name": "Студия",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Администратор должен создавать площадки")
	var venue map[string]interface{}
	json.NewDecoder(res.Body).Decode(&venue)
	res.Body.Close()
	venueID := uint(venue["id"].(float64))

	res = doJSON(t, "PUT", ts.URL+fmt.Sprintf("/api/venues/%d", venueID), member.ID, map[string]interface{}{
		"name": "Чужая студия",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Не администратор не должен менять площадку")
	res.Body.Close()

	res = doJSON(t, "DELETE", ts.URL+fmt.Sprintf("/api/venues/%d", venueID), member.ID, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Не администратор не должен удалять площадку")
	res.Body.Close()

	var untouched models.Venue
	err := storage.DB.First(&untouched, venueID).Error
	assert.NoError(t, err, "Площадка должна остаться")
	assert.Equal(t, "Студия", untouched.Name, "Название площадки не должно измениться")

	res = doJSON(t, "GET", ts.URL+fmt.Sprintf("/api/bands/%d/venues", bandID), member.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Участник должен видеть площадки группы")
	res.Body.Close()

	// Посторонний пользователь не видит группу и её репетиции.
	res = doJSON(t, "GET", ts.URL+fmt.Sprintf("/api/bands/%d", bandID), outsider.ID, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Посторонний не должен видеть группу")
	res.Body.Close()

	res = doJSON(t, "GET", ts.URL+fmt.Sprintf("/api/bands/%d/rehearsals", bandID), outsider.ID, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Посторонний не должен видеть репетиции")
	res.Body.Close()
}
