package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"bandroom/internal/handlers"
	"bandroom/internal/models"
	"bandroom/internal/storage"
	"bandroom/internal/tasks"
	"bandroom/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func AuthMiddlewareTest() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := c.Request.Header.Get("X-Test-UserID")
		if userIDStr == "" {
			// Значение по умолчанию
			c.Set("userID", uint(1))
		} else {
			// Попытка сконвертировать строку в число
			id, err := strconv.Atoi(userIDStr)
			if err != nil {
				c.Set("userID", uint(1))
			} else {
				c.Set("userID", uint(id))
			}
		}
		c.Next()
	}
}

func setupTestServer() *httptest.Server {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load("../.env")
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectTestingDatabase()
	storage.DB.Exec("TRUNCATE TABLE users, bands, band_members, venues, rehearsals, attendances, resources RESTART IDENTITY CASCADE;")

	if err := storage.DB.AutoMigrate(
		&models.User{},
		&models.Band{},
		&models.BandMember{},
		&models.Venue{},
		&models.Rehearsal{},
		&models.Attendance{},
		&models.Resource{},
	); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()
	tasks.InitScheduler()

	go ws.HubInstance.Run()

	r := gin.Default()

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handlers.Login)
		authGroup.POST("/register", handlers.Register)
		authGroup.POST("/refresh", handlers.RefreshToken)
	}

	api := r.Group("/api", AuthMiddlewareTest())
	{
		api.GET("/profile", handlers.GetProfile)

		bands := api.Group("/bands")
		{
			bands.GET("", handlers.GetUserBandsHandler)
			bands.POST("", handlers.CreateBandHandler)
			bands.GET("/:id", handlers.GetBandByIDHandler)
			bands.PUT("/:id", handlers.UpdateBandHandler)
			bands.DELETE("/:id", handlers.DeleteBandHandler)
			bands.POST("/:id/members", handlers.AddMemberHandler)
			bands.GET("/:id/venues", handlers.GetBandVenuesHandler)
			bands.POST("/:id/venues", handlers.CreateVenueHandler)
			bands.GET("/:id/rehearsals", handlers.GetBandRehearsalsHandler)
			bands.POST("/:id/rehearsals", handlers.CreateRehearsalHandler)
			bands.GET("/:id/ws", ws.BandWebSocketHandler)
		}

		venues := api.Group("/venues")
		{
			venues.PUT("/:id", handlers.UpdateVenueHandler)
			venues.DELETE("/:id", handlers.DeleteVenueHandler)
		}

		rehearsals := api.Group("/rehearsals")
		{
			rehearsals.GET("/:id", handlers.GetRehearsalByIDHandler)
			rehearsals.PUT("/:id", handlers.UpdateRehearsalHandler)
			rehearsals.DELETE("/:id", handlers.DeleteRehearsalHandler)
			rehearsals.PUT("/:id/attendance", handlers.SetAttendanceHandler)
			rehearsals.GET("/:id/resources", handlers.GetRehearsalResourcesHandler)
			rehearsals.POST("/:id/resources", handlers.CreateResourceHandler)
		}

		resources := api.Group("/resources")
		{
			resources.DELETE("/:id", handlers.DeleteResourceHandler)
		}
	}

	return httptest.NewServer(r)
}

func createTestUser(t *testing.T, name, surname string) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err, "Ошибка хеширования пароля")
	user := models.User{
		Name:         name,
		Surname:      surname,
		Email:        fmt.Sprintf("%s_%d@example.com", name, time.Now().UnixNano()),
		PasswordHash: string(hash),
	}
	err = storage.DB.Create(&user).Error
	assert.NoError(t, err, "Ошибка создания тестового пользователя")
	return user
}

func doJSON(t *testing.T, method, url string, userID uint, body interface{}) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		assert.NoError(t, err, "Ошибка сериализации тела запроса")
	}
	req, err := http.NewRequest(method, url, &buf)
	assert.NoError(t, err, "Ошибка создания запроса")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-UserID", fmt.Sprintf("%d", userID))
	res, err := http.DefaultClient.Do(req)
	assert.NoError(t, err, "Ошибка выполнения запроса")
	return res
}

func TestRehearsalFlow(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	// 1. Два пользователя: создатель группы и обычный участник.
	user1 := createTestUser(t, "Иван", "Иванов")
	user2 := createTestUser(t, "Петр", "Петров")

	// 2. Пользователь 1 создает группу — создатель должен стать администратором.
	res := doJSON(t, "POST", ts.URL+"/api/bands", user1.ID, map[string]interface{}{
		"name":        "Трио",
		"description": "Репетиционная группа",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Не удалось создать группу")
	var band map[string]interface{}
	json.NewDecoder(res.Body).Decode(&band)
	res.Body.Close()
	bandID := uint(band["id"].(float64))
	log.Println("Группа создана, ID:", bandID)

	members := band["members"].([]interface{})
	assert.Equal(t, 1, len(members), "У новой группы должен быть ровно один участник")
	creator := members[0].(map[string]interface{})
	assert.Equal(t, "admin", creator["role"], "Создатель группы должен быть администратором")

	// 3. Администратор добавляет второго участника по email.
	res = doJSON(t, "POST", ts.URL+fmt.Sprintf("/api/bands/%d/members", bandID), user1.ID, map[string]interface{}{
		"email":       user2.Email,
		"instruments": "бас-гитара",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Не удалось добавить участника")
	var newMember map[string]interface{}
	json.NewDecoder(res.Body).Decode(&newMember)
	res.Body.Close()
	assert.Equal(t, "member", newMember["role"], "Роль по умолчанию должна быть member")

	// 4. Повторное добавление того же пользователя должно вернуть ошибку, а не дубликат.
	res = doJSON(t, "POST", ts.URL+fmt.Sprintf("/api/bands/%d/members", bandID), user1.ID, map[string]interface{}{
		"email": user2.Email,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Повторное добавление участника должно быть отклонено")
	res.Body.Close()

	var memberCount int64
	storage.DB.Model(&models.BandMember{}).Where("band_id = ? AND user_id = ?", bandID, user2.ID).Count(&memberCount)
	assert.Equal(t, int64(1), memberCount, "Запись участника должна быть ровно одна")

	// 5. Подключаем WS-клиента участника до создания репетиции.
	wsURL := "ws" + ts.URL[4:] + fmt.Sprintf("/api/bands/%d/ws", bandID)
	dialer := websocket.Dialer{}
	wsHeaders := http.Header{}
	wsHeaders.Set("X-Test-UserID", fmt.Sprintf("%d", user2.ID))
	wsConn, _, err := dialer.Dial(wsURL, wsHeaders)
	assert.NoError(t, err, "Ошибка подключения к WS")
	defer wsConn.Close()

	// 6. Администратор создает репетицию — каждому участнику заводится ответ maybe.
	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	res = doJSON(t, "POST", ts.URL+fmt.Sprintf("/api/bands/%d/rehearsals", bandID), user1.ID, map[string]interface{}{
		"title":      "Пятничная репетиция",
		"start_time": start.Format(time.RFC3339),
		"end_time":   start.Add(2 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Не удалось создать репетицию")
	var rehearsal map[string]interface{}
	json.NewDecoder(res.Body).Decode(&rehearsal)
	res.Body.Close()
	rehearsalID := uint(rehearsal["id"].(float64))
	log.Println("Репетиция создана, ID:", rehearsalID)

	attendance := rehearsal["attendance"].([]interface{})
	assert.Equal(t, 2, len(attendance), "Ответов должно быть по числу участников на момент создания")
	for _, a := range attendance {
		entry := a.(map[string]interface{})
		assert.Equal(t, "maybe", entry["status"], "Начальный статус каждого ответа — maybe")
	}

	// 7. WS-клиент должен получить событие rehearsal.created.
	wsConn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, wsMessage, err := wsConn.ReadMessage()
	assert.NoError(t, err, "Ошибка чтения WS сообщения")
	var wsMsg map[string]interface{}
	err = json.Unmarshal(wsMessage, &wsMsg)
	assert.NoError(t, err, "Ошибка разбора WS сообщения")
	assert.Equal(t, "rehearsal.created", wsMsg["event_type"], "Неверный тип WS события")

	// 8. Участник (не администратор) отвечает attending.
	res = doJSON(t, "PUT", ts.URL+fmt.Sprintf("/api/rehearsals/%d/attendance", rehearsalID), user2.ID, map[string]interface{}{
		"status": "attending",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Не удалось задать статус")
	var roster map[string]interface{}
	json.NewDecoder(res.Body).Decode(&roster)
	res.Body.Close()
	assert.Equal(t, 2, len(roster["attendance"].([]interface{})), "Ответ должен содержать весь список")

	// 9. Повторное чтение репетиции: у участника attending, у администратора по-прежнему maybe.
	res = doJSON(t, "GET", ts.URL+fmt.Sprintf("/api/rehearsals/%d", rehearsalID), user1.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Не удалось получить репетицию")
	json.NewDecoder(res.Body).Decode(&rehearsal)
	res.Body.Close()

	statusByUser := map[uint]string{}
	for _, a := range rehearsal["attendance"].([]interface{}) {
		entry := a.(map[string]interface{})
		statusByUser[uint(entry["user_id"].(float64))] = entry["status"].(string)
	}
	assert.Equal(t, "maybe", statusByUser[user1.ID], "Статус администратора не должен был измениться")
	assert.Equal(t, "attending", statusByUser[user2.ID], "Статус участника должен быть attending")

	// 10. Не администратор пытается изменить репетицию — Forbidden, данные не меняются.
	res = doJSON(t, "PUT", ts.URL+fmt.Sprintf("/api/rehearsals/%d", rehearsalID), user2.ID, map[string]interface{}{
		"title": "Подмененное название",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "Не администратор не должен менять репетицию")
	res.Body.Close()

	var unchanged models.Rehearsal
	storage.DB.First(&unchanged, rehearsalID)
	assert.Equal(t, "Пятничная репетиция", unchanged.Title, "Название репетиции не должно измениться")

	// 11. Участник, добавленный после создания репетиции, ответа задним числом не получает.
	user3 := createTestUser(t, "Анна", "Смирнова")
	res = doJSON(t, "POST", ts.URL+fmt.Sprintf("/api/bands/%d/members", bandID), user1.ID, map[string]interface{}{
		"email": user3.Email,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Не удалось добавить третьего участника")
	res.Body.Close()

	var attendanceCount int64
	storage.DB.Model(&models.Attendance{}).Where("rehearsal_id = ?", rehearsalID).Count(&attendanceCount)
	assert.Equal(t, int64(2), attendanceCount, "Новый участник не должен получить ответ на старую репетицию")
}
