package tasks

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"bandroom/internal/models"
	"bandroom/internal/storage"
	"bandroom/internal/ws"

	"github.com/robfig/cron/v3"
)

var ctx = context.Background()

// SendRehearsalReminders ищет репетиции, до начала которых осталось меньше 24 часов,
// и рассылает участникам групп напоминание через WebSocket.
// Отметка в Redis гарантирует, что напоминание по репетиции уходит один раз.
func SendRehearsalReminders() {
	now := time.Now()
	startWindow := now
	endWindow := now.Add(24 * time.Hour)

	var rehearsals []models.Rehearsal
	if err := storage.DB.Where("start_time BETWEEN ? AND ?", startWindow, endWindow).Find(&rehearsals).Error; err != nil {
		log.Println("Ошибка при поиске репетиций для напоминаний:", err)
		return
	}

	if len(rehearsals) == 0 {
		return
	}

	for _, rehearsal := range rehearsals {
		key := fmt.Sprintf("rehearsal_reminder:%d", rehearsal.ID)
		// SetNX: false — напоминание уже отправлено другим экземпляром или ранее.
		sent, err := storage.RedisClient.SetNX(ctx, key, "1", 25*time.Hour).Result()
		if err != nil {
			log.Println("Ошибка Redis при отметке напоминания:", err)
			continue
		}
		if !sent {
			continue
		}

		ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
			EventType: "rehearsal.reminder",
			BandID:    strconv.Itoa(int(rehearsal.BandID)),
			Data: map[string]interface{}{
				"rehearsal_id": rehearsal.ID,
				"title":        rehearsal.Title,
				"start_time":   rehearsal.StartTime,
			},
		})
		log.Printf("Напоминание о репетиции '%s' отправлено.\n", rehearsal.Title)
	}
}

// CleanExpiredResetTokens очищает просроченные токены сброса пароля.
func CleanExpiredResetTokens() {
	now := time.Now()
	if err := storage.DB.Model(&models.User{}).
		Where("reset_token <> '' AND reset_token_expires < ?", now).
		Updates(map[string]interface{}{"reset_token": "", "reset_token_expires": nil}).Error; err != nil {
		log.Println("Ошибка при очистке токенов сброса:", err)
	} else {
		log.Println("Просроченные токены сброса очищены.")
	}
}

// InitScheduler инициализирует планировщик cron-задач.
func InitScheduler() *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Задача рассылки напоминаний каждые 5 минут.
	_, err := c.AddFunc("0 */5 * * * *", SendRehearsalReminders)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи SendRehearsalReminders:", err)
	}

	// Задача очистки токенов сброса каждый день в 03:00.
	_, err = c.AddFunc("0 0 3 * * *", CleanExpiredResetTokens)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи CleanExpiredResetTokens:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}
