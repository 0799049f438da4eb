package main

import (
	"fmt"
	"log"
	"os"

	_ "bandroom/docs"
	"bandroom/internal/auth"
	"bandroom/internal/handlers"
	"bandroom/internal/models"
	"bandroom/internal/storage"
	"bandroom/internal/tasks"
	"bandroom/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Планировщик репетиций музыкальных групп
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectDatabase()

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

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handlers.Login)
		authGroup.POST("/register", handlers.Register)
		authGroup.POST("/refresh", handlers.RefreshToken)
	}

	api := r.Group("/api", auth.AuthMiddleware())
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

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
