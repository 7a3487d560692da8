package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/aniket856/sanskriti/cmd/fx/controllers_fx"
	"github.com/aniket856/sanskriti/cmd/fx/db_fx"
	"github.com/aniket856/sanskriti/cmd/fx/hosts_fx"
	"github.com/aniket856/sanskriti/cmd/fx/itinerary_fx"
	"github.com/aniket856/sanskriti/cmd/fx/places_fx"
	"github.com/aniket856/sanskriti/cmd/fx/planner_fx"
	"github.com/aniket856/sanskriti/internal/api/controllers"
	"github.com/aniket856/sanskriti/pkg/middleware"
	"github.com/aniket856/sanskriti/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		planner_fx.Module,
		places_fx.Module,
		itinerary_fx.Module,
		hosts_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	hostsController *controllers.HostsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, hostsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	hostsController *controllers.HostsController) {

	api := r.Group("/api")
	api.GET("/", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "Welcome to Sanskriti - AI Travel Planner for India")
	})

	itineraryGroup := api.Group("/itinerary")
	itineraryGroup.POST("/generate", itineraryController.GenerateItinerary)
	itineraryGroup.GET("/:id", itineraryController.GetItineraryByID)

	communityGroup := api.Group("/community")
	communityGroup.GET("/hosts", hostsController.ListCommunityHosts)
}
