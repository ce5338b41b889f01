package main

import (
	"context"
	"log"
	"os"

	"flexfit-backend/config"
	"flexfit-backend/controllers"
	"flexfit-backend/routes"
	"flexfit-backend/services"
	"flexfit-backend/utils"
)

func main() {
	config.Load()

	db, err := config.Connect()
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx := context.Background()

	// Optional collaborators: the site keeps working without them, degraded.
	var gen services.TextGenerator
	if client, err := services.NewGeminiClient(ctx, os.Getenv("GEMINI_API_KEY")); err != nil {
		log.Printf("gemini disabled, lookups will use the local estimator: %v", err)
	} else {
		gen = client
		defer client.Close()
	}

	var mailer services.ResetMailer
	if m, err := utils.NewMailer(ctx); err != nil {
		log.Printf("mailer disabled: %v", err)
	} else {
		mailer = m
	}

	var uploader services.AvatarUploader
	if u, err := utils.NewUploader(ctx); err != nil {
		log.Printf("avatar uploads disabled: %v", err)
	} else {
		uploader = u
	}

	hub := services.NewRealtimeHub()
	nutritionSvc := services.NewNutritionService(gen)
	foodSvc := services.NewFoodService(db, nutritionSvc)
	mealSvc := services.NewMealService(db, foodSvc, hub)
	progressSvc := services.NewProgressService(db)
	authSvc := services.NewAuthService(db, mailer)
	userSvc := services.NewUserService(db, uploader)
	planSvc := services.NewPlanService()
	feedbackSvc := services.NewFeedbackService(db)

	if err := foodSvc.SeedFoods(services.DefaultCatalog); err != nil {
		log.Printf("catalog seed failed: %v", err)
	}

	r := routes.SetupRouter(routes.Deps{
		Auth:     controllers.NewAuthController(authSvc),
		User:     controllers.NewUserController(userSvc),
		Food:     controllers.NewFoodController(foodSvc),
		Meal:     controllers.NewMealController(mealSvc),
		Progress: controllers.NewProgressController(progressSvc),
		Plan:     controllers.NewPlanController(planSvc),
		Feedback: controllers.NewFeedbackController(feedbackSvc),
		Realtime: controllers.NewRealtimeController(hub),
	})

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
