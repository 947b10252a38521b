package main

import (
	"log"

	"bcpartners_backend/internal/app"
)

// @title BC Partners Directory API
// @version 1.0
// @description Backend for the Business Central partner directory: public listings with reviews, and a moderation surface for operators.

// @host localhost:4000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}
