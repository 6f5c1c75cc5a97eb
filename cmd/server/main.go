package main

import (
	"log"

	"github.com/joho/godotenv"

	"testschool/internal/app"
)

// @title           Test School API
// @version         1.0
// @description     Платформа оценки цифровых компетенций: регистрация, три шага теста, сертификация A1-C2.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] .env not loaded: %v", err)
	}
	app.Run()
}
