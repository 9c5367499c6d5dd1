package main

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
	"github.com/GravielPV/Leiny-Informaciones-sub000/routes"
)

func main() {
	config.InitLogger()

	// Cargar .env
	if err := godotenv.Load(); err != nil {
		config.Log.Info().Msg("No se encontró archivo .env")
	}

	config.InitDB()

	r := gin.Default()

	// CORS para el front
	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, config.DB)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Leiny Informaciones API")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Log.Info().Str("port", port).Msg("Servidor escuchando")
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatal().Err(err).Msg("El servidor se detuvo")
	}
}
