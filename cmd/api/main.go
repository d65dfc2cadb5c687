package main

import (
	_ "giramae/docs"
	"giramae/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           GiraMãe API
// @version         1.0
// @description     GiraMãe exchange service: items, reservations, waiting queues, goals, Girinhas wallet and purchases.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Supabase access token.

// @securityDefinitions.apikey ServiceKey
// @in header
// @name X-Service-Key
// @description Service role key for backend jobs.

func main() {
	routes.Run()
}
