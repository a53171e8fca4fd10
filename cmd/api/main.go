package main

import (
	_ "print3d_quote/docs"
	"print3d_quote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           3D Print Quote API
// @version         1.0
// @description     Quote requests for 3D printing, stored as commerce platform draft orders.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
