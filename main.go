package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/fututaiwan/stock-portfolio-api/cmd/app"
)

// @contact.name   API Support
// @contact.email  support@fututaiwan.com
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
