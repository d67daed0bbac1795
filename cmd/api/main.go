package main

import (
	_ "waafipay_hpp/docs"
	"waafipay_hpp/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           WaafiPay HPP API
// @version         1.0
// @description     Adapter that forwards merchant purchase, refund and transaction-info requests to the WaafiPay Hosted Payment Page API.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
