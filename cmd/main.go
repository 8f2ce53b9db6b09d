package main

import (
	"github.com/datagetws/orders-api/internal/app"
	"github.com/datagetws/orders-api/internal/config"
)

// @title Orders API
// @version 1.0
// @description Accepts orders, forwards them to the admin panel and streams the order list over SSE.
func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
