package main

import (
	"github.com/corray333/microservice-demo/order/internal/app"
	"github.com/corray333/microservice-demo/order/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
