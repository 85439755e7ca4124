package main

import "tradelab_backend/internal/app"

func main() {
	app.Run()
}
