package main

import "gameconnect_backend/internal/app"

func main() {
	app.Run()
}
