package main

import "recruitflow_backend/internal/app"

func main() {
	app.Run()
}
