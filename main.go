package main

import "renovation-marketplace-api/app"

func main() {
	app.Run()
}
