package main

import (
	"github.com/joho/godotenv"

	"github.com/iblamekonradzuse/fitness-tracker/cmd/ftrack"
)

func main() {
	_ = godotenv.Load()
	ftrack.Execute()
}
