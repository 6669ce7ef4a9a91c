package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/awantoch/iconflow/model"
	"github.com/awantoch/iconflow/utils"
)

func main() {
	// Load .env as early as possible!
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		utils.Error("%v", err)
		os.Exit(model.ExitGeneric)
	}
}
