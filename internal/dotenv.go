package internal

import "github.com/joho/godotenv"

// loadDotenv loads a .env file if one exists. Missing files are fine; in
// production the environment is expected to be set by the deployment.
func loadDotenv() {
	_ = godotenv.Load()
}
