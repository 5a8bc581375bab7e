package configs

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// LoadEnv reads a .env file when one is present. Deployed environments set
// real environment variables instead, so a missing file is not fatal. Every
// accessor calls this, so values are available during package init too.
func LoadEnv() {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	})
}

func EnvMongoURI() string {
	LoadEnv()
	uri := os.Getenv("MONGOURI")
	if uri == "" {
		log.Fatal("MONGOURI is not set")
	}
	return uri
}

func EnvDBName() string {
	LoadEnv()
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "sensokart"
	}
	return name
}

func EnvJWTSecret() string {
	LoadEnv()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	return secret
}

func EnvPort() string {
	LoadEnv()
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return port
}

// EnvAdminEmail is the recipient for new-quote notifications.
func EnvAdminEmail() string {
	LoadEnv()
	return os.Getenv("ADMIN_EMAIL")
}

func EnvSMTPAddr() string {
	LoadEnv()
	return os.Getenv("SMTP_ADDR")
}

func EnvSMTPUser() string {
	LoadEnv()
	return os.Getenv("SMTP_USER")
}

func EnvSMTPPassword() string {
	LoadEnv()
	return os.Getenv("SMTP_PASSWORD")
}

func EnvSMTPFrom() string {
	LoadEnv()
	return os.Getenv("SMTP_FROM")
}

func EnvAssetStoreURL() string {
	LoadEnv()
	return os.Getenv("ASSET_STORE_URL")
}

func EnvAssetStoreKey() string {
	LoadEnv()
	return os.Getenv("ASSET_STORE_KEY")
}
