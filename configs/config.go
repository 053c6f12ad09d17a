package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	MongoURI    string
	DBName      string
	JWTSecret   string
	RedisAddr   string
	GCSBucket   string
	GCSCredJSON string
	// FCM legacy HTTP endpoint settings.
	FCMURL       string
	FCMServerKey string
	// Pub/Sub push dispatch; direct FCM send when topic is empty.
	PubSubProject      string
	PubSubTopic        string
	PubSubSubscription string
	// OSRM-compatible routing service.
	RoutingURL string
}

func Load() *Config {
	// Values from .env override the environment, same as local dev setups.
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Port:               getEnv("PORT", "3000"),
		Env:                getEnv("ENV", "development"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:             getEnv("DB_NAME", "poverse"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		GCSBucket:          getEnv("GCS_BUCKET", ""),
		GCSCredJSON:        getEnv("GCS_CREDENTIALS_JSON", ""),
		FCMURL:             getEnv("FCM_URL", "https://fcm.googleapis.com/fcm/send"),
		FCMServerKey:       getEnv("FCM_SERVER_KEY", ""),
		PubSubProject:      getEnv("PUBSUB_PROJECT_ID", ""),
		PubSubTopic:        getEnv("PUBSUB_TOPIC", ""),
		PubSubSubscription: getEnv("PUBSUB_SUBSCRIPTION", "push-dispatch"),
		RoutingURL:         getEnv("ROUTING_URL", "https://router.project-osrm.org"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
