package infra

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerName           string
	ServerPort           string
	Environment          string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBDatabase           string
	DBSSLMode            string
	DBDriver             string
	SignatureToken       string
	AwsAccessKeyID       string
	AwsSecretAccessKey   string
	AwsRegion            string
	AwsBucketName        string
	GoogleMapsKey        string
	GoogleClientId       string
	RedisUrl             string
	WhatsappApiUrl       string
	WhatsappApiToken     string
	AppBaseUrl           string
	LimiarDuplicata      float64
	LimiarConfiancaMedia float64
	LimiarConfiancaAlta  float64
	MaxDistanciaCluster  float64
	MaxTempoRota         float64
	MaxParadasPorCluster int
	MaxReenvios          int
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		if err := godotenv.Load(".env"); err != nil {
			panic("Error loading env file")
		}
	}

	return Config{
		ServerName:           os.Getenv("SERVER_NAME"),
		ServerPort:           os.Getenv("SERVER_PORT"),
		Environment:          os.Getenv("ENVIRONMENT"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBDatabase:           os.Getenv("DB_DATABASE"),
		DBSSLMode:            os.Getenv("DB_SSL_MODE"),
		DBDriver:             os.Getenv("DB_DRIVER"),
		SignatureToken:       os.Getenv("SIGNATURE_STRING"),
		AwsAccessKeyID:       os.Getenv("AWS_ACCESS_KEY"),
		AwsSecretAccessKey:   os.Getenv("AWS_SECRET_KEY"),
		AwsRegion:            os.Getenv("AWS_REGION"),
		AwsBucketName:        os.Getenv("AWS_BUCKET_NAME"),
		GoogleMapsKey:        os.Getenv("GOOGLE_MAPS_KEY"),
		GoogleClientId:       os.Getenv("GOOGLE_CLIENT_ID"),
		RedisUrl:             os.Getenv("REDIS_URL"),
		WhatsappApiUrl:       os.Getenv("WHATSAPP_API_URL"),
		WhatsappApiToken:     os.Getenv("WHATSAPP_API_TOKEN"),
		AppBaseUrl:           os.Getenv("APP_BASE_URL"),
		LimiarDuplicata:      envFloat("LIMIAR_DUPLICATA", 0.85),
		LimiarConfiancaMedia: envFloat("LIMIAR_CONFIANCA_MEDIA", 0.90),
		LimiarConfiancaAlta:  envFloat("LIMIAR_CONFIANCA_ALTA", 0.95),
		MaxDistanciaCluster:  envFloat("MAX_DISTANCIA_CLUSTER_KM", 0.5),
		MaxTempoRota:         envFloat("MAX_TEMPO_ROTA_MIN", 120),
		MaxParadasPorCluster: envInt("MAX_PARADAS_POR_CLUSTER", 8),
		MaxReenvios:          envInt("MAX_REENVIOS_COMPARTILHAMENTO", 3),
	}
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
