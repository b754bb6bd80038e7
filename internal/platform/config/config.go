package config

import (
	"flag"
	"github.com/joho/godotenv"
	"os"
	"strconv"
)

var portCmd = flag.Int("port", 3000, "HTTP server port")

type Config struct {
	ServerPort      int
	ZmqApiPort      int
	ReportPubPort   int
	ConfigServerUrl string
	DeploymentMode  string
}

func LoadConfig() Config {
	godotenv.Load(".env")
	return Config{
		ServerPort:      *portCmd,
		ZmqApiPort:      intEnv("ZMQ_API_PORT", 4000),
		ReportPubPort:   intEnv("REPORT_PUB_PORT", 4001),
		ConfigServerUrl: os.Getenv("CONFIG_SERVER_URL"),
		DeploymentMode:  os.Getenv("DEPLOYMENT_MODE"),
	}
}

func intEnv(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
