package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/lost-woods/deck/src/rng"
	"github.com/lost-woods/deck/src/server"
)

func main() {
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	r, h, err := rng.NewEntropyFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "777"
	}

	server.New(port, r, h, log).RunOrDie()
}
