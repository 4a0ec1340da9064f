package main

import (
	"AssistantGolang/internal/config"
	"AssistantGolang/pkg/audio"
	"AssistantGolang/pkg/device"
	"AssistantGolang/pkg/groq"
	"AssistantGolang/pkg/log"
	"AssistantGolang/pkg/openmeteo"
	"AssistantGolang/pkg/youtube"
	"github.com/joho/godotenv"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	actionQueue := device.New()
	groqClient := groq.New()
	youtubeClient := youtube.New()
	weatherClient := openmeteo.New()
	ttsService := audio.NewTTSService()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithActionQueue(actionQueue),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithClassifier(),
		config.WithTranslator(),
		config.WithGroqClient(groqClient),
		config.WithYoutubeClient(youtubeClient),
		config.WithWeatherClient(weatherClient),
		config.WithTTSService(ttsService),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
