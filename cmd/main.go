package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Tomas-vilte/FixBot/internal/cli/command/comment"
	"github.com/Tomas-vilte/FixBot/internal/cli/command/fetchlogs"
	"github.com/Tomas-vilte/FixBot/internal/cli/command/genpatch"
	"github.com/Tomas-vilte/FixBot/internal/cli/registry"
	cfg "github.com/Tomas-vilte/FixBot/internal/config"
	"github.com/Tomas-vilte/FixBot/internal/i18n"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/FixBot/internal/infrastructure/ai/openai"
	airegistry "github.com/Tomas-vilte/FixBot/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/FixBot/internal/version"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	// .env es best-effort: en CI las variables ya vienen del entorno
	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		log.Fatalf("Error al cargar las traducciones: %v", err)
	}

	suggesterRegistry := airegistry.NewSuggesterRegistry()
	if err := suggesterRegistry.Register("openai", openai.NewSuggesterFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor OpenAI: %v", err)
	}
	if err := suggesterRegistry.Register("gemini", gemini.NewSuggesterFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Gemini: %v", err)
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("comment", comment.NewCommentCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'comment': %v", err)
	}

	if err := registerCommand.Register("fetch-logs", fetchlogs.NewFetchLogsCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'fetch-logs': %v", err)
	}

	if err := registerCommand.Register("generate-patch", genpatch.NewGeneratePatchCommandFactory(suggesterRegistry)); err != nil {
		log.Fatalf("Error al registrar el comando 'generate-patch': %v", err)
	}

	return &cli.Command{
		Name:        "fixbot",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Commands:    registerCommand.CreateCommands(),
	}, nil
}
