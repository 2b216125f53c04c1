package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type (
	Config struct {
		Language   string   `json:"language"`
		APIBaseURL string   `json:"api_base_url"`
		PathFile   string   `json:"path_file"`
		AIConfig   AIConfig `json:"ai_config"`
	}

	AIConfig struct {
		// Providers es el orden en que se prueban los proveedores generativos.
		Providers   []string `json:"providers,omitempty"`
		OpenAIModel string   `json:"openai_model,omitempty"`
		GeminiModel string   `json:"gemini_model,omitempty"`
		MaxTokens   int      `json:"max_tokens,omitempty"`
	}
)

const (
	defaultLang       = "en"
	defaultAPIBaseURL = "https://api.github.com"

	defaultOpenAIModel = "gpt-4o-mini"
	defaultGeminiModel = "gemini-1.5-flash"
	defaultMaxTokens   = 800
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".fixbot")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	applyDefaults(&config)
	config.PathFile = configPath

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:   defaultLang,
		APIBaseURL: defaultAPIBaseURL,
		PathFile:   path,
		AIConfig: AIConfig{
			Providers:   []string{"openai", "gemini"},
			OpenAIModel: defaultOpenAIModel,
			GeminiModel: defaultGeminiModel,
			MaxTokens:   defaultMaxTokens,
		},
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = defaultAPIBaseURL
	}
	if len(config.AIConfig.Providers) == 0 {
		config.AIConfig.Providers = []string{"openai", "gemini"}
	}
	if config.AIConfig.OpenAIModel == "" {
		config.AIConfig.OpenAIModel = defaultOpenAIModel
	}
	if config.AIConfig.GeminiModel == "" {
		config.AIConfig.GeminiModel = defaultGeminiModel
	}
	if config.AIConfig.MaxTokens <= 0 {
		config.AIConfig.MaxTokens = defaultMaxTokens
	}
}

func SaveConfig(config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}
