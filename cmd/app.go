package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/quillnotes/quill/internal/config"
	"github.com/quillnotes/quill/internal/editor"
	"github.com/quillnotes/quill/internal/logger"
	"github.com/quillnotes/quill/internal/ops"
	"github.com/quillnotes/quill/internal/provider"
	"github.com/quillnotes/quill/internal/vault"
)

// App bundles the runtime collaborators every command needs: settings,
// logger, notifier, the vault, and one provider client per configured
// credential.
type App struct {
	Config   config.Config
	Log      *slog.Logger
	Notifier editor.Notifier
	Vault    *vault.Vault

	clients map[string]provider.Client
}

func buildApp() (*App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel)

	app := &App{
		Config:   cfg,
		Log:      log,
		Notifier: &editor.WriterNotifier{Out: os.Stderr},
		Vault:    &vault.Vault{Root: cfg.Vault},
		clients:  make(map[string]provider.Client),
	}

	if cfg.OpenAIAPIKey != "" {
		app.clients["openai"] = provider.NewOpenAIClient("openai", cfg.OpenAIAPIKey, provider.OpenAIBaseURL)
	}
	if cfg.VeniceAPIKey != "" {
		app.clients["venice"] = provider.NewOpenAIClient("venice", cfg.VeniceAPIKey, provider.VeniceBaseURL)
	}
	if cfg.AnthropicAPIKey != "" {
		app.clients["anthropic"] = provider.NewAnthropicClient(cfg.AnthropicAPIKey, "")
	}
	if cfg.OllamaHost != "" {
		// The Ollama client reads its host from the environment.
		if err := os.Setenv("OLLAMA_HOST", cfg.OllamaHost); err != nil {
			log.Warn("ollama configured but host could not be set", "err", err)
		} else if cli, err := provider.NewOllamaClient(); err != nil {
			log.Warn("ollama configured but client creation failed", "err", err)
		} else {
			app.clients["ollama"] = cli
		}
	}

	return app, nil
}

// clientFor routes a model id to the provider that serves it: claude
// models to Anthropic, tagged models (name:tag) to Ollama, everything
// else to OpenAI, or Venice when only Venice is configured.
func (a *App) clientFor(model string) (provider.Client, error) {
	switch {
	case strings.HasPrefix(model, "claude"):
		return a.client("anthropic", "anthropicApiKey")
	case strings.Contains(model, ":"):
		return a.client("ollama", "ollamaHost")
	default:
		if _, ok := a.clients["openai"]; !ok {
			if _, ok := a.clients["venice"]; ok {
				return a.client("venice", "veniceApiKey")
			}
		}
		return a.client("openai", "openAiApiKey")
	}
}

func (a *App) client(name, setting string) (provider.Client, error) {
	cli, ok := a.clients[name]
	if !ok {
		return nil, &config.ConfigError{Setting: setting}
	}
	return cli, nil
}

// summarizer binds the summarization operation to its configured client
// and model.
func (a *App) summarizer() (*ops.Summarizer, error) {
	model := a.Config.SummarizationModel
	if model == "" {
		return nil, &config.ConfigError{Setting: "summarizationModel"}
	}
	cli, err := a.clientFor(model)
	if err != nil {
		return nil, err
	}
	return ops.NewSummarizer(cli, model), nil
}

// creator binds the creative operations to their configured client and
// model, seeding the writing-style exemplar from the vault. A missing
// style file degrades to unstyled prompts with a warning.
func (a *App) creator() (*ops.Creator, error) {
	model := a.Config.CreativeModel
	if model == "" {
		return nil, &config.ConfigError{Setting: "creativeModel"}
	}
	cli, err := a.clientFor(model)
	if err != nil {
		return nil, err
	}

	style := ""
	if name := a.Config.WritingStyleFile; name != "" {
		var ok bool
		style, ok = a.Vault.LoadStyle(name)
		if !ok {
			a.Log.Warn("writing style file not found, continuing without it", "file", name)
			a.Notifier.Warn("writing style file " + name + " not found")
		}
	}
	return ops.NewCreator(cli, model, style), nil
}
