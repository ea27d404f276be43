package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"insurance-agent/internal/cli"
	"insurance-agent/internal/config"
	"insurance-agent/internal/integrations/openai"
	"insurance-agent/internal/knowledge"
	"insurance-agent/internal/logger"
	"insurance-agent/internal/server"
	"insurance-agent/internal/session"
	"insurance-agent/internal/usecase"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:           "insurance-agent",
		Short:         "Conversational support assistant for life insurance questions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "directory containing config.yaml")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			settings, log, engine, err := buildEngine(configPath)
			if err != nil {
				return err
			}
			srv := server.New(log, engine, settings.Server.Host, settings.Server.Port)
			return srv.Run()
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "chat",
		Short: "Run the interactive terminal client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, engine, err := buildEngine(configPath)
			if err != nil {
				return err
			}
			client, err := cli.New(engine, os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
			return client.Run(cmd.Context())
		},
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// buildEngine wires settings, logging, knowledge, sessions and the model
// client into a ready dispatch engine.
func buildEngine(configPath string) (*config.Settings, *logrus.Logger, *usecase.Engine, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.New(settings.Log.Level, settings.Log.File)

	store, err := knowledge.Load(settings.Knowledge.Path)
	if err != nil {
		log.WithError(err).Warn("knowledge source unavailable, using built-in default table")
	}

	llm, err := openai.NewClient(settings.OpenAI.APIKey, settings.OpenAI.Model, settings.OpenAI.Temperature)
	if err != nil {
		return nil, nil, nil, err
	}

	sessions := session.NewStore(settings.Session.MaxHistory)

	engine, err := usecase.NewEngine(llm, sessions, store, log, settings.SessionTimeout())
	if err != nil {
		return nil, nil, nil, err
	}

	log.WithFields(logrus.Fields{
		"model":           settings.OpenAI.Model,
		"session_timeout": settings.SessionTimeout(),
	}).Info("dispatch engine initialized")

	return settings, log, engine, nil
}
