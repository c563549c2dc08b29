package main

import (
	"encoding/json"
	"io"

	"go.uber.org/zap"

	appanalysis "github.com/bryanwahyu/seedcheck/internal/application/analysis"
	appdeck "github.com/bryanwahyu/seedcheck/internal/application/deck"
	"github.com/bryanwahyu/seedcheck/internal/config"
	"github.com/bryanwahyu/seedcheck/internal/domain/questionnaire"
	infraai "github.com/bryanwahyu/seedcheck/internal/infra/ai"
	infradeck "github.com/bryanwahyu/seedcheck/internal/infra/deck"
	"github.com/bryanwahyu/seedcheck/internal/middleware"
)

// services bundles what every command needs, wired from config.
type services struct {
	catalog  *questionnaire.Catalog
	analysis *appanalysis.Service
	deck     *appdeck.Service
	pdf      *infradeck.PdfToText
}

func buildServices(cfg *config.Config) (*services, error) {
	catalog := questionnaire.Default()

	client, err := infraai.NewClient(cfg.Model, cfg.APIKey())
	if err != nil {
		return nil, err
	}
	if client == nil {
		zap.L().Warn("no model api key configured, analyses return the demo report",
			zap.String("provider", cfg.Model.Provider))
	} else {
		zap.L().Info("model configured",
			zap.String("provider", client.Provider()),
			zap.String("model", client.Model()))
	}

	analysis := appanalysis.NewService(client, catalog,
		appanalysis.Config{
			DemoDelay:     cfg.Analysis.DemoDelay,
			ParseMissMode: appanalysis.ParseMissMode(cfg.Analysis.ParseMissMode),
			StrictTotals:  cfg.Analysis.StrictTotals,
		},
		appanalysis.WithObserver(func(o appanalysis.Outcome) {
			middleware.RecordAnalysis(string(o))
		}),
	)

	pdf := infradeck.NewPdfToText(cfg.Deck.PdfToTextPath)
	deck := &appdeck.Service{
		PDF:      pdf,
		PPTX:     infradeck.NewPPTX(),
		MaxBytes: cfg.Deck.MaxBytes,
	}

	return &services{catalog: catalog, analysis: analysis, deck: deck, pdf: pdf}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
