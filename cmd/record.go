package main

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/store"
)

// loadRecord reads the current-exhibition record from a YAML or JSON
// file of field→value pairs keyed by the canonical field names.
func loadRecord(path string) (model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Record{}, eris.Wrapf(err, "record file %s", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return model.Record{}, eris.Wrapf(err, "parse record file %s", path)
	}
	return model.FromMap(raw), nil
}

// loadCorpus opens the reference spreadsheet, preferring the --corpus
// flag over the configured path.
func loadCorpus(flagPath string) (*corpus.Table, error) {
	path := flagPath
	if path == "" {
		path = cfg.Corpus.Path
	}
	return corpus.Load(path)
}

// initStore opens the configured run-history backend.
func initStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, cfg.Store)
}
