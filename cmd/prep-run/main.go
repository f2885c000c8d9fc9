package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/cognicore/newsprep/internal/dataset"
	"github.com/cognicore/newsprep/pkg/newsprep"
	"github.com/cognicore/newsprep/pkg/newsprep/config"
	"github.com/cognicore/newsprep/pkg/newsprep/corpus"
	"github.com/cognicore/newsprep/pkg/newsprep/embed"
	"github.com/cognicore/newsprep/pkg/newsprep/export"
	"github.com/cognicore/newsprep/pkg/newsprep/store/sqlite"
)

func main() {
	configPath := flag.String("config", "", "Pipeline config YAML (required)")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}

	ctx := context.Background()

	loader := config.Loader{ConfigPath: *configPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	cfg := components.Config

	fakeRows, err := loadRows(cfg.Datasets.Fake)
	if err != nil {
		log.Fatal("Failed to load fake dataset:", err)
	}
	realRows, err := loadRows(cfg.Datasets.Real)
	if err != nil {
		log.Fatal("Failed to load real dataset:", err)
	}
	log.Printf("Loaded %d fake and %d real rows", len(fakeRows), len(realRows))

	pipeline := newsprep.New(newsprep.Options{
		Normalizer:       components.Normalizer,
		Filter:           components.Filter,
		TrainRange:       components.TrainRange,
		EvalRange:        components.EvalRange,
		MinDocProportion: cfg.MinDocProportion,
		Weighting:        components.Weighting,
		ShuffleSeed:      cfg.ShuffleSeed,
	})

	result := pipeline.Prepare(toRows(fakeRows), toRows(realRows))
	log.Printf("Run %s: %d documents after dedup, %d train / %d eval, %d vocabulary terms",
		result.RunID, result.Corpus.Len(), result.Train.Len(), result.Eval.Len(),
		result.Vocab.Size())

	if cfg.StorePath != "" {
		st, err := sqlite.Open(ctx, cfg.StorePath)
		if err != nil {
			log.Fatal("Failed to open store:", err)
		}
		defer st.Close()

		rawCfg, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatal("Failed to re-read config:", err)
		}
		if err := pipeline.Persist(ctx, st, result, string(rawCfg)); err != nil {
			log.Fatal("Failed to persist artifacts:", err)
		}
		log.Printf("Persisted artifacts to %s", cfg.StorePath)
	}

	if cfg.ExportDir != "" {
		if err := writeExports(cfg, result); err != nil {
			log.Fatal("Failed to write exports:", err)
		}
		log.Printf("Wrote exports to %s", cfg.ExportDir)
	}
}

// loadRows picks the reader by extension so CSV exports and downloaded
// JSONL feeds both work as dataset inputs.
func loadRows(path string) ([]dataset.Row, error) {
	if filepath.Ext(path) == ".jsonl" {
		return dataset.LoadJSONL(path)
	}
	return dataset.LoadCSV(path)
}

func toRows(rows []dataset.Row) []newsprep.Row {
	out := make([]newsprep.Row, len(rows))
	for i, r := range rows {
		out[i] = newsprep.Row{
			Title:       r.Title,
			Text:        r.Text,
			Subject:     r.Subject,
			PublishedAt: r.PublishedAt,
		}
	}
	return out
}

func writeExports(cfg *config.Pipeline, result *newsprep.Result) error {
	if err := os.MkdirAll(cfg.ExportDir, 0755); err != nil {
		return err
	}
	out := func(name string) string { return filepath.Join(cfg.ExportDir, name) }

	if err := export.CorpusCSV(out("train.csv"), result.Train, "train"); err != nil {
		return err
	}
	if err := export.CorpusCSV(out("eval.csv"), result.Eval, "eval"); err != nil {
		return err
	}
	if err := export.VocabularyJSON(out("vocabulary.json"), result.Vocab); err != nil {
		return err
	}
	if err := export.MatrixJSONL(out("train_vectors.jsonl"), result.TrainMatrix); err != nil {
		return err
	}
	if err := export.MatrixJSONL(out("eval_vectors.jsonl"), result.EvalMatrix); err != nil {
		return err
	}

	if cfg.EmbeddingsPath == "" {
		return nil
	}
	table, err := embed.LoadText(cfg.EmbeddingsPath)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d embeddings (%d dims)", table.Size(), table.Dim())

	if err := export.DenseVectorsJSONL(out("train_embedded.jsonl"), aggregateAll(result.Train, table)); err != nil {
		return err
	}
	return export.DenseVectorsJSONL(out("eval_embedded.jsonl"), aggregateAll(result.Eval, table))
}

func aggregateAll(c corpus.Corpus, table *embed.Table) [][]float64 {
	vectors := make([][]float64, c.Len())
	for i, d := range c.Docs {
		vectors[i] = embed.Aggregate(d.Tokens, table)
	}
	return vectors
}
