package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/cognicore/newsprep/pkg/newsprep/analytics"
	"github.com/cognicore/newsprep/pkg/newsprep/corpus"
	"github.com/cognicore/newsprep/pkg/newsprep/store"
	"github.com/cognicore/newsprep/pkg/newsprep/store/sqlite"
)

type report struct {
	RunID        string                 `json:"run_id"`
	TotalDocs    int64                  `json:"total_docs"`
	LabelBalance map[int]int64          `json:"label_balance"`
	TopFakeTerms []analytics.TermStat   `json:"top_fake_terms"`
	TopRealTerms []analytics.TermStat   `json:"top_real_terms"`
	Monthly      []analytics.MonthCount `json:"monthly_volume"`
}

func main() {
	var (
		dbPath = flag.String("db", "", "Artifact store path (required)")
		runID  = flag.String("run", "", "Run ID (default: latest)")
		topK   = flag.Int("top", 25, "Top terms per label")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer st.Close()

	id := *runID
	if id == "" {
		runs, err := st.ListRuns(ctx)
		if err != nil {
			log.Fatal("Failed to list runs:", err)
		}
		if len(runs) == 0 {
			log.Fatal("No runs in store")
		}
		id = runs[len(runs)-1].ID
	}

	docs, err := st.GetDocs(ctx, id, "")
	if err != nil {
		log.Fatal("Failed to load documents:", err)
	}
	if len(docs) == 0 {
		log.Fatalf("No documents for run %s", id)
	}

	analyzer := analytics.NewAnalyzer()
	for _, d := range docs {
		analyzer.Process(toDocument(d))
	}

	out := report{
		RunID:        id,
		TotalDocs:    analyzer.TotalDocs(),
		LabelBalance: analyzer.LabelBalance(),
		TopFakeTerms: analyzer.TopTerms(corpus.LabelFake, *topK),
		TopRealTerms: analyzer.TopTerms(corpus.LabelReal, *topK),
		Monthly:      analyzer.MonthlyVolume(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal("Failed to encode report:", err)
	}
}

func toDocument(d store.Doc) corpus.Document {
	return corpus.Document{
		CleanText:   d.CleanText,
		Label:       d.Label,
		Subject:     d.Subject,
		PublishedAt: d.PublishedAt,
	}
}
