package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cognicore/entail/internal/modelapi"
	"github.com/cognicore/entail/internal/pairs"
	"github.com/cognicore/entail/pkg/entail"
	"github.com/cognicore/entail/pkg/entail/config"
	"github.com/cognicore/entail/pkg/entail/interpret"
	"github.com/cognicore/entail/pkg/entail/prediction"
	"github.com/cognicore/entail/pkg/entail/render"
	"github.com/cognicore/entail/pkg/entail/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		apiBase    = flag.String("api", "", "Model server base URL (overrides config)")
		dbPath     = flag.String("db", "", "Database path (required unless set in config)")
		dataPath   = flag.String("data", "", "Input JSONL file of premise/hypothesis pairs (required)")
		htmlDir    = flag.String("html-dir", "", "Write one HTML report per pair into this directory")
		noInterp   = flag.Bool("no-interpret", false, "Skip the saliency interpretation")
	)
	flag.Parse()

	if *dataPath == "" {
		log.Fatal("--data required")
	}

	loader := config.Loader{Path: *configPath}
	cfg, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if *apiBase != "" {
		cfg.API.BaseURL = *apiBase
	}
	if *dbPath != "" {
		cfg.DB = *dbPath
	}
	if cfg.DB == "" {
		log.Fatal("--db required")
	}
	if cfg.API.BaseURL == "" {
		log.Fatal("--api required")
	}

	ctx := context.Background()

	store, err := sqlite.OpenSQLite(ctx, cfg.DB)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	e := entail.New(entail.Options{
		Model: &modelapi.Client{
			BaseURL:    cfg.API.BaseURL,
			APIKey:     cfg.API.APIKey,
			HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		},
		Store:       store,
		Colormap:    cfg.Colormap,
		Interpreter: interpret.Kind(cfg.Interpreter),
	})
	defer e.Close()

	log.Println("Entailment batch started")

	reqs, err := pairs.LoadFromJSONL(*dataPath)
	if err != nil {
		log.Fatal("Failed to load pairs:", err)
	}
	log.Printf("Loaded %d pairs from %s", len(reqs), *dataPath)

	b := batch{
		engine:    e,
		interpret: !*noInterp,
		topK:      cfg.TopK,
		htmlDir:   *htmlDir,
	}
	done, failed := b.run(ctx, reqs)

	log.Printf("Batch complete: %d explained, %d failed", done, failed)
}

type batch struct {
	engine    *entail.Entail
	interpret bool
	topK      config.TopK
	htmlDir   string
}

// run explains every pair in order. A failing pair is logged and skipped.
func (b batch) run(ctx context.Context, reqs []prediction.Request) (done, failed int) {
	if b.htmlDir != "" {
		if err := os.MkdirAll(b.htmlDir, 0o755); err != nil {
			log.Printf("Cannot create %s, skipping HTML reports: %v", b.htmlDir, err)
			b.htmlDir = ""
		}
	}

	for i, req := range reqs {
		x, err := b.engine.Explain(ctx, entail.ExplainRequest{
			Request:        req,
			Interpret:      b.interpret,
			PremiseTopK:    b.topK.Premise,
			HypothesisTopK: b.topK.Hypothesis,
		})
		if err != nil {
			log.Printf("Failed to explain pair %d (%q): %v", i, req.Premise, err)
			failed++
			continue
		}
		done++

		if b.htmlDir != "" {
			if err := b.writeReport(x); err != nil {
				log.Printf("Failed to write report for %s: %v", x.ID, err)
			}
		}

		log.Printf("%s  %s", x.ID, x.Judgment.Summary())
		if (i+1)%10 == 0 {
			log.Printf("Explained %d/%d pairs", i+1, len(reqs))
		}
	}
	return done, failed
}

func (b batch) writeReport(x *entail.Explanation) error {
	path := filepath.Join(b.htmlDir, x.ID+".html")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.HTML(f, x, b.engine.Colormap()); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
