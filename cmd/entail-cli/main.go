package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/cognicore/entail/internal/modelapi"
	"github.com/cognicore/entail/pkg/entail"
	"github.com/cognicore/entail/pkg/entail/colormap"
	"github.com/cognicore/entail/pkg/entail/config"
	"github.com/cognicore/entail/pkg/entail/interpret"
	"github.com/cognicore/entail/pkg/entail/prediction"
	"github.com/cognicore/entail/pkg/entail/render"
	"github.com/cognicore/entail/pkg/entail/store/sqlite"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML config file (optional)")
		apiBase     = flag.String("api", "", "Model server base URL")
		apiKey      = flag.String("api-key", "", "Bearer token for the model server")
		premise     = flag.String("premise", "", "Premise sentence (one-shot mode)")
		hypothesis  = flag.String("hypothesis", "", "Hypothesis sentence (one-shot mode)")
		interpretIt = flag.Bool("interpret", true, "Request a saliency interpretation")
		interpreter = flag.String("interpreter", "", "Interpreter: simple_gradient, integrated_gradient, smooth_gradient")
		topKPrem    = flag.Int("topk-premise", 0, "Highlighted premise tokens")
		topKHyp     = flag.Int("topk-hypothesis", 0, "Highlighted hypothesis tokens")
		cmapName    = flag.String("colormap", "", "Palette name")
		cmapFormat  = flag.String("format", "", "Palette format: hex, rgbaString, rgb, float")
		nshades     = flag.Int("nshades", 0, "Palette size (clamped to 6..72)")
		dbPath      = flag.String("db", "", "SQLite database for explanation history (optional)")
		htmlPath    = flag.String("html", "", "Write an HTML report to this path")
		showID      = flag.String("show", "", "Render a stored explanation by ID")
		recent      = flag.Int("recent", 0, "List the N most recent stored explanations")
	)
	flag.Parse()

	loader := config.Loader{Path: *configPath}
	cfg, err := loader.Load()
	if err != nil {
		log.Fatal(err)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	overrides := flagOverrides{
		apiBase: *apiBase, apiKey: *apiKey, interpreter: *interpreter,
		topKPremise: *topKPrem, topKHypothesis: *topKHyp,
		colormap: *cmapName, format: *cmapFormat, nshades: *nshades, db: *dbPath,
	}
	if err := overrides.apply(cfg, set); err != nil {
		log.Fatal(err)
	}

	if needsModel(*recent, *showID) && cfg.API.BaseURL == "" {
		log.Fatal("model server URL required (--api or api.base_url)")
	}

	ctx := context.Background()

	engine, cleanup, err := buildEngine(ctx, cfg, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	sess := newSession(engine, cfg, *interpretIt)

	switch {
	case *recent > 0:
		if err := sess.listRecent(ctx, os.Stdout, *recent); err != nil {
			log.Fatal(err)
		}
		return
	case *showID != "":
		if err := sess.load(ctx, os.Stdout, *showID); err != nil {
			log.Fatal(err)
		}
	case *premise != "" || *hypothesis != "":
		if *premise == "" || *hypothesis == "" {
			log.Fatal("--premise and --hypothesis must be given together")
		}
		if err := sess.explain(ctx, os.Stdout, prediction.Request{Premise: *premise, Hypothesis: *hypothesis}); err != nil {
			log.Fatal(err)
		}
	default:
		interactive(ctx, sess)
		return
	}

	if *htmlPath != "" {
		if err := sess.writeHTML(*htmlPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *htmlPath)
	}
}

func interactive(ctx context.Context, sess *session) {
	fmt.Println("===========================================")
	fmt.Println("  Textual Entailment Explorer")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Enter `premise || hypothesis` (Ctrl+D to exit).")
	fmt.Println("Commands: :k premise N, :k hypothesis N, :interpret [kind], :html PATH, :recent [N], :load ID")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if err := sess.handle(ctx, os.Stdout, scanner.Text()); err != nil {
			fmt.Println("Error:", err)
		}
	}

	fmt.Println("\nGoodbye!")
}

type flagOverrides struct {
	apiBase, apiKey, interpreter string
	topKPremise, topKHypothesis  int
	colormap, format             string
	nshades                      int
	db                           string
}

// apply copies explicitly set flags over cfg and revalidates it.
func (o flagOverrides) apply(cfg *config.Config, set map[string]bool) error {
	if set["api"] {
		cfg.API.BaseURL = o.apiBase
	}
	if set["api-key"] {
		cfg.API.APIKey = o.apiKey
	}
	if set["interpreter"] {
		cfg.Interpreter = o.interpreter
	}
	if set["topk-premise"] {
		cfg.TopK.Premise = o.topKPremise
	}
	if set["topk-hypothesis"] {
		cfg.TopK.Hypothesis = o.topKHypothesis
	}
	if set["colormap"] {
		cfg.Colormap.Name = o.colormap
	}
	if set["format"] {
		cfg.Colormap.Format = colormap.Format(o.format)
	}
	if set["nshades"] {
		cfg.Colormap.Shades = o.nshades
	}
	if set["db"] {
		cfg.DB = o.db
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	return nil
}

// needsModel reports whether the chosen mode calls the model server.
// Listing and showing stored explanations only read the database.
func needsModel(recent int, showID string) bool {
	return recent <= 0 && showID == ""
}

func buildEngine(ctx context.Context, cfg *config.Config, httpClient *http.Client) (*entail.Entail, func(), error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}
	client := &modelapi.Client{
		BaseURL:    cfg.API.BaseURL,
		APIKey:     cfg.API.APIKey,
		HTTPClient: httpClient,
	}

	opts := entail.Options{
		Model:       client,
		Colormap:    cfg.Colormap,
		Interpreter: interpret.Kind(cfg.Interpreter),
	}
	if cfg.DB != "" {
		st, err := sqlite.OpenSQLite(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		opts.Store = st
	}

	engine := entail.New(opts)
	cleanup := func() {
		engine.Close()
	}
	return engine, cleanup, nil
}

// session is the interactive state: the explanation on screen and the
// K values chosen for it.
type session struct {
	engine      *entail.Entail
	current     *entail.Explanation
	premiseK    int
	hypothesisK int
	interpret   bool
	kind        interpret.Kind
}

func newSession(engine *entail.Entail, cfg *config.Config, interpretIt bool) *session {
	return &session{
		engine:      engine,
		premiseK:    cfg.TopK.Premise,
		hypothesisK: cfg.TopK.Hypothesis,
		interpret:   interpretIt,
		kind:        interpret.Kind(cfg.Interpreter),
	}
}

func (s *session) handle(ctx context.Context, out io.Writer, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if !strings.HasPrefix(line, ":") {
		premise, hypothesis, ok := strings.Cut(line, "||")
		if !ok {
			return fmt.Errorf("expected `premise || hypothesis`")
		}
		return s.explain(ctx, out, prediction.Request{
			Premise:    strings.TrimSpace(premise),
			Hypothesis: strings.TrimSpace(hypothesis),
		})
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":k":
		if len(fields) != 3 {
			return fmt.Errorf("usage: :k premise|hypothesis N")
		}
		k, err := strconv.Atoi(fields[2])
		if err != nil || k < 0 {
			return fmt.Errorf("K must be a non-negative integer, got %q", fields[2])
		}
		return s.setK(ctx, out, fields[1], k)
	case ":interpret":
		kind := s.kind
		if len(fields) > 1 {
			parsed, err := interpret.ParseKind(fields[1])
			if err != nil {
				return err
			}
			kind = parsed
		}
		return s.interpretCurrent(ctx, out, kind)
	case ":html":
		if len(fields) != 2 {
			return fmt.Errorf("usage: :html PATH")
		}
		if err := s.writeHTML(fields[1]); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", fields[1])
		return nil
	case ":recent":
		n := 5
		if len(fields) > 1 {
			parsed, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("bad count %q", fields[1])
			}
			n = parsed
		}
		return s.listRecent(ctx, out, n)
	case ":load":
		if len(fields) != 2 {
			return fmt.Errorf("usage: :load ID")
		}
		return s.load(ctx, out, fields[1])
	}
	return fmt.Errorf("unknown command %s", fields[0])
}

func (s *session) explain(ctx context.Context, out io.Writer, req prediction.Request) error {
	x, err := s.engine.Explain(ctx, entail.ExplainRequest{
		Request:        req,
		Interpret:      s.interpret,
		Kind:           s.kind,
		PremiseTopK:    s.premiseK,
		HypothesisTopK: s.hypothesisK,
	})
	if err != nil {
		return err
	}
	s.current = x
	fmt.Fprint(out, render.Terminal(x))
	return nil
}

func (s *session) setK(ctx context.Context, out io.Writer, which string, k int) error {
	switch which {
	case "premise":
		s.premiseK = k
	case "hypothesis":
		s.hypothesisK = k
	default:
		return fmt.Errorf("expected premise or hypothesis, got %q", which)
	}
	if s.current == nil {
		return nil
	}
	x, err := s.engine.Reselect(ctx, s.current, s.premiseK, s.hypothesisK)
	if err != nil {
		return err
	}
	s.current = x
	fmt.Fprint(out, render.Terminal(x))
	return nil
}

func (s *session) interpretCurrent(ctx context.Context, out io.Writer, kind interpret.Kind) error {
	if s.current == nil {
		return fmt.Errorf("nothing to interpret yet")
	}
	x, err := s.engine.Interpret(ctx, s.current, kind)
	if err != nil {
		return err
	}
	s.current = x
	fmt.Fprint(out, render.Terminal(x))
	return nil
}

func (s *session) load(ctx context.Context, out io.Writer, id string) error {
	x, err := s.engine.Load(ctx, id)
	if err != nil {
		return err
	}
	s.current = x
	s.premiseK, s.hypothesisK = x.PremiseTopK, x.HypothesisTopK
	fmt.Fprint(out, render.Terminal(x))
	return nil
}

func (s *session) listRecent(ctx context.Context, out io.Writer, n int) error {
	cards, err := s.engine.Recent(ctx, n)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintln(out, "No stored explanations.")
		return nil
	}
	for _, c := range cards {
		fmt.Fprintln(out, render.Card(c))
	}
	return nil
}

func (s *session) writeHTML(path string) error {
	if s.current == nil {
		return fmt.Errorf("nothing to render yet")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.HTML(f, s.current, s.engine.Colormap()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
