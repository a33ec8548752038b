package cmd

import (
	"fmt"
	"os"

	"github.com/fairpersona/skillcert/internal/app"
	"github.com/fairpersona/skillcert/internal/attempt"
	"github.com/fairpersona/skillcert/internal/cert"
	"github.com/fairpersona/skillcert/internal/config"
	"github.com/fairpersona/skillcert/internal/grading"
	"github.com/fairpersona/skillcert/internal/identity"
	"github.com/fairpersona/skillcert/internal/llm"
	"github.com/fairpersona/skillcert/internal/pin"
	"github.com/fairpersona/skillcert/internal/question"
	"github.com/fairpersona/skillcert/internal/store"
	"github.com/fairpersona/skillcert/internal/wallet"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	var aiGen question.AIGenerator
	var evaluator grading.Evaluator = grading.HeuristicEvaluator{}
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in question pools and heuristic grading.")
	} else {
		aiGen = question.NewLLMGenerator(provider, question.DefaultLLMConfig())
		evaluator = grading.NewFallback(grading.NewLLMEvaluator(provider), grading.HeuristicEvaluator{})
	}

	var pinner pin.Pinner
	if cfg.PinataJWT != "" {
		pinner = pin.NewClient(cfg.PinataJWT, pin.WithLogger(logger))
	}
	var minter wallet.Minter
	if cfg.MintRelayURL != "" {
		minter = wallet.NewRelayMinter(cfg.MintRelayURL, cfg.MintRelayKey, wallet.WithLogger(logger))
	}

	gen := question.NewGenerator(nil, aiGen)
	grader := grading.NewGrader(evaluator)
	issuer := cert.NewIssuer(eventRepo, pinner, minter, logger)
	ident := identity.NewLocalProvider(st.ProfileRepo())
	svc := attempt.NewService(gen, grader, eventRepo, st.SnapshotRepo())

	return app.Run(app.Deps{
		Attempts:  svc,
		Issuer:    issuer,
		Identity:  ident,
		EventRepo: eventRepo,
		SnapRepo:  st.SnapshotRepo(),
	})
}
