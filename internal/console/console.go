// Package console is the operator loop: ask for an analysis, show it,
// run it, and offer another.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/dcntforecast/internal/collect"
	"github.com/ppiankov/dcntforecast/internal/layout"
	"github.com/ppiankov/dcntforecast/internal/model"
	"github.com/ppiankov/dcntforecast/internal/pipeline"
	"github.com/ppiankov/dcntforecast/internal/prompt"
)

const (
	TitleRunNow       = "Run this analysis now?"
	TitleBackToMenu   = "Back to the menu?"
	TitleRunAnother   = "Run another analysis?"
	TitleAfterFailure = "The analysis failed. Start another one?"
)

// Pipeline runs one configured analysis into its layout
type Pipeline interface {
	Run(ctx context.Context, a *model.Analysis, l *layout.Layout) (*pipeline.Outcome, error)
}

// Console drives repeated analyses against one configuration
type Console struct {
	cfg       *model.Config
	prompter  prompt.Prompter
	collector *collect.Collector
	pipeline  Pipeline
	policy    layout.Policy
	out       io.Writer
	styles    styles
	logger    *zap.Logger
	now       func() time.Time
}

// New creates a console writing operator output to out
func New(cfg *model.Config, p prompt.Prompter, pl Pipeline, out io.Writer, logger *zap.Logger) (*Console, error) {
	policy, err := layout.ParsePolicy(cfg.Output.OnExhausted)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		cfg:       cfg,
		prompter:  p,
		collector: collect.NewCollector(p, cfg.Defaults),
		pipeline:  pl,
		policy:    policy,
		out:       out,
		styles:    newStyles(out),
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Run loops until the operator stops. Without ContinueOnFailure the first
// failure ends the loop and is returned. With it, the failure is shown and
// the operator decides; declining returns the last failure.
// prompt.ErrAborted always ends the loop.
func (c *Console) Run(ctx context.Context) error {
	c.printIntro()

	var lastErr error
	for {
		again, err := c.iteration(ctx)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) || !c.cfg.Pipeline.ContinueOnFailure {
				return err
			}
			lastErr = err
			c.printFailure(err)

			more, perr := c.prompter.Confirm(TitleAfterFailure, true)
			if perr != nil {
				return perr
			}
			if !more {
				return lastErr
			}
			continue
		}
		if !again {
			return nil
		}
	}
}

// iteration runs one collect/confirm/execute cycle and reports whether the
// operator wants another
func (c *Console) iteration(ctx context.Context) (bool, error) {
	a, err := c.collector.Collect()
	if err != nil {
		return false, err
	}

	l, err := layout.Derive(a, c.cfg.Output.Dir, c.now(), c.policy)
	if err != nil {
		return false, err
	}

	c.printSummary(a, l)

	run, err := c.prompter.Confirm(TitleRunNow, true)
	if err != nil {
		return false, err
	}
	if !run {
		c.logger.Debug("Analysis skipped by operator", zap.String("dir", l.Dir))
		return c.prompter.Confirm(TitleBackToMenu, true)
	}

	out, err := c.pipeline.Run(ctx, a, l)
	if err != nil {
		return false, err
	}
	c.printOutcome(out)

	return c.prompter.Confirm(TitleRunAnother, true)
}

func (c *Console) printIntro() {
	fmt.Fprintf(c.out, "\n%s\n", c.styles.heading.Render("DATASUS → extraction → forecast"))
	fmt.Fprintf(c.out, "- Choose region, analysis type, disease class, period and granularity (annual/monthly).\n")
	fmt.Fprintf(c.out, "- Output is saved under: %s\n\n", c.cfg.Output.Dir)
}

func (c *Console) printSummary(a *model.Analysis, l *layout.Layout) {
	writeSummary(c.out, c.styles, a, l)
}

func (c *Console) printOutcome(out *pipeline.Outcome) {
	switch {
	case out.Fallback:
		fmt.Fprintf(c.out, "\n%s forecast ran on ANNUAL data (fallback)\n", c.styles.ok.Render("✓"))
		fmt.Fprintf(c.out, "  Annual CSV: %s\n", out.Artifacts.Raw)
		fmt.Fprintf(c.out, "  JSON:       %s\n", out.Artifacts.Result)
	default:
		fmt.Fprintf(c.out, "\n%s done\n", c.styles.ok.Render("✓"))
		fmt.Fprintf(c.out, "  CSV:  %s\n", out.Artifacts.Raw)
		fmt.Fprintf(c.out, "  JSON: %s\n", out.Artifacts.Result)
	}
	if out.Manifest != "" {
		fmt.Fprintf(c.out, "  Run:  %s\n", out.Manifest)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) printFailure(err error) {
	fmt.Fprintf(c.out, "\n%s %v\n\n", c.styles.fail.Render("✗"), err)
	c.logger.Warn("Analysis failed, continuing", zap.Error(err))
}
