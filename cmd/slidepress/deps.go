package main

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/gnemet/SlidePress/internal/ai"
	"github.com/gnemet/SlidePress/internal/convert"
	"github.com/gnemet/SlidePress/internal/database"
)

// converter wires the optional summarizer and conversion log into a
// Converter. The returned cleanup closes both.
func (a *app) converter(ctx context.Context, opts convert.Options) (*convert.Converter, func()) {
	summarizer, err := ai.New(ctx, a.cfg.AI)
	if err != nil {
		a.logger.Warn("summary disabled", zap.Error(err))
		summarizer = ai.Noop{}
	}

	db := a.openConversionLog(ctx)

	cleanup := func() {
		if err := summarizer.Close(); err != nil {
			a.logger.Debug("close summarizer", zap.Error(err))
		}
		if db != nil {
			db.Close()
		}
	}
	return convert.New(a.logger, opts, summarizer, db), cleanup
}

// openConversionLog connects to the configured database, or returns nil
// when none is configured or it cannot be reached.
func (a *app) openConversionLog(ctx context.Context) *sql.DB {
	if !a.cfg.Database.Enabled() {
		return nil
	}
	db, err := database.NewConnection(ctx, a.cfg.Database.GetConnectStr(), a.logger)
	if err != nil {
		a.logger.Warn("conversion log disabled", zap.Error(err))
		return nil
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		a.logger.Warn("conversion log disabled", zap.Error(err))
		db.Close()
		return nil
	}
	return db
}

// paths resolves the input and output of the html direction: positional
// arguments first, then configuration.
func (a *app) paths(args []string) (input, output string) {
	input, output = a.cfg.Convert.Input, a.cfg.Convert.Output
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}
	return input, output
}
