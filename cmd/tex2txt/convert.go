package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tex2txt "github.com/alnah/go-tex2txt"
	"github.com/alnah/go-tex2txt/internal/config"
	"github.com/alnah/go-tex2txt/internal/fileutil"
	"github.com/alnah/go-tex2txt/internal/hints"
	"github.com/alnah/go-tex2txt/internal/logger"
)

// ErrUsage marks bad command-line arguments.
var ErrUsage = errors.New("invalid usage")

// runConvert parses args, resolves configuration and runs one conversion.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return fmt.Errorf("%w: expected <tex_path> <out_path>, got %d argument(s)", ErrUsage, len(positional))
	}
	in := tex2txt.Input{TexPath: positional[0], OutPath: positional[1]}

	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Debug:  flags.common.verbose,
		Quiet:  flags.common.quiet,
		JSON:   cfg.Log.Format == config.LogFormatJSON,
		Output: env.Stderr,
	})
	warnUnknownEnvVars(env.Environ(), log)

	exprs, err := resolveExpressions(cfg, env.SearchDirs, log)
	if err != nil {
		return err
	}

	conv, err := tex2txt.NewConverter(buildOptions(cfg, exprs, log)...)
	if err != nil {
		return err
	}
	log.Debug("converter ready",
		"expressions", len(conv.Expressions()),
		"placeholder", cfg.References.Placeholder,
		"keep_input", cfg.Macros.KeepInput)

	result, err := conv.Convert(ctx, in)
	if err != nil {
		return convertError(err, in)
	}

	log.Debug("read stats",
		"read", result.Stats.Read,
		"comments", result.Stats.Comments,
		"block_lines", result.Stats.Blocks)
	log.Info("converted", "input", in.TexPath, "output", in.OutPath, "lines", len(result.Lines))
	return nil
}

// loadConfig loads the config named by the flag, else by TEX2TXT_CONFIG,
// else returns the defaults.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, withHint(fmt.Errorf("loading config: %w", err), hints.ForConfigNotFound(configCandidates(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// configCandidates lists the user-level paths a config name resolves to.
func configCandidates(name string) []string {
	if fileutil.IsFilePath(name) {
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, config.AppDirName, name+".yaml")}
}

// mergeFlags applies explicitly set CLI flags over cfg (CLI wins).
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.expressions.file != "" {
		cfg.Expressions.File = flags.expressions.file
	}
	if flags.expressions.additional {
		cfg.Expressions.Policy = config.PolicySupplement
	}
	if flags.expressions.defaults != "" {
		cfg.Expressions.Defaults = flags.expressions.defaults
	}
	if flags.macros.placeholder != "" {
		cfg.References.Placeholder = flags.macros.placeholder
	}
	if flags.macros.keepInput {
		cfg.Macros.KeepInput = true
	}
	if flags.common.logJSON {
		cfg.Log.Format = config.LogFormatJSON
	}
}

// resolveExpressions builds the active list. The defaults are only loaded
// when the policy consumes them: without a custom list, or when supplementing
// it. Falling back to the built-in list is logged as a warning.
func resolveExpressions(cfg *config.Config, searchDirs []string, log *slog.Logger) ([]string, error) {
	policy, err := tex2txt.ParsePolicy(cfg.Expressions.Policy)
	if err != nil {
		return nil, err
	}

	var defaults []string
	if cfg.Expressions.File == "" || policy == tex2txt.PolicySupplement {
		defaults, err = loadDefaults(cfg.Expressions.Defaults, searchDirs, log)
		if err != nil {
			return nil, err
		}
	}

	exprs, err := tex2txt.ResolveExpressions(cfg.Expressions.File, policy, defaults)
	if err != nil {
		if errors.Is(err, tex2txt.ErrNotFound) {
			return nil, withHint(err, hints.ForExpressionsNotFound())
		}
		return nil, err
	}
	log.Debug("resolved expressions",
		"custom", cfg.Expressions.File,
		"policy", policy.String(),
		"count", len(exprs))
	return exprs, nil
}

// loadDefaults loads the defaults list from explicitPath, a side file in
// searchDirs, or the built-in copy.
func loadDefaults(explicitPath string, searchDirs []string, log *slog.Logger) ([]string, error) {
	defaults, source, err := tex2txt.DefaultExpressions(explicitPath, searchDirs...)
	if err != nil {
		if errors.Is(err, tex2txt.ErrNotFound) {
			return nil, withHint(err, hints.ForDefaultsNotFound())
		}
		return nil, err
	}
	if source == tex2txt.BuiltinSource {
		log.Warn("no defaults.txt found, using built-in expression list", "searched", searchDirs)
	} else {
		log.Debug("loaded default expressions", "source", source, "count", len(defaults))
	}
	return defaults, nil
}

// buildOptions translates cfg into converter options.
func buildOptions(cfg *config.Config, exprs []string, log *slog.Logger) []tex2txt.Option {
	opts := []tex2txt.Option{
		tex2txt.WithExpressions(exprs),
		tex2txt.WithLogger(log),
	}
	if cfg.References.Placeholder != "" {
		opts = append(opts, tex2txt.WithPlaceholder(cfg.References.Placeholder))
	}
	if cfg.Macros.KeepInput {
		opts = append(opts, tex2txt.WithKeepInput())
	}
	return opts
}

// convertError attaches a hint to the failures a user can fix.
func convertError(err error, in tex2txt.Input) error {
	switch {
	case errors.Is(err, tex2txt.ErrNotFound):
		return withHint(err, hints.ForInputNotFound(in.TexPath))
	case errors.Is(err, tex2txt.ErrWriteOutput):
		return withHint(err, hints.ForOutputDirectory())
	default:
		return err
	}
}

// withHint appends hint to err's message, keeping err matchable with errors.Is.
func withHint(err error, hint string) error {
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
