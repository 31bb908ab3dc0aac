// SPDX-License-Identifier: MIT

// Command lvsum summarises a text file or a directory of files.
//
//	lvsum -method lexrank -file docs/ -length 100
//	lvsum manifoldrank -file doc.txt -query "wind power" -select mmr -para "0.85 0.7"
//
// Flag defaults may come from the environment (or a .env file):
// LVSUM_LANGUAGE, LVSUM_STOPWORDS, LVSUM_CONFIG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/lvsum/ingest"
	"github.com/katalvlaran/lvsum/summarizer"
	"github.com/katalvlaran/lvsum/textproc"
	"go.uber.org/zap"
)

// errUsage marks command-line mistakes.
var errUsage = errors.New("usage")

type cliFlags struct {
	method    string
	file      string
	query     string
	length    int
	language  string
	stopwords string
	stem      bool
	format    string
	selection string
	para      string
	output    string
	config    string
	verbose   bool
	set       map[string]bool
}

func main() {
	_ = godotenv.Load()
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lvsum:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("lvsum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.method, "method", "", "strategy: "+strings.Join(summarizer.Strategies(false), ", ")+", manifoldrank")
	fs.StringVar(&f.file, "file", "", "file or directory to summarise")
	fs.StringVar(&f.query, "query", "", "query biasing the summary")
	fs.IntVar(&f.length, "length", summarizer.DefaultBudget, "word budget")
	fs.StringVar(&f.language, "language", envOr("LVSUM_LANGUAGE", summarizer.DefaultLanguage), "text language")
	fs.StringVar(&f.stopwords, "stopwords", os.Getenv("LVSUM_STOPWORDS"), "stopword file, one word per line")
	fs.BoolVar(&f.stem, "stem", false, "stem words")
	fs.StringVar(&f.format, "format", string(ingest.DefaultFormat), "input format: plaintext, xml")
	fs.StringVar(&f.selection, "select", string(summarizer.MethodDefault), "manifoldrank selection: default, mmr")
	fs.StringVar(&f.para, "para", "", "strategy parameters, e.g. \"0.85 0.7\"")
	fs.StringVar(&f.output, "output", "", "write the summary to this file instead of stdout")
	fs.StringVar(&f.config, "config", os.Getenv("LVSUM_CONFIG"), "YAML configuration file")
	fs.BoolVar(&f.verbose, "verbose", false, "development logging")
	if err := fs.Parse(args); err != nil {
		return f, fmt.Errorf("%v: %w", err, errUsage)
	}

	// "lvsum lexrank -file x" is accepted as well as -method.
	rest := fs.Args()
	if f.method == "" && len(rest) > 0 {
		f.method, rest = rest[0], rest[1:]
		if err := fs.Parse(rest); err != nil {
			return f, fmt.Errorf("%v: %w", err, errUsage)
		}
		rest = fs.Args()
	}
	if len(rest) > 0 {
		return f, fmt.Errorf("unexpected arguments %q: %w", rest, errUsage)
	}
	if f.file == "" {
		return f, fmt.Errorf("-file is required: %w", errUsage)
	}

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	if os.Getenv("LVSUM_LANGUAGE") != "" {
		f.set["language"] = true
	}
	if f.stopwords != "" {
		f.set["stopwords"] = true
	}

	return f, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func parseParams(s string) ([]float64, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	out := make([]float64, 0, len(fields))
	for _, p := range fields {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("-para %q: %w", s, summarizer.ErrBadParam)
		}
		out = append(out, v)
	}

	return out, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// buildConfig layers the YAML file under the flags that were set.
func buildConfig(f cliFlags, log *zap.Logger) (summarizer.Config, error) {
	var opts []summarizer.Option
	if f.config != "" {
		fileOpts, err := summarizer.LoadFile(f.config)
		if err != nil {
			return summarizer.Config{}, err
		}
		opts = append(opts, fileOpts...)
	}
	if f.method != "" {
		s, err := summarizer.ParseStrategy(f.method, strings.TrimSpace(f.query) != "")
		if err != nil {
			return summarizer.Config{}, err
		}
		opts = append(opts, summarizer.WithStrategy(s))
	}
	if f.set["length"] {
		opts = append(opts, summarizer.WithBudget(f.length))
	}
	if f.set["language"] {
		opts = append(opts, summarizer.WithLanguage(f.language))
	}
	if f.set["stopwords"] {
		opts = append(opts, summarizer.WithStopwords(f.stopwords))
	}
	if f.set["stem"] {
		opts = append(opts, summarizer.WithStem(f.stem))
	}
	if f.set["select"] {
		m, err := summarizer.ParseMethod(f.selection)
		if err != nil {
			return summarizer.Config{}, err
		}
		opts = append(opts, summarizer.WithMethod(m))
	}
	if f.para != "" {
		params, err := parseParams(f.para)
		if err != nil {
			return summarizer.Config{}, err
		}
		opts = append(opts, summarizer.WithParams(params...))
	}
	opts = append(opts, summarizer.WithLogger(log))

	return summarizer.NewConfig(opts...)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log, err := newLogger(f.verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := buildConfig(f, log)
	if err != nil {
		return err
	}
	lang, err := textproc.ParseLanguage(cfg.Language)
	if err != nil {
		return err
	}
	var stop textproc.StopSet
	if cfg.Stopwords != "" {
		if stop, err = textproc.LoadStopwords(cfg.Stopwords); err != nil {
			return err
		}
	}
	format, err := ingest.ParseFormat(f.format)
	if err != nil {
		return err
	}
	parser, err := ingest.NewParser(format, textproc.NewTokenizer(lang))
	if err != nil {
		return err
	}

	ds, err := ingest.NewLoader(parser).BuildFromPath(ctx, f.file)
	if err != nil {
		return err
	}
	log.Info("input loaded",
		zap.String("path", f.file),
		zap.Int("documents", ds.DocumentCount()),
		zap.Int("sentences", ds.Len()),
		zap.String("strategy", string(cfg.Strategy)),
	)

	s, err := summarizer.New(cfg, textproc.NewNormalizer(lang, stop, cfg.Stem))
	if err != nil {
		return err
	}
	out, err := s.SummarizeDefault(ds, f.query)
	if err != nil {
		return err
	}
	if !out.Diagnostics.Converged || (cfg.Strategy == summarizer.ILP && !out.Diagnostics.Optimal) {
		log.Warn("summary is approximate",
			zap.Bool("converged", out.Diagnostics.Converged),
			zap.Bool("optimal", out.Diagnostics.Optimal))
	}

	text := textproc.Join(out.Sentences, lang) + "\n"
	if f.output == "" {
		_, err = io.WriteString(stdout, text)

		return err
	}
	if err = os.WriteFile(f.output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.output, err)
	}
	log.Info("summary written", zap.String("output", f.output), zap.Int("words", out.Words))

	return nil
}
