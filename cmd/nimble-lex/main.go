package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ctl-F/nimble"
)

var (
	configPath   = flag.String("config", "", "yaml configuration file")
	formatFlag   = flag.String("format", "text", "output format, text or json")
	commentsFlag = flag.Bool("comments", true, "keep comment tokens in the output")
	debugFlag    = flag.Bool("debug", false, "dump tokens and recorded spans to stderr")
	historyFlag  = flag.String("history", "", "bolt database recording scan history")
	showHistory  = flag.Bool("show-history", false, "print recorded runs and exit")
	logLevelFlag = flag.String("log-level", "info", "logging level")
	traceFlag    = flag.Bool("trace", false, "record a span per scanned file")
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: nimble-lex [flags] <file>...")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run(flag.Args()))
}

// applyFlags overlays the flags the user actually set onto cfg, so they
// win over both the config file and the environment.
func applyFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *formatFlag
		case "comments":
			cfg.Comments = *commentsFlag
		case "history":
			cfg.History = *historyFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "trace":
			cfg.Trace = *traceFlag
		}
	})
}

// run returns the process exit code: 0 on success, 1 when any file
// produced error tokens, 2 on usage, configuration or I/O problems.
func run(files []string) int {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "nimble-lex:", err)
		return 2
	}

	applyFlags(&cfg)

	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "nimble-lex:", err)
		return 2
	}

	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logrus.SetLevel(level)

	if *showHistory {
		if cfg.History == "" {
			fmt.Fprintln(os.Stderr, "nimble-lex: -show-history needs a history database")
			return 2
		}
		records, err := listHistory(cfg.History)
		if err != nil {
			fmt.Fprintln(os.Stderr, "nimble-lex:", err)
			return 2
		}
		for _, r := range records {
			fmt.Printf("%s run=%s file=%s tokens=%d errors=%d fingerprint=%016x\n",
				r.Time.Format(time.RFC3339), r.Run, r.File, r.Tokens, r.Errors, r.Fingerprint)
		}
		return 0
	}

	if len(files) == 0 {
		usage()
		return 2
	}

	runID := uuid.NewV4()
	log := logrus.WithField("run", runID.String())

	var tracer *mocktracer.MockTracer
	if cfg.Trace {
		tracer = mocktracer.New()
		opentracing.SetGlobalTracer(tracer)
	}

	var store *historyStore
	if cfg.History != "" {
		store, err = openHistory(cfg.History)
		if err != nil {
			fmt.Fprintln(os.Stderr, "nimble-lex:", err)
			return 2
		}
		defer store.Close()
	}

	write := formats[cfg.Format]

	code := 0
	for _, name := range files {
		src, err := ioutil.ReadFile(name)
		if err != nil {
			log.WithField("file", name).Error(err)
			code = 2
			continue
		}

		tokens := nimble.Scan(name, src)
		if !cfg.Comments {
			tokens = nimble.WithoutComments(tokens)
		}
		bad := nimble.Errors(tokens)

		if err := write(os.Stdout, tokens); err != nil {
			log.WithField("file", name).Error(err)
			return 2
		}
		for _, tok := range bad {
			fmt.Fprintf(os.Stderr, "%s: %s\n", tok.Pos, tok.Err)
		}
		if *debugFlag {
			spew.Fdump(os.Stderr, tokens)
		}

		if store != nil {
			fp, err := nimble.Fingerprint(tokens)
			if err != nil {
				log.WithField("file", name).Error(err)
			}
			record := RunRecord{
				Run:         runID.String(),
				Time:        time.Now().UTC(),
				File:        name,
				Tokens:      len(tokens),
				Errors:      len(bad),
				Fingerprint: fp,
			}
			if err := store.Append(record); err != nil {
				log.WithField("file", name).Error(err)
				code = 2
			}
		}

		log.WithFields(logrus.Fields{
			"file":   name,
			"tokens": len(tokens),
			"errors": len(bad),
		}).Info("scanned file")

		if len(bad) > 0 && code == 0 {
			code = 1
		}
	}

	if *debugFlag && tracer != nil {
		spew.Fdump(os.Stderr, tracer.FinishedSpans())
	}
	return code
}
