package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/config"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/gui"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/level"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/store"
)

type sizeList []config.Size

func (l *sizeList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

func (l *sizeList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		s, err := config.ParseSize(part)
		if err != nil {
			return err
		}
		*l = append(*l, s)
	}
	return nil
}

var (
	configPath = flag.String("config", "", "path to YAML config file")
	workers    = flag.Int("workers", 0, "bag sizes enumerated concurrently")
	logPath    = flag.String("log", "", "path to log file")
	logLevel   = flag.String("level", "", "log level")
	exportDir  = flag.String("export", "", "write level YAML files to this directory")
	examples   = flag.Bool("examples", false, "print an example tiling per combination")
	tui        = flag.Bool("tui", false, "browse results interactively")
	redisAddr  = flag.String("redis", "", "Redis address used to cache results")

	sizes sizeList
)

func main() {
	flag.Var(&sizes, "size", "bag size as WIDTHxHEIGHT, repeatable")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := pkg.InitLog(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *tui {
		pkg.Quiet(log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("bagfill failed")
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	if len(sizes) > 0 {
		cfg.Sizes = sizes
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *exportDir != "" {
		cfg.Export.Dir = *exportDir
	}
	if *redisAddr != "" {
		cfg.Cache.Redis.Address = *redisAddr
	}
	return cfg, nil
}

func openStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) store.Store {
	if cfg.Cache.Redis.Address == "" {
		return store.NewMemory()
	}

	s, err := store.NewRedis(ctx, cfg.Cache.Redis, log)
	if err != nil {
		log.WithError(err).Warn("caching disabled")
		return store.NewMemory()
	}
	return s
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	allowed, err := cfg.AllowedPieces()
	if err != nil {
		return err
	}

	st := openStore(ctx, cfg, log)
	defer st.Close()

	r := &pkg.Runner{Store: st, Log: log, Workers: cfg.Workers, Pieces: allowed}
	results, err := r.Run(ctx, cfg.Sizes)
	if err != nil {
		return err
	}

	if cfg.Export.Dir != "" {
		for _, rs := range results {
			path, err := level.Export(cfg.Export.Dir, rs, cfg.Export.Seed)
			if err != nil {
				return err
			}
			log.WithField("path", path).Info("exported levels")
		}
	}

	if *tui {
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("-tui requires a terminal")
		}
		return gui.NewViewer(results, gui.ThemeBasic).Run()
	}

	return pkg.NewTerminalPrinter(os.Stdout).Print(results, *examples)
}
