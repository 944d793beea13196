package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/suparena/relstore"
	"github.com/suparena/relstore/config"
	"github.com/suparena/relstore/models"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	envFileFlag = flag.String("env-file", ".env", "Env file loaded before reading the environment")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: relstore [flags] <command> [args]

Commands:
  pending              print models pending remote deletion
  confirm TYPE ID...   confirm remote deletion of ids of TYPE
  list TYPE            print every stored model of TYPE

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag || *vFlag {
		info := relstore.GetVersionInfo()
		fmt.Printf("relstore version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configFlag, *envFileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "relstore: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "relstore: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	storage, err := cfg.OpenStorage(ctx, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}

	if err := run(ctx, storage, flag.Args(), os.Stdout); err != nil {
		logger.Error("command failed", zap.String("command", flag.Arg(0)), zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, storage *relstore.Storage, args []string, out io.Writer) error {
	switch args[0] {
	case "pending":
		sets, err := storage.DeleteSets(ctx)
		if err != nil {
			return err
		}
		return yaml.NewEncoder(out).Encode(sets)

	case "confirm":
		if len(args) < 3 {
			return fmt.Errorf("usage: confirm TYPE ID...")
		}
		ids := make([]models.ID, 0, len(args)-2)
		for _, arg := range args[2:] {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", arg, err)
			}
			ids = append(ids, models.ID(id))
		}
		return storage.ConfirmDelete(ctx, models.DeleteSets{args[1]: ids})

	case "list":
		if len(args) != 2 {
			return fmt.Errorf("usage: list TYPE")
		}
		items, err := storage.List(ctx, args[1])
		if err != nil {
			return err
		}
		// Models are shaped by their json tags; go through JSON so the YAML
		// shows the stored form.
		data, err := json.Marshal(items)
		if err != nil {
			return err
		}
		var docs []map[string]any
		if err := json.Unmarshal(data, &docs); err != nil {
			return err
		}
		return yaml.NewEncoder(out).Encode(docs)
	}
	return fmt.Errorf("unknown command %q", args[0])
}
