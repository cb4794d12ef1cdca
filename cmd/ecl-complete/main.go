package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ecl-project/ecl-completion/internal/compline"
	"github.com/ecl-project/ecl-completion/internal/config"
	"github.com/ecl-project/ecl-completion/internal/core"
	"github.com/ecl-project/ecl-completion/internal/grammar"
	"github.com/ecl-project/ecl-completion/internal/profile"
	"github.com/ecl-project/ecl-completion/internal/resolve"
)

var BUILD_VERSION = "dev"

//go:embed grammar.json
var grammarJSON []byte

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `ecl-complete - shell tab-completion resolver for the ecl CLI

USAGE:
  ecl-complete [options]

MODES:
  Run without COMP_LINE in the environment, ecl-complete prints the bash
  snippet that registers it as the completion handler for ecl.

  Run by bash during completion (complete -C sets COMP_LINE), it resolves
  the candidates for the current line and prints one per line on stdout.

OPTIONS:
`

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load(core.ConfigFile())
	if err != nil {
		fatal(err)
	}

	// Not invoked by a completing shell: print the registration snippet.
	line, ok := compline.FromEnv()
	if !ok {
		executable, err := os.Executable()
		if err != nil {
			fatal(fmt.Errorf("resolving own executable: %w", err))
		}
		fmt.Print(compline.RegistrationScript(executable))
		return
	}

	logger, err := initializeLogger(cfg)
	if err != nil {
		fatal(fmt.Errorf("initializing logger: %w", err))
	}
	defer logger.Sync() // Flush any buffered log entries

	logger.Info("-------- new completion request --------", zap.String("line", line))

	if err := run(line, cfg, logger); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		fatal(err)
	}
}

// run performs one completion request: tokenize, load grammar and profiles,
// resolve, print. Candidates go to stdout only; bash treats everything on
// stdout as completion data.
func run(line string, cfg *config.Config, logger *zap.Logger) error {
	tokens, err := compline.Tokens(line)
	if err != nil {
		return err
	}

	root, err := grammar.Parse(grammarJSON)
	if err != nil {
		return fmt.Errorf("loading grammar: %w", err)
	}

	profiles, err := profile.Load(cfg.ProfileDB)
	if err != nil {
		return err
	}

	resolver := resolve.New(logger)
	for _, candidate := range resolver.Complete(root, tokens, profiles) {
		fmt.Println(candidate)
	}

	return nil
}

func initializeLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.LogLevel, err)
	}
	if BUILD_VERSION == "dev" {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	// Logs go to a file only: stdout is reserved for candidates and stderr
	// for fatal diagnostics.
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.OutputPaths = []string{
		cfg.LogFile,
	}

	return loggerConfig.Build()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "ecl-complete: %v\n", err)
	os.Exit(1)
}
