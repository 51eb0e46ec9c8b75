package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/ironsheep/ocr-annotate/internal/config"
	"github.com/ironsheep/ocr-annotate/internal/engine"
	"github.com/ironsheep/ocr-annotate/internal/logging"
	"github.com/ironsheep/ocr-annotate/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--version", "-v", "version":
			fmt.Printf("ocr-annotate %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "--config", "-c":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "error: --config requires a file path")
				os.Exit(2)
			}
			i++
			configPath = args[i]
		default:
			if v, ok := strings.CutPrefix(arg, "--config="); ok {
				configPath = v
				continue
			}
			fmt.Fprintf(os.Stderr, "error: unknown argument %q (see --help)\n", arg)
			os.Exit(2)
		}
	}

	if err := run(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("ocr-annotate - recognize text in an image and annotate it")
	fmt.Println()
	fmt.Println("Usage: ocr-annotate [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config, -c FILE  Read settings from a JSON file")
	fmt.Println("  --version, -v      Print version information")
	fmt.Println("  --help, -h         Print this help message")
	fmt.Println()
	fmt.Println("Environment variables (also read from ./.env):")
	fmt.Println("  OCR_ANNOTATE_LOG_LEVEL=debug      Enable debug logging")
	fmt.Println("  OCR_ANNOTATE_IMAGE_DIR, OCR_ANNOTATE_IMAGE_NAME")
	fmt.Println("  OCR_ANNOTATE_OUTPUT_DIR, OCR_ANNOTATE_PERSIST, OCR_ANNOTATE_DISPLAY")
	fmt.Println("  OCR_ANNOTATE_LANGUAGES=ch_sim,en  OCR_ANNOTATE_WEIGHTS_DIR")
	fmt.Println("  OCR_ANNOTATE_ALLOW_DOWNLOAD=true  Fetch missing weights")
	fmt.Println()
	fmt.Println("The report is printed to stdout; logs go to stderr.")
}

func run(configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	lookup, err := config.EnvFile("")
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Debugw("starting", "version", Version, "build_time", BuildTime, "commit", GitCommit)
	log.Debugw("configuration",
		"image", cfg.ImagePath(),
		"output_dir", cfg.OutputDir,
		"persist", cfg.Persist,
		"display", cfg.Display,
		"font", cfg.FontPath(),
	)

	// Viewer launch output must not mix with the report on stdout.
	browser.Stdout = os.Stderr

	obs := pipeline.NewLogObserver(log)

	eng, err := engine.Load(cfg.Engine,
		engine.WithLogger(log),
		engine.WithObserver(obs),
	)
	if err != nil {
		return err
	}
	defer eng.Close()

	p, err := pipeline.New(eng, pipelineOptions(cfg, log, obs))
	if err != nil {
		return err
	}
	defer p.Close()

	out, err := p.Run(pipeline.Job{
		ImageDir:  cfg.ImageDir,
		ImageName: cfg.ImageName,
		OutputDir: cfg.OutputDir,
		Persist:   cfg.Persist,
		Display:   cfg.Display,
	})
	if err != nil {
		return err
	}

	fmt.Print(out.Report)
	return nil
}

func pipelineOptions(cfg *config.Config, log *zap.SugaredLogger, obs pipeline.Observer) pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.FontPath = cfg.FontPath()
	opts.FontSize = cfg.FontSize
	opts.Color = cfg.Color
	opts.StrokeWidth = cfg.StrokeWidth
	opts.Threshold = uint8(cfg.Threshold)
	opts.JPEGQuality = cfg.JPEGQuality
	opts.Observer = obs
	opts.Log = log
	return opts
}
