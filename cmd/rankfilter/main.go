// Command rankfilter applies local rank statistics or flood fill to grayscale
// images from the command line.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog"

	"github.com/nvr-ai/go-rank/config"
	"github.com/nvr-ai/go-rank/flood"
	"github.com/nvr-ai/go-rank/grid"
	"github.com/nvr-ai/go-rank/images"
	"github.com/nvr-ai/go-rank/profiler"
	"github.com/nvr-ai/go-rank/rank"
)

// Supported file extensions
var supportedImageExtensions = []string{".jpg", ".jpeg", ".png"}

func main() {
	var (
		inputPath   string
		outputPath  string
		configPath  string
		statName    string
		radius      int
		shift       string
		floodSeed   string
		floodValue  int
		tolerance   float64
		verbose     bool
	)
	flag.StringVar(&inputPath, "input", "", "Path to input image (.jpg, .jpeg, .png)")
	flag.StringVar(&outputPath, "output", "", "Path to output PNG (default: filtered_<input>.png)")
	flag.StringVar(&configPath, "config", "rankfilter.yaml", "Path to YAML configuration file")
	flag.StringVar(&statName, "statistic", "", "Rank statistic to apply (minimum, maximum, mean, median, ...)")
	flag.IntVar(&radius, "radius", 0, "Disk footprint radius (default from config)")
	flag.StringVar(&shift, "shift", "", "Footprint center shift as 'dy,dx'")
	flag.StringVar(&floodSeed, "flood-seed", "", "Flood fill seed as 'y,x' (enables flood mode)")
	flag.IntVar(&floodValue, "flood-value", 255, "Fill value for flood mode")
	flag.Float64Var(&tolerance, "tolerance", -1, "Flood tolerance (negative: exact match)")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if verbose || cfg.Output.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
	rank.SetLogger(log)
	images.SetLogger(log)
	rank.SetBinWarnThreshold(cfg.Filter.BinWarnThreshold)

	if err := validateInput(inputPath); err != nil {
		log.Fatal().Err(err).Msg("invalid input")
	}

	prof := profiler.New(log)
	defer prof.Report()

	stopLoad := prof.StartOperation("load")
	img, err := loadGray(inputPath, cfg.Output.MaxWidth)
	stopLoad()
	if err != nil {
		log.Fatal().Err(err).Str("path", inputPath).Msg("failed to load image")
	}
	log.Info().Ints("shape", img.Shape).Msg("image loaded")

	var out *grid.Grid[uint8]
	start := time.Now()
	stopApply := prof.StartOperation("apply")

	if floodSeed != "" {
		seed, err := parseInts(floodSeed, 2)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid --flood-seed")
		}
		opts := &flood.Options{Connectivity: cfg.Flood.Connectivity}
		if tolerance < 0 {
			tolerance = cfg.Flood.Tolerance
		}
		if tolerance >= 0 {
			opts.Tolerance = &tolerance
		}
		out, err = flood.FloodFill(img, seed, uint8(floodValue), opts)
		if err != nil {
			log.Fatal().Err(err).Msg("flood fill failed")
		}
		log.Info().Ints("seed", seed).Dur("elapsed", time.Since(start)).Msg("flood fill done")
	} else {
		if statName == "" {
			statName = cfg.Filter.Statistic
		}
		stat, err := rank.ParseStatistic(statName)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid --statistic")
		}
		if radius <= 0 {
			radius = cfg.Filter.Radius
		}
		opts := &rank.Options{}
		if shift != "" {
			sh, err := parseInts(shift, 2)
			if err != nil {
				log.Fatal().Err(err).Msg("invalid --shift")
			}
			opts.Shift = sh
		}
		fp := grid.Disk(radius)
		out, err = rank.Apply(img, fp, stat, opts)
		if err != nil {
			log.Fatal().Err(err).Msg("filter failed")
		}
		log.Info().
			Stringer("statistic", stat).
			Int("radius", radius).
			Dur("elapsed", time.Since(start)).
			Msg("filter done")
	}

	stopApply()

	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outputPath = "filtered_" + base + ".png"
	}
	stopSave := prof.StartOperation("save")
	if err := savePNG(outputPath, images.ToGray(out)); err != nil {
		log.Fatal().Err(err).Str("path", outputPath).Msg("failed to save output")
	}
	stopSave()
	log.Info().Str("path", outputPath).Msg("output written")
}

// validateInput checks that the input file exists and has a supported extension.
func validateInput(path string) error {
	if path == "" {
		return fmt.Errorf("--input is required")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedImageExtensions {
		if ext == supported {
			return nil
		}
	}
	return fmt.Errorf("unsupported file extension: %s. Supported extensions: %v", ext, supportedImageExtensions)
}

// loadGray decodes an image file into a grayscale grid, downscaling to
// maxWidth when set and the image is wider.
func loadGray(path string, maxWidth int) (*grid.Grid[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	if maxWidth > 0 && src.Bounds().Dx() > maxWidth {
		src = resize.Resize(uint(maxWidth), 0, src, resize.Lanczos3)
	}
	return images.FromImage(src), nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// parseInts parses a comma-separated list of exactly n integers.
func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated integers, got %q", n, s)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
