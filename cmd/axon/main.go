// Package main provides the axon command-line interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/axon-ml/axon/internal/config"
	"github.com/axon-ml/axon/internal/data"
	"github.com/axon-ml/axon/internal/nn"
	"github.com/axon-ml/axon/internal/optim"
	"github.com/axon-ml/axon/internal/tensor"
	"github.com/axon-ml/axon/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("axon %s\n", version)
	case "train":
		if err := runTrain(os.Args[2:]); err != nil {
			log.Fatalf("training failed: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("axon - feed-forward classifier training")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  train      Train a classifier (see 'axon train -h')")
	fmt.Println("  version    Show version")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	lr := fs.Float64("lr", 0, "Learning rate")
	momentum := fs.Float64("momentum", 0, "SGD momentum")
	epochs := fs.Int("epochs", 0, "Number of epochs")
	batchSize := fs.Int("batch-size", 0, "Batch size")
	seed := fs.Int64("seed", 0, "PRNG seed")
	layers := fs.String("layers", "", "Comma-separated layer sizes, e.g. 784,128,10")
	dataPath := fs.String("data", "", "Path to labeled CSV dataset (label,features...)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	layerSizes, err := parseLayerSizes(*layers)
	if err != nil {
		return err
	}
	cfg.ApplyOverrides(config.Overrides{
		LearningRate: *lr,
		Momentum:     *momentum,
		Epochs:       *epochs,
		BatchSize:    *batchSize,
		Seed:         *seed,
		LayerSizes:   layerSizes,
		DataPath:     *dataPath,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	inputs, labels, err := loadDataset(cfg, rng)
	if err != nil {
		return err
	}
	log.Printf("dataset: samples=%d features=%d classes=%d",
		inputs.Shape()[0], inputs.Shape()[1], cfg.LayerSizes[len(cfg.LayerSizes)-1])

	source, err := data.NewSliceSource(inputs, labels, cfg.BatchSize)
	if err != nil {
		return err
	}
	source.Shuffle(rng)

	model, err := nn.NewMLP(cfg.LayerSizes, rng)
	if err != nil {
		return err
	}
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{
		LR:       cfg.LearningRate,
		Momentum: cfg.Momentum,
	})

	sink := train.MetricFunc(func(epoch int, meanLoss float64) {
		if epoch%cfg.LogEvery == 0 || epoch == cfg.Epochs {
			log.Printf("epoch=%d mean_loss=%.6f", epoch, meanLoss)
		}
	})
	loop, err := train.NewLoop(model, sgd, source, sink, train.Config{Epochs: cfg.Epochs})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx)
}

// loadDataset reads the configured CSV dataset, or falls back to a
// synthetic blob dataset sized to the model when no path is set.
func loadDataset(cfg *config.Config, rng *rand.Rand) (*tensor.Tensor, []int, error) {
	features := cfg.LayerSizes[0]
	classes := cfg.LayerSizes[len(cfg.LayerSizes)-1]

	if cfg.DataPath != "" {
		inputs, labels, err := data.LoadCSV(cfg.DataPath, features, 1, 0)
		if err != nil {
			return nil, nil, err
		}
		for i, label := range labels {
			if label >= classes {
				return nil, nil, fmt.Errorf("sample %d has label %d but the model has %d classes", i, label, classes)
			}
		}
		return inputs, labels, nil
	}

	log.Printf("no dataset path set, generating synthetic blobs")
	return data.Blobs(100, features, classes, 0.5, rng)
}

func parseLayerSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid layer size %q: %w", p, err)
		}
		sizes[i] = n
	}
	return sizes, nil
}
