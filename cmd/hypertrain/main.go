package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"k8s.io/klog/v2"

	"github.com/LaviSchlyter/Deep-learning-project/internal/data"
	"github.com/LaviSchlyter/Deep-learning-project/internal/nn"
	"github.com/LaviSchlyter/Deep-learning-project/internal/optim"
	"github.com/LaviSchlyter/Deep-learning-project/internal/train"
)

func main() {
	ctx := context.Background()
	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	experiment := flag.String("experiment", "dense", "experiment to run: dense, duplicated or shared")
	lossName := flag.String("loss", "mse", "training loss: mse or bce")
	epochs := flag.Int("epochs", 250, "number of training epochs")
	n := flag.Int("n", 1000, "number of examples per split")
	lr := flag.Float64("lr", 0.05, "learning rate")
	weightDecay := flag.Float64("weight-decay", 0, "L2 penalty coefficient")
	auxWeight := flag.Float64("aux-weight", 0, "weight of the per-branch auxiliary losses")
	seed := flag.Int64("seed", 0, "random seed for data generation")
	checkpoint := flag.String("checkpoint", "", "path to save the trained model to")

	klog.InitFlags(nil)
	flag.Parse()

	log := klog.FromContext(ctx)
	rng := rand.New(rand.NewSource(*seed))

	var model nn.Module
	var set *data.Set
	switch *experiment {
	case "dense":
		model = denseModel()
		set = data.NewDiscSet(*n, rng)
	case "duplicated":
		model = nn.NewPreprocess(branchModel(), branchModel(), headModel())
		set = data.NewPairSet(*n, rng)
	case "shared":
		model = nn.NewWeightShare(branchModel(), headModel())
		set = data.NewPairSet(*n, rng)
	default:
		return fmt.Errorf("unknown experiment %q", *experiment)
	}

	var loss nn.Loss
	switch *lossName {
	case "mse":
		loss = nn.NewMSELoss()
	case "bce":
		loss = nn.NewBCELoss()
	default:
		return fmt.Errorf("unknown loss %q", *lossName)
	}

	opt := optim.NewSGD(model.Parameters(), optim.Config{
		LR:          *lr,
		WeightDecay: *weightDecay,
	})

	log.Info("Starting training",
		"experiment", *experiment, "loss", *lossName,
		"epochs", *epochs, "n", *n, "lr", *lr, "aux_weight", *auxWeight)

	history := train.Run(train.Config{
		Epochs:    *epochs,
		AuxWeight: *auxWeight,
	}, model, opt, loss, set)

	final := history[len(history)-1]
	log.Info("Training finished",
		"train_loss", final.TrainLoss, "train_error", final.TrainError,
		"test_loss", final.TestLoss, "test_error", final.TestError)

	if *checkpoint != "" {
		if err := nn.SaveCheckpoint(*checkpoint, model, *epochs, final.TrainLoss); err != nil {
			return fmt.Errorf("saving checkpoint: %w", err)
		}
		log.Info("Saved checkpoint", "path", *checkpoint)
	}
	return nil
}

// denseModel is the plain classifier for the disc task: three hidden
// layers of 25 units.
func denseModel() nn.Module {
	return nn.NewSequential(
		nn.NewLinear(2, 25),
		nn.NewReLU(),
		nn.NewLinear(25, 25),
		nn.NewReLU(),
		nn.NewLinear(25, 25),
		nn.NewReLU(),
		nn.NewLinear(25, 1),
		nn.NewSigmoid(),
	)
}

// branchModel maps one noisy digit encoding to 10 class scores in
// [0, 1], so the branch output can be trained against the one-hot digit
// target directly.
func branchModel() nn.Module {
	return nn.NewSequential(
		nn.NewLinear(10, 32),
		nn.NewReLU(),
		nn.NewLinear(32, 10),
		nn.NewSigmoid(),
	)
}

// headModel combines the two branch outputs into the pair comparison.
func headModel() nn.Module {
	return nn.NewSequential(
		nn.NewLinear(20, 32),
		nn.NewReLU(),
		nn.NewLinear(32, 1),
		nn.NewSigmoid(),
	)
}
