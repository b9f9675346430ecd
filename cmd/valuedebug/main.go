package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"deepholdem/internal/nn"
	"deepholdem/internal/poker"
	"deepholdem/internal/value"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()

	modelDir := flag.String("models", envOr("MODEL_DIR", "models"), "directory holding <round>_<phase>.onnx weight files")
	ortLib := flag.String("ortlib", envOr("ORT_LIB", "libonnxruntime.so"), "path to the onnxruntime shared library")
	boardStr := flag.String("board", "AsKd7h", "community cards")
	pot := flag.Float64("pot", 100, "pot size in chips")
	iters := flag.Int("iters", 1000, "outer-loop iterations to simulate")
	batch := flag.Int("batch", 1, "states evaluated per call")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := nn.InitRuntime(*ortLib); err != nil {
		logrus.Fatalf("onnxruntime init: %v", err)
	}
	defer nn.DestroyRuntime()

	cfg := value.DefaultConfig()
	cfg.ModelDir = *modelDir
	registry, failures := value.BuildRegistry(cfg, nn.Loader(*modelDir))
	defer registry.Close()
	for round, err := range failures {
		logrus.WithError(err).Warnf("no engine for %s", round)
	}
	if len(registry.Rounds()) == 0 {
		logrus.Fatal("no value engine could be built")
	}

	board, err := poker.ParseBoard(*boardStr)
	if err != nil {
		logrus.Fatalf("bad board: %v", err)
	}
	round, _ := poker.RoundOfBoard(board)
	engine, err := registry.EngineFor(round)
	if err != nil {
		logrus.Fatalf("%v", err)
	}

	pots := make([]float32, *batch)
	for i := range pots {
		pots[i] = float32(*pot)
	}
	if err := engine.Setup(board, pots, *batch); err != nil {
		logrus.Fatalf("setup: %v", err)
	}

	ranges := uniformRanges(board, *batch)
	for it := 1; it <= *iters; it++ {
		cfvs, err := engine.Evaluate(ranges)
		if err != nil {
			logrus.Fatalf("iteration %d: %v", it, err)
		}
		if it == 1 || it%100 == 0 {
			lo, hi := bounds(cfvs)
			fmt.Printf("iter %d: cfv range [%.4f, %.4f]\n", it, lo, hi)
		}
	}

	acc := engine.RetrieveAccumulated()
	fmt.Printf("accumulated: %d boards, %d values, mean |cfv| %.4f\n",
		len(acc.Boards), len(acc.Values), meanAbs(acc.Values))
}

// uniformRanges puts equal probability on every hand legal on the board,
// for both players, replicated across the batch.
func uniformRanges(board poker.Board, batch int) []float32 {
	mask := poker.LegalHandMask(board)
	n := float32(poker.LegalHandCount(board))
	one := make([]float32, poker.PlayerCount*poker.HandCount)
	for p := 0; p < poker.PlayerCount; p++ {
		for h, m := range mask {
			one[p*poker.HandCount+h] = m / n
		}
	}
	out := make([]float32, 0, batch*len(one))
	for b := 0; b < batch; b++ {
		out = append(out, one...)
	}
	return out
}

func bounds(v []float32) (float32, float32) {
	lo, hi := v[0], v[0]
	for _, x := range v {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

func meanAbs(v []float32) float64 {
	if len(v) == 0 {
		return 0
	}
	var s float64
	for _, x := range v {
		s += math.Abs(float64(x))
	}
	return s / float64(len(v))
}
