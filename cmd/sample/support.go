package main

import (
	"crypto/rand"
	"flag"
	"log"
	"math"
	"math/big"
)

var cfg *config = new(config)

type config struct {
	n       int
	min     float64
	max     float64
	seed    int64
	buckets int
	showpb  bool
	out     string
	extra   []string
}

func bindVar() {
	// 綁定 Flag 到本地變數的指標 (&)
	flag.IntVar(&cfg.n, "n", 1_000_000, "number of samples to draw")
	flag.Float64Var(&cfg.min, "min", 0, "domain lower bound")
	flag.Float64Var(&cfg.max, "max", 10, "domain upper bound")
	flag.Int64Var(&cfg.seed, "seed", -1, "int64 seed for random number generator")
	flag.IntVar(&cfg.buckets, "buckets", 10, "equal-width histogram buckets")
	flag.BoolVar(&cfg.showpb, "pb", true, "show progress bar")
	flag.StringVar(&cfg.out, "o", "", "write YAML report to file (.zst suffix compresses)")

	flag.Parse()
	cfg.extra = flag.Args()

	// given seed illeagel -> default seed
	if cfg.seed < 1 {
		seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			log.Fatal(err)
		}
		cfg.seed = seed.Int64()
	}

	if cfg.n < 1 {
		log.Fatal("sample count must be positive")
	}
	if cfg.buckets < 1 {
		log.Fatal("bucket count must be positive")
	}
}
