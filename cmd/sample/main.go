package main

import (
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zintix-labs/evolab/accum"
	"github.com/zintix-labs/evolab/errs"
	"github.com/zintix-labs/evolab/report"
	"github.com/zintix-labs/evolab/stat"
)

// 均勻分布取樣示範：把樣本串流進累積器，對照理論 CDF 做適合度檢定
func main() {
	bindVar()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dist, err := stat.NewUniform(cfg.min, cfg.max)
	if err != nil {
		return err
	}
	hist, err := accum.NewHistogram(separators(cfg.min, cfg.max, cfg.buckets)...)
	if err != nil {
		return err
	}
	mn := accum.NewMin[float64]()
	mx := accum.NewMax[float64]()
	mo := accum.NewMoments[float64]()

	src := distuv.Uniform{
		Min: cfg.min,
		Max: cfg.max,
		Src: rand.NewPCG(uint64(cfg.seed), uint64(cfg.seed)+1),
	}

	bar := pb.StartNew(cfg.n)
	if !cfg.showpb {
		bar.SetWriter(io.Discard)
	}
	for i := 0; i < cfg.n; i++ {
		x := src.Rand()
		mn.Accumulate(x)
		mx.Accumulate(x)
		mo.Accumulate(x)
		hist.Accumulate(x)
		bar.Increment()
	}
	bar.Finish()

	// 殘餘引數視為額外的文字樣本，透過 Map 視圖轉成數值後累積
	if len(cfg.extra) > 0 {
		view, err := accum.Map(mo, func(s string) float64 {
			v, perr := strconv.ParseFloat(s, 64)
			if perr != nil {
				log.Printf("skip sample %q: %v", s, perr)
				return cfg.min
			}
			return v
		})
		if err != nil {
			return err
		}
		accum.AccumulateAll(view, cfg.extra...)
		log.Printf("view accumulated %d textual samples", view.SampleCount())
	}

	s := report.Build("uniform "+dist.Domain().String(), mo, mn, mx)
	report.AttachDist(s, hist, dist.CDF())

	if err := (report.TableRender{}).Write(os.Stdout, s); err != nil {
		return err
	}
	if cfg.out != "" {
		return writeReport(cfg.out, s)
	}
	return nil
}

// separators 在 [min, max] 上等距切出 k 個等寬內桶的邊界；
// 兩側外桶的理論機率為 0，χ² 計算時自動略過。
func separators(min, max float64, k int) []float64 {
	w := (max - min) / float64(k)
	seps := make([]float64, k+1)
	for i := range seps {
		seps[i] = min + w*float64(i)
	}
	seps[k] = max
	return seps
}

func writeReport(path string, s *report.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(err, "create report file failed")
	}
	defer f.Close()

	var w io.Writer = f
	if strings.HasSuffix(path, ".zst") {
		zw, zerr := zstd.NewWriter(f)
		if zerr != nil {
			return errs.Wrap(zerr, "create zstd writer failed")
		}
		defer zw.Close()
		w = zw
	}
	return (report.YAMLRender{}).Write(w, s)
}
