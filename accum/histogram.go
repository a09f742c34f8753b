// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package accum

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zintix-labs/evolab/errs"
	"github.com/zintix-labs/evolab/stat"
)

// Histogram 以分隔點切出 len(separators)+1 個桶的頻數累積器。
//
// 桶切法：(-inf, s0), [s0, s1), ..., [s_{k-1}, +inf)。
// 值恰等於分隔點時落入右側的桶。
type Histogram[N stat.Ordinate] struct {
	Samples
	separators []N
	counts     []int64
}

var _ Accumulator[float64] = (*Histogram[float64])(nil)

// NewHistogram 以嚴格遞增的分隔點建立直方圖。
func NewHistogram[N stat.Ordinate](separators ...N) (*Histogram[N], error) {
	if len(separators) == 0 {
		return nil, errs.Invalidf("histogram: no separators")
	}
	for i := 1; i < len(separators); i++ {
		if separators[i-1] >= separators[i] {
			return nil, errs.Invalidf(
				"histogram: separators not strictly increasing at index %d", i)
		}
	}
	return &Histogram[N]{
		separators: slices.Clone(separators),
		counts:     make([]int64, len(separators)+1),
	}, nil
}

func (h *Histogram[N]) Accumulate(v N) {
	h.counts[h.index(v)]++
	h.tick()
}

// index 二分搜尋第一個大於 v 的分隔點位置。
func (h *Histogram[N]) index(v N) int {
	return sort.Search(len(h.separators), func(i int) bool {
		return v < h.separators[i]
	})
}

// Counts 回傳各桶頻數的複本。
func (h *Histogram[N]) Counts() []int64 { return slices.Clone(h.counts) }

// Separators 回傳分隔點的複本。
func (h *Histogram[N]) Separators() []N { return slices.Clone(h.separators) }

// Labels 回傳各桶的區間標籤，順序與 Counts 對齊。
func (h *Histogram[N]) Labels() []string {
	k := len(h.separators)
	labels := make([]string, k+1)
	labels[0] = fmt.Sprintf("(-inf, %v)", h.separators[0])
	for i := 1; i < k; i++ {
		labels[i] = fmt.Sprintf("[%v, %v)", h.separators[i-1], h.separators[i])
	}
	labels[k] = fmt.Sprintf("[%v, +inf)", h.separators[k-1])
	return labels
}

// ChiSquare 以 cdf 給出的理論機率計算卡方適合度統計量。
//
// 期望數為零的桶：觀測也為零則跳過；觀測不為零代表分布與資料
// 根本不相容，直接回傳 +Inf。
func (h *Histogram[N]) ChiSquare(cdf stat.Func[N]) float64 {
	n := float64(h.n)
	if n == 0 {
		return 0
	}
	var x2 float64
	for i, obs := range h.counts {
		e := h.expected(i, cdf) * n
		if e <= 0 {
			if obs != 0 {
				return math.Inf(1)
			}
			continue
		}
		d := float64(obs) - e
		x2 += d * d / e
	}
	return x2
}

// expected 桶 i 的理論機率：相鄰分隔點上 cdf 的差，
// 兩端分別以 0 與 1 補齊。
func (h *Histogram[N]) expected(i int, cdf stat.Func[N]) float64 {
	k := len(h.separators)
	switch {
	case i == 0:
		return cdf(h.separators[0])
	case i == k:
		return 1 - cdf(h.separators[k-1])
	default:
		return cdf(h.separators[i]) - cdf(h.separators[i-1])
	}
}

// PValue 回傳卡方適合度檢定的 p-value，自由度取有效桶數 - 1。
// p 值極小代表樣本極不可能來自該分布。
func (h *Histogram[N]) PValue(cdf stat.Func[N]) float64 {
	if h.n == 0 {
		return 1
	}
	classes := 0
	for i := range h.counts {
		if h.expected(i, cdf) > 0 {
			classes++
		}
	}
	if classes < 2 {
		return 1
	}
	x2 := h.ChiSquare(cdf)
	if math.IsInf(x2, 1) {
		return 0
	}
	chi2 := distuv.ChiSquared{K: float64(classes - 1)}
	return chi2.Survival(x2)
}

// Clone 回傳目前狀態的獨立複本（分隔點與頻數皆複製）。
func (h *Histogram[N]) Clone() *Histogram[N] {
	return &Histogram[N]{
		Samples:    h.Samples,
		separators: slices.Clone(h.separators),
		counts:     slices.Clone(h.counts),
	}
}

func (h *Histogram[N]) String() string {
	return fmt.Sprintf("Histogram[buckets=%d, samples=%d]", len(h.counts), h.n)
}
