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

// Package report 將累積器的結果整理成摘要，並提供表格 / JSON / YAML 輸出。
package report

import (
	"github.com/zintix-labs/evolab/accum"
	"github.com/zintix-labs/evolab/stat"
)

// Summary 串流統計摘要
type Summary struct {
	Name    string       `json:"Name"`
	Samples int64        `json:"Samples"`
	Min     float64      `json:"Min"`
	Max     float64      `json:"Max"`
	Mean    float64      `json:"Mean"`
	Std     float64      `json:"Std"`
	Var     float64      `json:"Var"`
	Dist    *DistSummary `json:"Dist,omitempty"`
}

// DistSummary 直方圖分桶摘要
type DistSummary struct {
	Labels []string  `json:"Labels"`
	Counts []int64   `json:"Counts"`
	Freq   []float64 `json:"Freq"`
	PValue float64   `json:"PValue"`
}

// Build 由各累積器組出摘要。任一累積器可為 nil，對應欄位維持零值。
func Build[N stat.Ordinate](
	name string,
	mo *accum.Moments[N],
	mn *accum.Min[N],
	mx *accum.Max[N],
) *Summary {
	s := &Summary{Name: name}
	if mo != nil {
		s.Samples = mo.SampleCount()
		s.Mean = mo.Mean()
		s.Std = mo.Std()
		s.Var = mo.Variance()
	}
	if mn != nil {
		if v, ok := mn.Value(); ok {
			s.Min = float64(v)
		}
		if s.Samples == 0 {
			s.Samples = mn.SampleCount()
		}
	}
	if mx != nil {
		if v, ok := mx.Value(); ok {
			s.Max = float64(v)
		}
		if s.Samples == 0 {
			s.Samples = mx.SampleCount()
		}
	}
	return s
}

// AttachDist 將直方圖與適合度檢定結果掛進摘要。
// cdf 為理論分布的累積分布函式，p-value 以其為基準計算。
func AttachDist[N stat.Ordinate](s *Summary, h *accum.Histogram[N], cdf stat.Func[N]) {
	counts := h.Counts()
	freq := make([]float64, len(counts))
	if n := h.SampleCount(); n > 0 {
		for i, c := range counts {
			freq[i] = float64(c) / float64(n)
		}
	}
	if s.Samples == 0 {
		s.Samples = h.SampleCount()
	}
	s.Dist = &DistSummary{
		Labels: h.Labels(),
		Counts: counts,
		Freq:   freq,
		PValue: h.PValue(cdf),
	}
}
