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
	"math"

	"github.com/zintix-labs/evolab/stat"
)

// Min 追蹤串流最小值。
type Min[N stat.Ordinate] struct {
	Samples
	min N
}

var _ Accumulator[int] = (*Min[int])(nil)

func NewMin[N stat.Ordinate]() *Min[N] { return &Min[N]{} }

func (m *Min[N]) Accumulate(v N) {
	if m.n == 0 || v < m.min {
		m.min = v
	}
	m.tick()
}

// Value 回傳目前最小值；尚未累積任何樣本時 ok 為 false。
func (m *Min[N]) Value() (N, bool) { return m.min, m.n > 0 }

// Clone 回傳目前狀態的獨立複本。
func (m *Min[N]) Clone() *Min[N] {
	c := *m
	return &c
}

// Max 追蹤串流最大值。
type Max[N stat.Ordinate] struct {
	Samples
	max N
}

var _ Accumulator[int] = (*Max[int])(nil)

func NewMax[N stat.Ordinate]() *Max[N] { return &Max[N]{} }

func (m *Max[N]) Accumulate(v N) {
	if m.n == 0 || v > m.max {
		m.max = v
	}
	m.tick()
}

// Value 回傳目前最大值；尚未累積任何樣本時 ok 為 false。
func (m *Max[N]) Value() (N, bool) { return m.max, m.n > 0 }

// Clone 回傳目前狀態的獨立複本。
func (m *Max[N]) Clone() *Max[N] {
	c := *m
	return &c
}

// Sum 追蹤串流總和（以樣本自身的型別累加，溢位行為同該型別）。
type Sum[N stat.Ordinate] struct {
	Samples
	sum N
}

var _ Accumulator[int] = (*Sum[int])(nil)

func NewSum[N stat.Ordinate]() *Sum[N] { return &Sum[N]{} }

func (s *Sum[N]) Accumulate(v N) {
	s.sum += v
	s.tick()
}

func (s *Sum[N]) Value() N { return s.sum }

// Clone 回傳目前狀態的獨立複本。
func (s *Sum[N]) Clone() *Sum[N] {
	c := *s
	return &c
}

// Moments 以 Welford 遞推維護平均數與變異數，
// 避免平方和直減造成的災難性消去。
type Moments[N stat.Ordinate] struct {
	Samples
	mean float64
	m2   float64
}

var _ Accumulator[float64] = (*Moments[float64])(nil)

func NewMoments[N stat.Ordinate]() *Moments[N] { return &Moments[N]{} }

func (m *Moments[N]) Accumulate(v N) {
	m.tick()
	x := float64(v)
	d := x - m.mean
	m.mean += d / float64(m.n)
	m.m2 += d * (x - m.mean)
}

// Mean 回傳樣本平均數；無樣本時為 0。
func (m *Moments[N]) Mean() float64 {
	if m.n == 0 {
		return 0
	}
	return m.mean
}

// Variance 回傳樣本變異數（n-1 分母）；樣本數不足 2 時為 0。
func (m *Moments[N]) Variance() float64 {
	if m.n < 2 {
		return 0
	}
	return m.m2 / float64(m.n-1)
}

// Std 回傳樣本標準差。
func (m *Moments[N]) Std() float64 {
	return math.Sqrt(m.Variance())
}

// Clone 回傳目前狀態的獨立複本。
func (m *Moments[N]) Clone() *Moments[N] {
	c := *m
	return &c
}
