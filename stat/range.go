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

// Package stat 提供進化計算工具箱共用的機率分布抽象：
// 一個定義域（Range）加上對應的 PDF / CDF 純函式。
package stat

import (
	"github.com/zintix-labs/evolab/corefmt"
	"github.com/zintix-labs/evolab/errs"
)

// Ordinate 約束定義域可用的數值型別：
// 需支援全序比較（<），並可轉換為有限精度浮點數做密度計算。
type Ordinate interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range 閉區間 [min, max]。建構後不可變，可直接以值複製共享；
// 多個分布引用同一個 Range 時不做防禦性複製。
type Range[N Ordinate] struct {
	min N
	max N
}

// NewRange 建立 [min, max] 區間。
//
// 結構不變量僅要求 min <= max；min == max 是合法的區間
// （寬度為零的區間能否當分布定義域，由各分布建構子另行檢查）。
func NewRange[N Ordinate](min, max N) (Range[N], error) {
	if min > max {
		return Range[N]{}, errs.Invalidf("range: min %v > max %v", min, max)
	}
	return Range[N]{min: min, max: max}, nil
}

func (r Range[N]) Min() N { return r.min }

func (r Range[N]) Max() N { return r.max }

// Width 回傳以浮點數表示的區間寬度。
func (r Range[N]) Width() float64 {
	return float64(r.max) - float64(r.min)
}

// Contains 回傳 v 是否落在閉區間內（含兩端點）。
func (r Range[N]) Contains(v N) bool {
	return v >= r.min && v <= r.max
}

// Equal 結構相等：兩端點逐一比較。
func (r Range[N]) Equal(o Range[N]) bool { return r == o }

// Hash 由兩端點導出；相等的區間必有相等的雜湊。
func (r Range[N]) Hash() uint64 {
	return corefmt.Hash64(
		corefmt.HashFloat64(float64(r.min)),
		corefmt.HashFloat64(float64(r.max)),
	)
}

func (r Range[N]) String() string {
	return corefmt.Interval(float64(r.min), float64(r.max))
}
