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

package stat

import (
	"fmt"

	"github.com/zintix-labs/evolab/corefmt"
	"github.com/zintix-labs/evolab/errs"
)

// Uniform 連續均勻分布。
//
//	pdf(x) = 1/(max-min)  x ∈ [min, max]，否則為 0
//	cdf(x) = 0            x < min
//	         (x-min)/(max-min)  x ∈ [min, max]
//	         1            x > max
//
// 兩個函式皆於建構時生成一次，之後可任意次查詢。
type Uniform[N Ordinate] struct {
	domain Range[N]
	pdf    Func[N]
	cdf    Func[N]
}

var _ Distribution[float64] = (*Uniform[float64])(nil)

// NewUniform 以 min / max 建立均勻分布，內部先組出 Range。
func NewUniform[N Ordinate](min, max N) (*Uniform[N], error) {
	domain, err := NewRange(min, max)
	if err != nil {
		return nil, err
	}
	return NewUniformOf(domain)
}

// NewUniformOf 以給定定義域建立均勻分布。
//
// 寬度為零的定義域會使密度分母為零。原始行為僅以 assert 防守，
// 生產環境可能被關閉而默默產生 Inf/NaN；這裡改為無條件檢查並
// 回報 errs.Degenerate。
func NewUniformOf[N Ordinate](domain Range[N]) (*Uniform[N], error) {
	if domain.Width() <= 0 {
		return nil, errs.Degeneratef("uniform: zero-width domain %s", domain)
	}
	return &Uniform[N]{
		domain: domain,
		pdf:    uniformPDF(domain),
		cdf:    uniformCDF(domain),
	}, nil
}

// uniformPDF 生成密度函式，僅捕捉 min / max / 常數密度三個純量。
func uniformPDF[N Ordinate](domain Range[N]) Func[N] {
	min := float64(domain.Min())
	max := float64(domain.Max())
	p := 1.0 / (max - min)
	return func(v N) float64 {
		x := float64(v)
		if x < min || x > max {
			return 0
		}
		return p
	}
}

// uniformCDF 生成累積分布函式：min 之下為 0，max 之上為 1，
// 區間內線性爬升。
func uniformCDF[N Ordinate](domain Range[N]) Func[N] {
	min := float64(domain.Min())
	max := float64(domain.Max())
	divisor := max - min
	return func(v N) float64 {
		x := float64(v)
		switch {
		case x < min:
			return 0
		case x > max:
			return 1
		default:
			return (x - min) / divisor
		}
	}
}

// Domain 回傳建構時的定義域（同一值，未防禦性複製）。
func (u *Uniform[N]) Domain() Range[N] { return u.domain }

// PDF 回傳機率密度函式。
func (u *Uniform[N]) PDF() Func[N] { return u.pdf }

// CDF 回傳累積分布函式。
func (u *Uniform[N]) CDF() Func[N] { return u.cdf }

// Equal 兩個均勻分布相等若且唯若定義域相等。
func (u *Uniform[N]) Equal(o *Uniform[N]) bool {
	if o == nil {
		return false
	}
	return u.domain.Equal(o.domain)
}

// Hash 由定義域導出。
func (u *Uniform[N]) Hash() uint64 {
	return corefmt.Hash64(corefmt.HashString("uniform"), u.domain.Hash())
}

func (u *Uniform[N]) String() string {
	return fmt.Sprintf("UniformDistribution[%s]", u.domain)
}
