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

// Package accum 提供串流累積器抽象：一次吃進一個樣本、維護累計
// 統計量，並可透過轉換視圖（Map）讓既有累積器接受不同的值型別。
package accum

import (
	"fmt"
	"reflect"

	"github.com/zintix-labs/evolab/corefmt"
	"github.com/zintix-labs/evolab/errs"
)

// Accumulator 累積器合約。
//
// Accumulate 吃進一個樣本並更新內部統計量；每次成功呼叫後
// SampleCount 必定恰好 +1，不批次、不過濾。
//
// 累積器持有可變狀態且「不」在內部加鎖；多執行緒共用同一實例
// （或共用同一 adoptee 的多個視圖）時由呼叫端自行序列化。
type Accumulator[T any] interface {
	Accumulate(v T)
	SampleCount() int64
}

// Counted 只暴露樣本計數的最小視圖，供 Equal / Hash 等共用工具使用。
type Counted interface {
	SampleCount() int64
}

// Samples 可嵌入的樣本計數基底。
type Samples struct {
	n int64
}

// SampleCount 回傳至今累積的樣本數。
func (s *Samples) SampleCount() int64 { return s.n }

// tick 計數 +1，由各累積器的 Accumulate 於每次成功呼叫時觸發。
func (s *Samples) tick() { s.n++ }

func (s *Samples) String() string {
	return fmt.Sprintf("samples=%d", s.n)
}

// Equal 判斷兩個累積器是否相等：具體型別相同且樣本數相等。
//
// 注意：這是刻意保留的語義——兩個 Adapter 只要計數相同即視為
// 相等，不比較 adoptee 與 converter。
func Equal(a, b Counted) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.SampleCount() == b.SampleCount()
}

// Hash 由具體型別與樣本數導出；Equal 的兩個累積器必有相等的雜湊。
func Hash(c Counted) uint64 {
	if c == nil {
		return 0
	}
	return corefmt.Hash64(
		corefmt.HashString(fmt.Sprintf("%T", c)),
		uint64(c.SampleCount()),
	)
}

// AccumulateAll 依序將 values 全數餵進 acc。
func AccumulateAll[T any](acc Accumulator[T], values ...T) {
	for _, v := range values {
		acc.Accumulate(v)
	}
}

// Map 以 conv 將 adoptee 包裝成接受型別 B 的視圖。
//
// adoptee 為共享引用：視圖不擁有其生命週期，多個視圖可包同一個
// adoptee，Map 不發生所有權轉移。每次透過視圖累積時，視圖與
// adoptee 的計數「皆會」+1（each-view-counts 語義）；串接多層
// Map 時計數逐層放大——更動這個語義前需先取得產品端確認。
//
// Go 的方法無法引入新的型別參數，故以套件層級工廠取代
// accumulator.map(converter)；組合語義不變。
func Map[B, A any](adoptee Accumulator[A], conv func(B) A) (*Adapter[B, A], error) {
	if adoptee == nil {
		return nil, errs.Invalidf("map: nil adoptee")
	}
	if conv == nil {
		return nil, errs.Invalidf("map: nil converter")
	}
	return &Adapter[B, A]{adoptee: adoptee, conv: conv}, nil
}

// Adapter 將 Accumulator[A] 適配為 Accumulator[B] 的視圖。
type Adapter[B, A any] struct {
	Samples
	adoptee Accumulator[A]
	conv    func(B) A
}

var _ Accumulator[string] = (*Adapter[string, float64])(nil)

// Accumulate 先轉換、轉送給 adoptee，最後推進自身計數。
func (ad *Adapter[B, A]) Accumulate(v B) {
	ad.adoptee.Accumulate(ad.conv(v))
	ad.tick()
}

// Adoptee 回傳被包裝的累積器（共享引用，非複本）。
func (ad *Adapter[B, A]) Adoptee() Accumulator[A] { return ad.adoptee }

func (ad *Adapter[B, A]) String() string {
	return fmt.Sprintf(
		"AccumulatorAdapter[a=%v, c=%T, samples=%d]",
		ad.adoptee, ad.conv, ad.n,
	)
}
