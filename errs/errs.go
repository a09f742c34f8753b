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

package errs

import (
	"errors"
	"fmt"
)

// Kind : 錯誤分類，使呼叫端理解失敗的性質
//
// 本函式庫的所有錯誤皆於出錯的呼叫當下同步回報，不重試、不部分成功；
// 建構失敗時不會留下半建構的物件。
type Kind uint8

const (
	None Kind = iota
	// Invalid 必要引數缺漏或不合法（converter 為 nil、min > max 等）。
	Invalid
	// Degenerate 數值退化：定義域寬度為零，密度分母將為零。
	Degenerate
)

var kindMap = map[Kind]string{
	None:       "",
	Invalid:    "invalid",
	Degenerate: "degenerate",
}

func KindName(k Kind) string {
	if str, ok := kindMap[k]; ok {
		return str
	}
	return ""
}

// E 是統一的錯誤型別。
// Message 為經過樣板格式化後的主訊息；Extra 為呼叫端可追加的額外上下文；
// Cause 可串接下層錯誤（wrap）；Kind 表示錯誤的分類。
type E struct {
	Message string
	Extra   string
	Cause   error
	Kind    Kind
}

// Error 實作 error 介面並回傳格式化後的錯誤訊息。
func (e *E) Error() string {
	base := fmt.Sprintf("kind=%s %s", KindName(e.Kind), e.Message)
	if e.Extra != "" {
		base += " | extra: " + e.Extra
	}
	if e.Cause != nil {
		base += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return base
}

// Unwrap 讓 errors.Is / errors.As 能夠向下展開。
func (e *E) Unwrap() error { return e.Cause }

// New 依錯誤分類與訊息建立錯誤
func New(k Kind, msg string) *E {
	return &E{Message: msg, Kind: k}
}

func Invalidf(format string, a ...any) *E {
	return New(Invalid, fmt.Sprintf(format, a...))
}

func Degeneratef(format string, a ...any) *E {
	return New(Degenerate, fmt.Sprintf(format, a...))
}

// NewWithExtra 與 New 相同，但可附加額外上下文字串（不影響主訊息）。
func NewWithExtra(k Kind, msg string, extra string) *E {
	e := New(k, msg)
	e.Extra = extra
	return e
}

// Wrap 使用給定的訊息包裝底層錯誤，建立一個 *E。
//
// Kind 規則：
//   - 若 cause 已經是 *E，則沿用其 Kind（保持原本分類）。
//   - 若 cause 不是本包定義的 *E（多半是標準庫或三方依賴錯誤），
//     則 Kind 一律視為 Invalid。
func Wrap(cause error, msg string) *E {
	var e *E
	k := Invalid
	if errors.As(cause, &e) {
		k = e.Kind
	}
	r := New(k, msg)
	r.Cause = cause
	return r
}

func AsErr(err error) (*E, bool) {
	var e *E
	if errors.As(err, &e) {
		return e, true
	}
	return e, false
}

// IsKind 判斷 err（或其包裝鏈上的 *E）是否屬於指定分類。
func IsKind(err error, k Kind) bool {
	e, ok := AsErr(err)
	return ok && e.Kind == k
}
