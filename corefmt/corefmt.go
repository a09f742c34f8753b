package corefmt

import (
	"math"
	"strconv"
)

// FNV-1a 64-bit 參數
const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Hash64 以 FNV-1a 將多個 64-bit 片段合併為單一雜湊值。
//
// 片段順序敏感：Hash64(a, b) 與 Hash64(b, a) 通常不同。
// stat / accum 套件的 Hash() 皆以此為基底，保證相等的物件有相等的雜湊。
func Hash64(parts ...uint64) uint64 {
	h := offset64
	for _, p := range parts {
		for i := 0; i < 8; i++ {
			h ^= p & 0xff
			h *= prime64
			p >>= 8
		}
	}
	return h
}

// HashString 以 FNV-1a 計算字串雜湊。
func HashString(s string) uint64 {
	h := offset64
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

// HashFloat64 以位元模式計算浮點數雜湊片段。
// 注意：+0.0 與 -0.0 位元模式不同，雜湊也不同。
func HashFloat64(v float64) uint64 {
	return math.Float64bits(v)
}

// Float 回傳 v 的最短無損十進位表示。
func Float(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Interval 渲染閉區間的標準字串形式 "[min, max]"。
func Interval(min, max float64) string {
	return "[" + Float(min) + ", " + Float(max) + "]"
}
