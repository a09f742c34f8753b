package stat

// Func 一元純函式：將定義域上的值映射為機率值。
//
// 分布回傳的 Func 皆為閉包，僅捕捉建構時算好的不可變純量，
// 無共享可變狀態；可重複查詢、可多個呼叫者併發呼叫而不需同步。
type Func[N Ordinate] func(N) float64

// Distribution 機率分布合約。
//
// Domain 回傳建構時給定的定義域；PDF / CDF 回傳無狀態、
// 可重複使用的機率密度 / 累積分布函式。實作必須保證：
//   - PDF 在定義域上的積分為 1
//   - CDF 非遞減且值域為 [0, 1]
type Distribution[N Ordinate] interface {
	Domain() Range[N]
	PDF() Func[N]
	CDF() Func[N]
}
