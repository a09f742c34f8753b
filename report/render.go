package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var lang language.Tag = language.English

// SummaryRender 定義輸出行為
type SummaryRender interface {
	Write(w io.Writer, s *Summary) error
}

// Json渲染
type JSONRender struct{}

func (JSONRender) Write(w io.Writer, s *Summary) error {
	return json.NewEncoder(w).Encode(s)
}

// YAML渲染
type YAMLRender struct{}

func (YAMLRender) Write(w io.Writer, s *Summary) error {
	// 只有最內層的一維陣列輸出成 flow style：[..., ...]；
	// 外層（若有巢狀）維持預設展開
	var node yaml.Node
	if err := node.Encode(s); err != nil {
		return err
	}
	flowLeafSequences(&node)

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(&node)
}

// flowLeafSequences 自底向上調整 sequence node 的 style：
// 不含子 sequence 的（最內層一維）改用 flow style，其餘不動。
func flowLeafSequences(n *yaml.Node) {
	if n == nil {
		return
	}
	leaf := true
	for _, c := range n.Content {
		flowLeafSequences(c)
		if c != nil && c.Kind == yaml.SequenceNode {
			leaf = false
		}
	}
	if n.Kind == yaml.SequenceNode && leaf {
		n.Style = yaml.FlowStyle
	}
}

// 表格渲染（對齊 runewidth，數字用在地化格式）
type TableRender struct{}

func (TableRender) Write(w io.Writer, s *Summary) error {
	p := message.NewPrinter(lang)
	rows := [][2]string{
		{"Samples", p.Sprintf("%d", s.Samples)},
		{"Min", p.Sprintf("%.6g", s.Min)},
		{"Max", p.Sprintf("%.6g", s.Max)},
		{"Mean", p.Sprintf("%.6g", s.Mean)},
		{"Std", p.Sprintf("%.6g", s.Std)},
		{"Var", p.Sprintf("%.6g", s.Var)},
	}
	if s.Dist != nil {
		for i, lb := range s.Dist.Labels {
			rows = append(rows, [2]string{
				lb,
				p.Sprintf("%d (%.2f %%)", s.Dist.Counts[i], 100*s.Dist.Freq[i]),
			})
		}
		rows = append(rows, [2]string{"GoF p-value", p.Sprintf("%.4f", s.Dist.PValue)})
	}
	_, err := io.WriteString(w, fmtTable(s.Name, rows))
	return err
}

func fmtTable(title string, rows [][2]string) string {
	maxKeyLen := 0
	maxValLen := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(r[1]); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	totalInner := maxKeyLen + maxValLen + 1
	if tw := runewidth.StringWidth(title) + 2; tw > totalInner {
		maxValLen += tw - totalInner
		totalInner = tw
	}

	var b strings.Builder
	top := "+" + strings.Repeat("-", totalInner) + "+\n"
	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"

	b.WriteString(top)
	pad := totalInner - runewidth.StringWidth(title)
	left := pad / 2
	b.WriteString("|" + strings.Repeat(" ", left) + title +
		strings.Repeat(" ", pad-left) + "|\n")
	b.WriteString(divider)
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("| %s | %s |\n",
			runewidth.FillRight(r[0], maxKeyLen-2),
			runewidth.FillRight(r[1], maxValLen-2)))
	}
	b.WriteString(divider)
	return b.String()
}
