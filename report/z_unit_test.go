package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/zintix-labs/evolab/accum"
	"github.com/zintix-labs/evolab/stat"
)

func buildFixture(t *testing.T) *Summary {
	t.Helper()
	mo := accum.NewMoments[float64]()
	mn := accum.NewMin[float64]()
	mx := accum.NewMax[float64]()
	for _, v := range []float64{0.5, 1.5, 2.5, 3.5} {
		mo.Accumulate(v)
		mn.Accumulate(v)
		mx.Accumulate(v)
	}
	return Build("demo", mo, mn, mx)
}

func TestBuild(t *testing.T) {
	s := buildFixture(t)
	if s.Name != "demo" || s.Samples != 4 {
		t.Fatalf("unexpected summary header: %+v", s)
	}
	if s.Min != 0.5 || s.Max != 3.5 {
		t.Fatalf("unexpected extrema: %+v", s)
	}
	if math.Abs(s.Mean-2.0) > 1e-12 {
		t.Fatalf("mean = %v, want 2", s.Mean)
	}
}

func TestBuildNil(t *testing.T) {
	mn := accum.NewMin[int]()
	mn.Accumulate(3)
	s := Build("partial", nil, mn, nil)
	if s.Samples != 1 || s.Min != 3 {
		t.Fatalf("unexpected partial summary: %+v", s)
	}
}

func TestAttachDist(t *testing.T) {
	s := buildFixture(t)
	d, _ := stat.NewUniform(0.0, 4.0)
	h, _ := accum.NewHistogram(0.0, 1.0, 2.0, 3.0, 4.0)
	accum.AccumulateAll(h, 0.5, 1.5, 2.5, 3.5)

	AttachDist(s, h, d.CDF())
	if s.Dist == nil {
		t.Fatalf("dist not attached")
	}
	if len(s.Dist.Counts) != 6 || s.Dist.Counts[1] != 1 {
		t.Fatalf("unexpected counts: %v", s.Dist.Counts)
	}
	if s.Dist.Freq[1] != 0.25 {
		t.Fatalf("unexpected freq: %v", s.Dist.Freq)
	}
	if s.Dist.PValue < 0.999999 {
		t.Fatalf("exact-fit p-value = %v, want 1", s.Dist.PValue)
	}
}

func TestTableRender(t *testing.T) {
	s := buildFixture(t)
	var buf bytes.Buffer
	if err := (TableRender{}).Write(&buf, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"demo", "Samples", "Mean", "| Min"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	// 每行等寬
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, ln := range lines[1:] {
		if len(ln) != len(lines[0]) {
			t.Fatalf("ragged table:\n%s", out)
		}
	}
}

func TestJSONRenderRoundTrip(t *testing.T) {
	s := buildFixture(t)
	var buf bytes.Buffer
	if err := (JSONRender{}).Write(&buf, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back Summary
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if back.Name != s.Name || back.Samples != s.Samples || back.Mean != s.Mean {
		t.Fatalf("round trip diverged: %+v vs %+v", back, s)
	}
}

func TestYAMLRenderFlowSequences(t *testing.T) {
	s := buildFixture(t)
	d, _ := stat.NewUniform(0.0, 4.0)
	h, _ := accum.NewHistogram(0.0, 1.0, 2.0, 3.0, 4.0)
	accum.AccumulateAll(h, 0.5, 1.5, 2.5, 3.5)
	AttachDist(s, h, d.CDF())

	var buf bytes.Buffer
	if err := (YAMLRender{}).Write(&buf, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	// 一維陣列需為 flow style
	if !strings.Contains(out, "[") {
		t.Fatalf("expected flow-style sequences:\n%s", out)
	}
	var back map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("yaml decode failed: %v", err)
	}
	if _, ok := back["name"]; !ok {
		t.Fatalf("yaml output missing name:\n%s", out)
	}
}
