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
	"strings"
	"testing"
)

func TestKind(t *testing.T) {
	e := Invalidf("bad %s", "arg")
	if !IsKind(e, Invalid) {
		t.Fatalf("expected Invalid kind")
	}
	if IsKind(e, Degenerate) {
		t.Fatalf("unexpected Degenerate kind")
	}
	if !strings.Contains(e.Error(), "kind=invalid") {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	d := Degeneratef("width %v", 0.0)
	if !IsKind(d, Degenerate) {
		t.Fatalf("expected Degenerate kind")
	}
}

func TestWrapKeepsKind(t *testing.T) {
	inner := Degeneratef("zero width")
	w := Wrap(inner, "build distribution failed")
	if !IsKind(w, Degenerate) {
		t.Fatalf("wrap lost kind: %v", w)
	}
	if !errors.Is(w, inner) {
		t.Fatalf("wrap broke unwrap chain")
	}
	if !strings.Contains(w.Error(), "build distribution failed") {
		t.Fatalf("unexpected message: %s", w.Error())
	}
}

func TestWrapForeignError(t *testing.T) {
	w := Wrap(fmt.Errorf("io failed"), "outer")
	if !IsKind(w, Invalid) {
		t.Fatalf("foreign cause should default to Invalid")
	}
	if _, ok := AsErr(w); !ok {
		t.Fatalf("AsErr failed")
	}
}

func TestExtra(t *testing.T) {
	e := NewWithExtra(Invalid, "msg", "ctx")
	if !strings.Contains(e.Error(), "extra: ctx") {
		t.Fatalf("extra missing: %s", e.Error())
	}
}
