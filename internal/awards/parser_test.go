// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package awards

import (
	"reflect"
	"testing"
)

func TestParseProducers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"comma and and", "Uri Fruchtan, Mark L. Rosen and Barnaby Thompson", []string{"Uri Fruchtan", "Mark L. Rosen", "Barnaby Thompson"}},
		{"comma only", "Gloria Katz, Joel Silver", []string{"Gloria Katz", "Joel Silver"}},
		{"and only", "Allan Carr and Bo Derek", []string{"Allan Carr", "Bo Derek"}},
		{"serial comma", "A, B, and C", []string{"A", "B", "C"}},
		{"upper case AND", "Bill Cosby AND Buzz Feitshans", []string{"Bill Cosby", "Buzz Feitshans"}},
		{"comma without spaces", "A,B", []string{"A", "B"}},
		{"single producer", "  Jerry Weintraub ", []string{"Jerry Weintraub"}},
		{"and inside a name", "Brandon Anderson and Sandy Land", []string{"Brandon Anderson", "Sandy Land"}},
		{"empty parts dropped", "A, , B,", []string{"A", "B"}},
		{"no-break spaces around and", "A\u00a0and\u00a0B", []string{"A", "B"}},
		{"ideographic space after comma", "Joel Silver,\u3000Bill Cosby", []string{"Joel Silver", "Bill Cosby"}},
		{"no-break space trimmed", "\u00a0Allan Carr\u00a0", []string{"Allan Carr"}},
		{"no-break space inside a name kept", "Mark\u00a0L. Rosen", []string{"Mark\u00a0L. Rosen"}},
		{"empty", "", []string{}},
		{"blank", "   ", []string{}},
		{"unicode blank", "\u00a0\u2003", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseProducers(tt.input)
			if got == nil {
				t.Fatalf("ParseProducers(%q) = nil, want non-nil slice", tt.input)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseProducers(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
