package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffLines(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{
			name: "equal",
			from: "a\nb\n",
			to:   "a\nb\n",
			want: "",
		},
		{
			name: "changed line",
			from: "a\nb\nc\n",
			to:   "a\nx\nc\n",
			want: " a\n-b\n+x\n c\n",
		},
		{
			name: "appended",
			from: "a\n",
			to:   "a\nb\n",
			want: " a\n+b\n",
		},
		{
			name: "removed",
			from: "a\nb\n",
			to:   "b\n",
			want: "-a\n b\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffLines(tt.from, tt.to)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStat(t *testing.T) {
	ins, del := Stat(DiffLines("a\nb\nc\n", "a\nx\ny\n"))
	if ins != 2 || del != 2 {
		t.Errorf("Stat = %d, %d", ins, del)
	}
	ins, del = Stat("")
	if ins != 0 || del != 0 {
		t.Errorf("Stat(\"\") = %d, %d", ins, del)
	}
}
