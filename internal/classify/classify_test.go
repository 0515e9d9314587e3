package classify_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aayushsanghavi/dsbox/internal/classify"
	"github.com/aayushsanghavi/dsbox/internal/dataset"
)

// load builds a dataset from CSV text; empty cells are nulls and kinds are
// inferred, same as production input.
func load(t *testing.T, csvText string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.ReadCSV(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	return ds
}

func TestSingleValueColumns(t *testing.T) {
	ds := load(t, "constant,varied,allnull\n"+
		"a,1,\n"+
		"a,2,\n"+
		"a,3,\n")
	got := classify.SingleValueColumns(ds)
	want := []string{"constant", "allnull"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SingleValueColumns mismatch:\n%s", diff)
	}
}

func TestSingleValueColumns_SecondValueRemovesColumn(t *testing.T) {
	ds := load(t, "c\na\na\n")
	if got := classify.SingleValueColumns(ds); len(got) != 1 {
		t.Fatalf("expected column flagged, got %v", got)
	}
	ds2 := load(t, "c\na\nb\n")
	if got := classify.SingleValueColumns(ds2); len(got) != 0 {
		t.Errorf("expected no columns flagged, got %v", got)
	}
}

func TestSingleValueColumns_ZeroRows(t *testing.T) {
	ds := load(t, "a,b\n")
	if got := classify.SingleValueColumns(ds); len(got) != 0 {
		t.Errorf("zero-row columns must never be single-valued, got %v", got)
	}
}

func TestSingleValueColumns_MixedValueAndNull(t *testing.T) {
	// One value plus nulls is two distinct values, not one.
	ds := load(t, "c\na\nNA\n")
	if got := classify.SingleValueColumns(ds); len(got) != 0 {
		t.Errorf("value+null column must not be flagged, got %v", got)
	}
}

func TestIdentifierColumns(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"id", true},
		{"ID", true},
		{"iD", true}, // exact match is case-insensitive
		{"userId", true},
		{"userID", true},
		{"user_id", true},
		{"ORDERID", true},
		{"candid", false}, // substring checks are case-sensitive
		{"identity", false},
		{"grid", false},
		{"age", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := load(t, tt.name+"\n1\n2\n")
			got := classify.IdentifierColumns(ds)
			if flagged := len(got) == 1; flagged != tt.want {
				t.Errorf("IdentifierColumns(%q int) flagged=%v, want %v", tt.name, flagged, tt.want)
			}
		})
	}
}

func TestIdentifierColumns_RequiresIntegerKind(t *testing.T) {
	// Name matches but the values are strings.
	ds := load(t, "user_id\nalice\nbob\n")
	if got := classify.IdentifierColumns(ds); len(got) != 0 {
		t.Errorf("string column must not be flagged, got %v", got)
	}
	// Float values do not qualify either.
	ds2 := load(t, "user_id\n1.5\n2.5\n")
	if got := classify.IdentifierColumns(ds2); len(got) != 0 {
		t.Errorf("float column must not be flagged, got %v", got)
	}
}

func TestMajorityMissingColumns(t *testing.T) {
	// 10 rows, X missing in 9: threshold count = round(10*0.8) = 8, 9 >= 8.
	var b strings.Builder
	b.WriteString("X,Y\n")
	b.WriteString("1,1\n")
	for i := 0; i < 9; i++ {
		b.WriteString(",1\n")
	}
	ds := load(t, b.String())
	got := classify.MajorityMissingColumns(ds, 0.8)
	if diff := cmp.Diff([]string{"X"}, got); diff != "" {
		t.Errorf("MajorityMissingColumns mismatch:\n%s", diff)
	}
}

func TestMajorityMissingColumns_MonotonicInThreshold(t *testing.T) {
	ds := load(t, "a,b,c\n"+
		",,1\n"+
		",,1\n"+
		",1,1\n"+
		"1,1,1\n")
	prev := len(ds.Columns()) + 1
	for _, threshold := range []float64{0.1, 0.5, 0.8, 1.0} {
		n := len(classify.MajorityMissingColumns(ds, threshold))
		if n > prev {
			t.Errorf("threshold %v flagged %d columns, more than %d at a lower threshold", threshold, n, prev)
		}
		prev = n
	}
}

func TestMajorityMissingRows(t *testing.T) {
	// 4 columns, target excluded: threshold count = round(3*0.8) = 2.
	// Row 1 has 2 missing outside the target, row 2 has 3, row 0 none.
	ds := load(t, "a,b,c,label\n"+
		"1,2,3,x\n"+
		",,3,x\n"+
		",,,x\n")
	got := classify.MajorityMissingRows(ds, "label", 0.8)
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("MajorityMissingRows mismatch:\n%s", diff)
	}
}

func TestMajorityMissingRows_TargetNullsIgnored(t *testing.T) {
	// Nulls in the target column never count toward the row tally.
	ds := load(t, "a,b,label\n"+
		"1,2,\n"+
		",,\n")
	got := classify.MajorityMissingRows(ds, "label", 0.8)
	if diff := cmp.Diff([]int{1}, got); diff != "" {
		t.Errorf("MajorityMissingRows mismatch:\n%s", diff)
	}
}

func TestMajorityMissingRows_UnknownTargetCountsAllColumns(t *testing.T) {
	ds := load(t, "a,b\n"+
		",\n"+
		"1,\n")
	// No target: threshold count = round(2*0.8) = 2, only row 0 qualifies.
	got := classify.MajorityMissingRows(ds, "nosuch", 0.8)
	if diff := cmp.Diff([]int{0}, got); diff != "" {
		t.Errorf("MajorityMissingRows mismatch:\n%s", diff)
	}
}
