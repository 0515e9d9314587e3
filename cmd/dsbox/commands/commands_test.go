package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aayushsanghavi/dsbox/internal/classify"
	"github.com/aayushsanghavi/dsbox/internal/pipeline"
)

const sampleCSV = "user_id,constant,flag,score\n" +
	"1,a,Y,10\n" +
	"2,a,N,20\n" +
	"3,a,Y,30\n"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRunCleanupAuto(t *testing.T) {
	in := writeSample(t)
	out := filepath.Join(t.TempDir(), "clean.csv")

	opts := pipeline.DefaultOptions()
	if err := runCleanup(in, out, opts); err != nil {
		t.Fatalf("runCleanup: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(data)
	if strings.Contains(got, "user_id") || strings.Contains(got, "constant") {
		t.Errorf("identifier and single-value columns must be dropped, got:\n%s", got)
	}
	if !strings.Contains(got, "flag") || !strings.Contains(got, "score") {
		t.Errorf("surviving columns missing, got:\n%s", got)
	}
}

func TestRunPreprocessAuto(t *testing.T) {
	in := writeSample(t)
	out := filepath.Join(t.TempDir(), "prep.csv")

	if err := runPreprocess(in, out, true); err != nil {
		t.Fatalf("runPreprocess: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "true") || !strings.Contains(got, "false") {
		t.Errorf("boolean values not rewritten, got:\n%s", got)
	}
	if strings.Contains(got, ",Y,") || strings.Contains(got, ",N,") {
		t.Errorf("raw boolean encodings left behind, got:\n%s", got)
	}
}

func TestRunInspect(t *testing.T) {
	in := writeSample(t)
	out := filepath.Join(t.TempDir(), "report.yaml")

	err := runInspect(in, out, classify.DefaultMissingThreshold, classify.DefaultMissingThreshold, "")
	if err != nil {
		t.Fatalf("runInspect: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(data)
	for _, fragment := range []string{"singleValueColumns", "constant", "identifierColumns", "user_id", "booleanColumns", "flag"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("report missing %q, got:\n%s", fragment, got)
		}
	}

	// Inspect must not touch the input file.
	after, err := os.ReadFile(in)
	if err != nil {
		t.Fatalf("re-read input: %v", err)
	}
	if string(after) != sampleCSV {
		t.Error("inspect modified the input dataset")
	}
}
