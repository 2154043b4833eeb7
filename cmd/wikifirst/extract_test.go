package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/linkgraph/wikifirst/internal/config"
	"github.com/linkgraph/wikifirst/internal/model"
)

// writeTestDump writes dump content to a temp file and returns its path.
func writeTestDump(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// testPage builds one <page> block with a single revision.
func testPage(title, text string) string {
	return "<page>\n" +
		"  <title>" + title + "</title>\n" +
		"  <revision>\n" +
		"    <text>" + text + "</text>\n" +
		"  </revision>\n" +
		"</page>\n"
}

// TestNewExtractCmd tests the extract command creation.
func TestNewExtractCmd(t *testing.T) {
	t.Parallel()

	cmd := NewExtractCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "extract [dump-file...]" {
			t.Errorf("expected use 'extract [dump-file...]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has limit flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("limit")
		if flag == nil {
			t.Fatal("expected limit flag")
		}
		if flag.Shorthand != "l" {
			t.Errorf("expected shorthand 'l', got %q", flag.Shorthand)
		}
	})

	t.Run("has strict flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("strict")
		if flag == nil {
			t.Fatal("expected strict flag")
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has skip-file-links flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("skip-file-links") == nil {
			t.Fatal("expected skip-file-links flag")
		}
	})

	t.Run("has disambiguation-suffix flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("disambiguation-suffix")
		if flag == nil {
			t.Fatal("expected disambiguation-suffix flag")
		}
		if flag.DefValue != config.DefaultDisambiguationSuffix {
			t.Errorf("expected default %q, got %q", config.DefaultDisambiguationSuffix, flag.DefValue)
		}
	})

	t.Run("has batch flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("batch")
		if flag == nil {
			t.Fatal("expected batch flag")
		}
		if flag.Shorthand != "b" {
			t.Errorf("expected shorthand 'b', got %q", flag.Shorthand)
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})

	t.Run("has report flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"json", "markdown", "output"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

// TestBuildConfig tests config construction from flags.
func TestBuildConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd := NewExtractCmd()
		if err := cmd.ParseFlags([]string{}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"dump.xml"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Limit != config.DefaultLimit {
			t.Errorf("expected default limit, got %d", cfg.Limit)
		}
		if cfg.BatchSize != config.DefaultBatchSize {
			t.Errorf("expected default batch size, got %d", cfg.BatchSize)
		}
		if cfg.Strict {
			t.Error("expected strict to default to false")
		}
		if len(cfg.Inputs) != 1 || cfg.Inputs[0] != "dump.xml" {
			t.Errorf("expected inputs from args, got %v", cfg.Inputs)
		}
	})

	t.Run("flags override defaults", func(t *testing.T) {
		cmd := NewExtractCmd()
		if err := cmd.ParseFlags([]string{"--limit", "5", "--strict", "--batch", "3"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"a.xml", "b.xml"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Limit != 5 {
			t.Errorf("expected limit 5, got %d", cfg.Limit)
		}
		if !cfg.Strict {
			t.Error("expected strict to be set")
		}
		if cfg.BatchSize != 3 {
			t.Errorf("expected batch size 3, got %d", cfg.BatchSize)
		}
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		cmd := NewExtractCmd()
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if err := cmd.ParseFlags([]string{"-c", missing}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd, []string{"dump.xml"}); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("config file overrides are loaded", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		content := "defaults:\n  limit: 7\ndumps:\n  special.xml:\n    strict: true\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewExtractCmd()
		if err := cmd.ParseFlags([]string{"-c", configPath}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"special.xml"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		settings := cfg.ForInput("special.xml")
		if settings.Limit != 7 {
			t.Errorf("expected limit 7 from defaults, got %d", settings.Limit)
		}
		if !settings.Strict {
			t.Error("expected strict from per-dump override")
		}
	})
}

// TestRunExtractCmd runs the command end to end over real dump files.
func TestRunExtractCmd(t *testing.T) {
	t.Run("plain output streams records", func(t *testing.T) {
		dump := writeTestDump(t, "dump.xml",
			testPage("Philosophy", "'''Philosophy''' is the study of [[Knowledge]].")+
				testPage("Redirected", "#REDIRECT [[Philosophy]]"))
		outputPath := filepath.Join(t.TempDir(), "out.txt")

		cmd := NewExtractCmd()
		cmd.SetArgs([]string{"-o", outputPath, dump})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}
		got := string(content)
		if got != "Philosophy -> Knowledge\n" {
			t.Errorf("unexpected output: %q", got)
		}
	})

	t.Run("json report", func(t *testing.T) {
		dump := writeTestDump(t, "dump.xml",
			testPage("Go", "'''Go''' is a [[Programming language]]."))
		outputPath := filepath.Join(t.TempDir(), "report.json")

		cmd := NewExtractCmd()
		cmd.SetArgs([]string{"-j", "-o", outputPath, dump})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}
		var got model.ExtractReport
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("invalid JSON report: %v", err)
		}
		if got.Emitted() != 1 {
			t.Errorf("expected 1 record, got %d", got.Emitted())
		}
		if got.Records[0].Link != "Programming language" {
			t.Errorf("unexpected link: %q", got.Records[0].Link)
		}
	})

	t.Run("markdown report", func(t *testing.T) {
		dump := writeTestDump(t, "dump.xml",
			testPage("Go", "'''Go''' is a [[Programming language]]."))
		outputPath := filepath.Join(t.TempDir(), "report.md")

		cmd := NewExtractCmd()
		cmd.SetArgs([]string{"-m", "-o", outputPath, dump})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "First Link Extraction Report") {
			t.Error("expected Markdown report heading")
		}
	})

	t.Run("batch mode keeps per-dump output whole", func(t *testing.T) {
		dumpA := writeTestDump(t, "a.xml",
			testPage("Alpha", "Prose [[One]]."))
		dumpB := writeTestDump(t, "b.xml",
			testPage("Beta", "Prose [[Two]]."))
		outputPath := filepath.Join(t.TempDir(), "out.txt")

		cmd := NewExtractCmd()
		cmd.SetArgs([]string{"-b", "2", "-o", outputPath, dumpA, dumpB})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatal(err)
		}
		got := string(content)
		if !strings.Contains(got, "Alpha -> One\n") || !strings.Contains(got, "Beta -> Two\n") {
			t.Errorf("expected both dumps in output, got %q", got)
		}
	})

	t.Run("missing dump file fails", func(t *testing.T) {
		cmd := NewExtractCmd()
		cmd.SetArgs([]string{"/nonexistent/dump.xml"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing dump file")
		}
	})

	t.Run("no input fails", func(t *testing.T) {
		cmd := NewExtractCmd()
		cmd.SetArgs([]string{})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error without input files")
		}
	})

	t.Run("conflicting report formats fail", func(t *testing.T) {
		cmd := NewExtractCmd()
		cmd.SetArgs([]string{"-j", "-m", "dump.xml"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for conflicting report formats")
		}
	})
}
