package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command in an empty temp dir in demo mode.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("SEEDCHECK_ANALYSIS_DEMO_DELAY", "0s")
	t.Setenv("SEEDCHECK_LOG_LEVEL", "error")

	t.Cleanup(func() {
		os.Chdir(origDir) //nolint:errcheck
		configPath = ""
		analyzeAnswers, analyzeDeck, analyzeDeckText = "", "", ""
		parseDeckTextOnly = false
		questionsSection, questionsJSON = "", false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"serve", "analyze", "parse-deck", "questions"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "seedcheck", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestAnalyzeCommand_Flags(t *testing.T) {
	for _, name := range []string{"answers", "deck", "deck-text"} {
		assert.NotNil(t, analyzeCmd.Flags().Lookup(name), "analyze should have --%s flag", name)
	}
}

func TestReadAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a1": "Acme", "d1_value": 12000, "e1": [{"name": "Ana", "role": "CEO"}]}`), 0644))

	answers, err := readAnswers(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", answers["a1"].Text)
	assert.Equal(t, "12000", answers["d1_value"].Text)
	require.True(t, answers["e1"].IsList())
	assert.Equal(t, "Ana", answers["e1"].Founders[0].Name)
}

func TestReadAnswers_Stdin(t *testing.T) {
	answers, err := readAnswers(strings.NewReader(`{"a2": "B2B invoicing"}`), "-")
	require.NoError(t, err)
	assert.Equal(t, "B2B invoicing", answers["a2"].Text)
}

func TestReadAnswers_Empty(t *testing.T) {
	answers, err := readAnswers(nil, "")
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestReadAnswers_Rejects(t *testing.T) {
	_, err := readAnswers(strings.NewReader(`["not", "an", "object"]`), "-")
	assert.ErrorContains(t, err, "decode answers")

	_, err = readAnswers(strings.NewReader(`{"bad id!": "x"}`), "-")
	assert.ErrorContains(t, err, "validate answers")

	_, err = readAnswers(nil, filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read answers")
}

func TestAnalyzeCommand_DemoMode(t *testing.T) {
	dir := t.TempDir()
	answersPath := filepath.Join(dir, "answers.json")
	require.NoError(t, os.WriteFile(answersPath, []byte(`{"a1": "Acme"}`), 0644))
	deckTextPath := filepath.Join(dir, "deck.txt")
	require.NoError(t, os.WriteFile(deckTextPath, []byte("Slide 1: hello"), 0644))

	out, err := runCLI(t, "analyze", "--answers", answersPath, "--deck-text", deckTextPath)
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "demo", res["mode"])
	assert.EqualValues(t, 62, res["overallScore"])
	assert.Equal(t, "Needs Work", res["label"])
	assert.Len(t, res["dimensions"], 4)
}

func TestAnalyzeCommand_DeckTextIsAFile(t *testing.T) {
	_, err := runCLI(t, "analyze", "--deck-text", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read deck text")
}

func TestAnalyzeCommand_DeckFlagsExclusive(t *testing.T) {
	_, err := runCLI(t, "analyze", "--deck", "pitch.pdf", "--deck-text", "x")
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestQuestionsCommand_Section(t *testing.T) {
	out, err := runCLI(t, "questions", "--section", "b")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "B. "))
	assert.Contains(t, out, "b4_price")
	assert.NotContains(t, out, "a1 ")
}

func TestQuestionsCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "questions", "--json")
	require.NoError(t, err)

	var resp struct {
		Sections  []map[string]any `json:"sections"`
		Questions []map[string]any `json:"questions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Sections, 5)
	assert.Len(t, resp.Questions, 18)
}

func TestQuestionsCommand_UnknownSection(t *testing.T) {
	_, err := runCLI(t, "questions", "--section", "Z")
	assert.ErrorContains(t, err, `unknown section "Z"`)
}

func TestParseDeckCommand_PPTX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	slides := map[string]string{
		"ppt/slides/slide1.xml": `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><a:p><a:r><a:t>Acme Invoicing</a:t></a:r></a:p></p:sld>`,
		"ppt/slides/slide2.xml": `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><a:p><a:r><a:t>Traction: 40% MoM</a:t></a:r></a:p></p:sld>`,
	}
	for name, body := range slides {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	deckPath := filepath.Join(t.TempDir(), "Pitch.PPTX")
	require.NoError(t, os.WriteFile(deckPath, buf.Bytes(), 0644))

	out, err := runCLI(t, "parse-deck", deckPath)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "Pitch.PPTX", parsed["fileName"])
	assert.Equal(t, "pptx", parsed["fileType"])
	assert.EqualValues(t, 2, parsed["slideCount"])
	assert.Contains(t, parsed["rawText"], "Traction: 40% MoM")
}

func TestParseDeckCommand_Unsupported(t *testing.T) {
	deckPath := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(deckPath, []byte("hello"), 0644))

	_, err := runCLI(t, "parse-deck", deckPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse deck")
}
