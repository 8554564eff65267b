package scaffold

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/create-vite/internal/errors"
	"github.com/opmodel/create-vite/internal/prompt"
	"github.com/opmodel/create-vite/internal/testutil"
)

func readManifestName(t *testing.T, root string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, ManifestFile))
	require.NoError(t, err)
	m, err := ParseManifest(data)
	require.NoError(t, err)
	return m.Name()
}

func TestRun_NewProjectWithoutInstall(t *testing.T) {
	cwd := t.TempDir()
	p := &scriptedPrompter{confirms: []bool{false}}
	runner := &recordingRunner{}
	var out bytes.Buffer

	res, err := Run(context.Background(), Request{
		ProjectName: "my-app",
		Cwd:         cwd,
		Template:    testTemplate(),
	}, Deps{Prompter: p, Runner: runner, Out: &out})

	require.NoError(t, err)
	root := filepath.Join(cwd, "my-app")
	assert.Equal(t, root, res.Target.Root)
	assert.Equal(t, "my-app", res.PackageName)
	assert.Equal(t, "npm", res.PackageManager.Name)
	assert.False(t, res.Started)

	assert.Empty(t, p.textQuestions)
	assert.Equal(t, []string{"Install and start it now?"}, p.confirmMessages())
	assert.Empty(t, runner.calls)

	assert.Equal(t, "my-app", readManifestName(t, root))
	assert.FileExists(t, filepath.Join(root, ".gitignore"))

	text := out.String()
	assert.Contains(t, text, "Scaffolding project in "+root)
	assert.Contains(t, text, "Done. Now run:")
	assert.Contains(t, text, "cd my-app")
	assert.Contains(t, text, "npm run dev")
}

func TestRun_PromptsForProjectName(t *testing.T) {
	cwd := t.TempDir()
	p := &scriptedPrompter{texts: []string{useDefault}, confirms: []bool{false}}

	res, err := Run(context.Background(), Request{
		Cwd:      cwd,
		Template: testTemplate(),
	}, Deps{Prompter: p, Runner: &recordingRunner{}, Out: &bytes.Buffer{}})

	require.NoError(t, err)
	assert.Equal(t, "vite-demo", res.Target.Name)
	assert.Equal(t, "vite-demo", readManifestName(t, filepath.Join(cwd, "vite-demo")))
}

func TestRun_InvalidDirectoryNameAsksForPackageName(t *testing.T) {
	cwd := t.TempDir()
	p := &scriptedPrompter{texts: []string{useDefault}, confirms: []bool{false}}

	res, err := Run(context.Background(), Request{
		ProjectName: "My Cool App!",
		Cwd:         cwd,
		Template:    testTemplate(),
	}, Deps{Prompter: p, Runner: &recordingRunner{}, Out: &bytes.Buffer{}})

	require.NoError(t, err)
	require.Len(t, p.textQuestions, 1)
	assert.Equal(t, "Package name:", p.textQuestions[0].Message)
	assert.Equal(t, "my-cool-app", res.PackageName)

	root := filepath.Join(cwd, "My Cool App!")
	assert.Equal(t, "my-cool-app", readManifestName(t, root), "directory keeps the typed name")
}

func TestRun_DeclinedOverwriteLeavesDirectoryUntouched(t *testing.T) {
	cwd := t.TempDir()
	root := filepath.Join(cwd, "my-app")
	testutil.WriteFile(t, filepath.Join(root, "leftover.txt"), "keep me")
	runner := &recordingRunner{}
	var out bytes.Buffer

	res, err := Run(context.Background(), Request{
		ProjectName: "my-app",
		Cwd:         cwd,
		Template:    testTemplate(),
	}, Deps{Prompter: &scriptedPrompter{confirms: []bool{false}}, Runner: runner, Out: &out})

	assert.ErrorIs(t, err, ErrAborted)
	assert.Nil(t, res)
	assert.Equal(t, []string{"leftover.txt"}, testutil.ListDir(t, root))
	assert.Empty(t, runner.calls)
	assert.Empty(t, out.String(), "an abort prints nothing")
}

func TestRun_LinePromptsDeclineOverwrite(t *testing.T) {
	cwd := t.TempDir()
	root := filepath.Join(cwd, "my-app")
	testutil.WriteFile(t, filepath.Join(root, "leftover.txt"), "keep me")
	runner := &recordingRunner{}
	var out bytes.Buffer

	_, err := Run(context.Background(), Request{
		Cwd:      cwd,
		Template: testTemplate(),
	}, Deps{
		Prompter: prompt.NewHuhPrompter(strings.NewReader("my-app\nn\n"), &out, true),
		Runner:   runner,
		Out:      &out,
	})

	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, []string{"leftover.txt"}, testutil.ListDir(t, root))
	assert.Empty(t, runner.calls)
}

func TestRun_ConfirmedOverwriteAndInstall(t *testing.T) {
	cwd := t.TempDir()
	root := filepath.Join(cwd, "my-app")
	testutil.WriteFile(t, filepath.Join(root, "leftover.txt"), "stale")
	testutil.WriteFile(t, filepath.Join(root, "src", "old.js"), "stale")
	p := &scriptedPrompter{confirms: []bool{true, true}}
	runner := &recordingRunner{}

	res, err := Run(context.Background(), Request{
		ProjectName: "my-app",
		Cwd:         cwd,
		Template:    testTemplate(),
		Env:         map[string]string{userAgentEnv: "pnpm/8.6.0 npm/? node/v18.16.0 linux x64"},
	}, Deps{Prompter: p, Runner: runner, Out: &bytes.Buffer{}})

	require.NoError(t, err)
	assert.Equal(t, DirNonEmpty, res.Target.State)
	assert.True(t, res.Started)
	assert.Equal(t, "pnpm@8.6.0", res.PackageManager.String())

	assert.Equal(t, []string{
		"Remove existing files and continue?",
		"Install and start it now?",
	}, p.confirmMessages())

	assert.NoFileExists(t, filepath.Join(root, "leftover.txt"))
	assert.NoFileExists(t, filepath.Join(root, "src", "old.js"))
	assert.ElementsMatch(t, []string{".gitignore", "index.html", "package.json", "scripts", "src"}, testutil.ListDir(t, root))

	assert.Equal(t, []runnerCall{
		{dir: root, argv: []string{"pnpm", "install"}},
		{dir: root, argv: []string{"pnpm", "dev"}},
	}, runner.calls)
}

func TestRun_PackageManagerOverride(t *testing.T) {
	cwd := t.TempDir()
	runner := &recordingRunner{}

	res, err := Run(context.Background(), Request{
		ProjectName:    "my-app",
		Cwd:            cwd,
		Template:       testTemplate(),
		PackageManager: "bun",
	}, Deps{Prompter: &scriptedPrompter{confirms: []bool{true}}, Runner: runner, Out: &bytes.Buffer{}})

	require.NoError(t, err)
	assert.Equal(t, "bun", res.PackageManager.Name)
	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"bun", "run", "dev"}, runner.calls[1].argv)
}

func TestRun_SubprocessFailurePropagates(t *testing.T) {
	boom := oerrors.NewSubprocessError("npm install", "/x", errors.New("exit status 1"))

	_, err := Run(context.Background(), Request{
		ProjectName: "my-app",
		Cwd:         t.TempDir(),
		Template:    testTemplate(),
	}, Deps{
		Prompter: &scriptedPrompter{confirms: []bool{true}},
		Runner:   &recordingRunner{err: boom},
		Out:      &bytes.Buffer{},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrSubprocess)
}

func TestRun_AbortAtAnyPrompt(t *testing.T) {
	cwd := t.TempDir()

	_, err := Run(context.Background(), Request{
		Cwd:      cwd,
		Template: testTemplate(),
	}, Deps{Prompter: abortingPrompter{}, Runner: &recordingRunner{}, Out: &bytes.Buffer{}})

	assert.ErrorIs(t, err, ErrAborted)
	assert.Empty(t, testutil.ListDir(t, cwd))
}
