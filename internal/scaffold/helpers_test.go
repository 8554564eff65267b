package scaffold

import (
	"context"
	"fmt"
	"testing/fstest"

	"github.com/opmodel/create-vite/internal/prompt"
)

// useDefault makes scriptedPrompter answer a text question with its default.
const useDefault = "\x00default"

// scriptedPrompter answers questions from fixed lists and records what was asked.
type scriptedPrompter struct {
	texts    []string
	confirms []bool

	textQuestions    []prompt.TextQuestion
	confirmQuestions []prompt.ConfirmQuestion
}

func (p *scriptedPrompter) Text(q prompt.TextQuestion) (string, error) {
	p.textQuestions = append(p.textQuestions, q)
	if len(p.texts) == 0 {
		return "", fmt.Errorf("unexpected text prompt %q", q.Message)
	}
	answer := p.texts[0]
	p.texts = p.texts[1:]
	if answer == useDefault {
		return q.Default, nil
	}
	return answer, nil
}

func (p *scriptedPrompter) Confirm(q prompt.ConfirmQuestion) (bool, error) {
	p.confirmQuestions = append(p.confirmQuestions, q)
	if len(p.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt %q", q.Message)
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *scriptedPrompter) confirmMessages() []string {
	msgs := make([]string, 0, len(p.confirmQuestions))
	for _, q := range p.confirmQuestions {
		msgs = append(msgs, q.Message)
	}
	return msgs
}

// abortingPrompter behaves like a user pressing ctrl+c at the first question.
type abortingPrompter struct{}

func (abortingPrompter) Text(prompt.TextQuestion) (string, error)     { return "", prompt.ErrAborted }
func (abortingPrompter) Confirm(prompt.ConfirmQuestion) (bool, error) { return false, prompt.ErrAborted }

// recordingRunner records commands instead of running them.
type recordingRunner struct {
	calls []runnerCall
	err   error

	// errs, when set, holds the result of each call in order.
	errs []error
}

type runnerCall struct {
	dir  string
	argv []string
}

func (r *recordingRunner) Run(_ context.Context, dir string, argv []string) error {
	r.calls = append(r.calls, runnerCall{dir: dir, argv: argv})
	if i := len(r.calls) - 1; i < len(r.errs) {
		return r.errs[i]
	}
	return r.err
}

// testTemplate is a small template exercising renames, nesting and the manifest.
func testTemplate() fstest.MapFS {
	return fstest.MapFS{
		"package.json": &fstest.MapFile{Data: []byte(`{
  // starter manifest
  "name": "vite-starter",
  "version": "0.0.0",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
  },
  "devDependencies": {
    "vite": "^2.0.0"
  }
}`)},
		"_gitignore":       &fstest.MapFile{Data: []byte("node_modules\ndist\n")},
		"index.html":       &fstest.MapFile{Data: []byte("<!DOCTYPE html>\n<div id=\"app\"></div>\n")},
		"src/main.js":      &fstest.MapFile{Data: []byte("console.log('hi')\n")},
		"src/lib/util.js":  &fstest.MapFile{Data: []byte("export const x = 1\n")},
		"scripts/setup.sh": &fstest.MapFile{Data: []byte("#!/bin/sh\necho ok\n"), Mode: 0o755},
	}
}
