package gitctx

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner returns canned stdout per git subcommand and records every
// invocation.
type fakeRunner struct {
	logOut  string
	diffOut string
	showOut string
	err     error
	calls   [][]string
}

func (f *fakeRunner) run(_ context.Context, _ string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	if f.err != nil {
		return "", f.err
	}
	switch args[0] {
	case "log":
		return f.logOut, nil
	case "diff":
		return f.diffOut, nil
	case "show":
		return f.showOut, nil
	}
	return "", errors.New("unexpected git subcommand: " + args[0])
}

func newTestSource(f *fakeRunner, filters FilterOptions) *CLISource {
	s := NewCLISource("/repo", filters)
	s.run = f.run
	return s
}

func TestCLISource_Gather(t *testing.T) {
	runner := &fakeRunner{
		logOut:  "a1b2c3 Fix login crash\nd4e5f6 Update settings screen",
		diffOut: "App/Login.swift\nApp/Settings.swift",
	}
	source := newTestSource(runner, FilterOptions{})

	cc, err := source.Gather(context.Background(), "abc", "def")
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	if cc.CommitLog != runner.logOut {
		t.Errorf("CommitLog = %q, expected %q", cc.CommitLog, runner.logOut)
	}
	if cc.ChangedFiles != runner.diffOut {
		t.Errorf("ChangedFiles = %q, expected %q", cc.ChangedFiles, runner.diffOut)
	}

	if len(runner.calls) != 2 {
		t.Fatalf("git invocations = %d, expected 2", len(runner.calls))
	}
	wantLog := []string{"log", "--pretty=format:%h %s", "abc..def", "--"}
	if !equalArgs(runner.calls[0], wantLog) {
		t.Errorf("log args = %v, expected %v", runner.calls[0], wantLog)
	}
	wantDiff := []string{"diff", "--name-only", "abc..def", "--"}
	if !equalArgs(runner.calls[1], wantDiff) {
		t.Errorf("diff args = %v, expected %v", runner.calls[1], wantDiff)
	}
}

func TestCLISource_Gather_SingleRevisionRange(t *testing.T) {
	runner := &fakeRunner{
		logOut:  "a1b2c3 Fix login crash",
		diffOut: "App/Login.swift",
	}
	source := newTestSource(runner, FilterOptions{})

	if _, err := source.Gather(context.Background(), "abc", "abc"); err != nil {
		t.Fatalf("Gather: %v", err)
	}

	for _, call := range runner.calls {
		for _, arg := range call {
			if strings.Contains(arg, "..") {
				t.Errorf("git args %v contain a range expression for equal revisions", call)
			}
		}
	}
}

func TestCLISource_Gather_EmptyLogFallsBackToShow(t *testing.T) {
	runner := &fakeRunner{
		logOut:  "",
		diffOut: "App/Login.swift",
		showOut: "d4e5f6 Release 2.0",
	}
	source := newTestSource(runner, FilterOptions{})

	cc, err := source.Gather(context.Background(), "abc", "def")
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	if cc.CommitLog != "d4e5f6 Release 2.0" {
		t.Errorf("CommitLog = %q, expected the single-revision description", cc.CommitLog)
	}
	if len(runner.calls) != 3 {
		t.Fatalf("git invocations = %d, expected 3", len(runner.calls))
	}
	wantShow := []string{"show", "--pretty=format:%h %s", "--no-patch", "def"}
	if !equalArgs(runner.calls[2], wantShow) {
		t.Errorf("show args = %v, expected %v", runner.calls[2], wantShow)
	}
}

func TestCLISource_Gather_EmptyFileListUsesPlaceholder(t *testing.T) {
	runner := &fakeRunner{
		logOut:  "a1b2c3 Fix login crash",
		diffOut: "",
	}
	source := newTestSource(runner, FilterOptions{})

	cc, err := source.Gather(context.Background(), "abc", "def")
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	if cc.ChangedFiles != NoChangesPlaceholder {
		t.Errorf("ChangedFiles = %q, expected %q", cc.ChangedFiles, NoChangesPlaceholder)
	}
}

func TestCLISource_Gather_FiltersBeforePlaceholder(t *testing.T) {
	runner := &fakeRunner{
		logOut:  "a1b2c3 Regenerate project",
		diffOut: "Generated/Strings.swift\nGenerated/Assets.swift",
	}
	source := newTestSource(runner, FilterOptions{Exclude: []string{"Generated/**"}})

	cc, err := source.Gather(context.Background(), "abc", "def")
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	if cc.ChangedFiles != NoChangesPlaceholder {
		t.Errorf("ChangedFiles = %q, expected placeholder after filtering", cc.ChangedFiles)
	}
}

func TestCLISource_Gather_ProcessErrorPropagates(t *testing.T) {
	procErr := &ProcessError{
		Args:   []string{"log", "--pretty=format:%h %s", "abc..def", "--"},
		Stderr: "fatal: bad revision 'abc..def'",
		Err:    errors.New("exit status 128"),
	}
	source := newTestSource(&fakeRunner{err: procErr}, FilterOptions{})

	_, err := source.Gather(context.Background(), "abc", "def")

	var pe *ProcessError
	if !errors.As(err, &pe) {
		t.Fatalf("Gather error = %v, expected *ProcessError", err)
	}
	if !strings.Contains(pe.Error(), "bad revision") {
		t.Errorf("ProcessError message = %q, expected captured stderr", pe.Error())
	}
}

func equalArgs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
