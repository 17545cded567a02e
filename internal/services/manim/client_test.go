package manim_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"proofsheet/internal/services"
	"proofsheet/internal/services/manim"
)

type fakeExecutor struct {
	binary string
	args   []string
	err    error
}

func (f *fakeExecutor) Run(ctx context.Context, binary string, args []string, onOutput func(string)) error {
	f.binary = binary
	f.args = args
	return f.err
}

func TestRenderArguments(t *testing.T) {
	exec := &fakeExecutor{}
	client, err := manim.New("manim", "l", 60, manim.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := client.Render(context.Background(), "hello_world.py", "HelloWorld", 2); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if exec.binary != "manim" {
		t.Fatalf("binary = %q", exec.binary)
	}
	joined := strings.Join(exec.args, " ")
	for _, want := range []string{"-ql", "--fps 2", "--format=png", "--silent", "hello_world.py HelloWorld"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}
}

func TestRenderFailureWrapsExternalTool(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 1")}
	client, err := manim.New("manim", "l", 60, manim.WithExecutor(exec))
	if err != nil {
		t.Fatal(err)
	}

	renderErr := client.Render(context.Background(), "hello_world.py", "HelloWorld", 2)
	if !errors.Is(renderErr, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", renderErr)
	}
}

func TestRenderValidation(t *testing.T) {
	client, err := manim.New("manim", "l", 60, manim.WithExecutor(&fakeExecutor{}))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := client.Render(ctx, "", "Scene", 2); err == nil {
		t.Error("empty source path should fail")
	}
	if err := client.Render(ctx, "file.py", "", 2); err == nil {
		t.Error("empty scene name should fail")
	}
	if err := client.Render(ctx, "file.py", "Scene", 0); err == nil {
		t.Error("zero fps should fail")
	}
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := manim.New("", "l", 60); err == nil {
		t.Fatal("expected error for empty binary")
	}
}
