package openscad

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gocloset/pkg/assembly"
)

// ErrNotInstalled is returned when openscad is not on the PATH
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// Renderer runs the openscad binary
type Renderer struct {
	workDir string
	binary  string
}

// NewRenderer creates a renderer that keeps intermediate files in workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
		binary:  "openscad",
	}
}

// Available reports whether openscad can be found
func (r *Renderer) Available() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// Render writes the assembly as SCAD next to outputFile and lets
// openscad convert it. The output format follows outputFile's extension.
func (r *Renderer) Render(ctx context.Context, a *assembly.Assembly, outputFile string) error {
	if !r.Available() {
		return ErrNotInstalled
	}

	scadFile := filepath.Join(r.workDir, strings.TrimSuffix(filepath.Base(outputFile), filepath.Ext(outputFile))+".scad")
	f, err := os.Create(scadFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", scadFile, err)
	}
	if err := Write(f, a); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", scadFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", scadFile, err)
	}

	return r.RenderFile(ctx, scadFile, outputFile)
}

// RenderFile converts an existing SCAD file
func (r *Renderer) RenderFile(ctx context.Context, scadFile, outputFile string) error {
	absScadFile := scadFile
	if !filepath.IsAbs(scadFile) {
		absScadFile = filepath.Join(r.workDir, scadFile)
	}

	cmd := exec.CommandContext(ctx, r.binary, "-o", outputFile, absScadFile)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		fmt.Fprintf(&errMsg, "failed to render %s: %v", scadFile, err)
		if stderr.Len() > 0 {
			errMsg.WriteString("\nstderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("\nstdout: ")
			errMsg.WriteString(stdout.String())
		}
		return errors.New(errMsg.String())
	}
	return nil
}
