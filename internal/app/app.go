// Package app implements the application layer for nupin.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/nupin/internal/core/domain"
	"go.trai.ch/nupin/internal/core/ports"
	"go.trai.ch/nupin/internal/engine/pinner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	pinner    *pinner.Pinner
	plans     ports.PlanLoader
	opener    ports.PackageOpener
	editor    ports.ManifestEditor
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	p *pinner.Pinner,
	plans ports.PlanLoader,
	opener ports.PackageOpener,
	editor ports.ManifestEditor,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		pinner:    p,
		plans:     plans,
		opener:    opener,
		editor:    editor,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Pin pins the given dependency ids inside one package.
func (a *App) Pin(ctx context.Context, path string, ids []string) (*domain.PinResult, error) {
	done := a.observe(ctx)(path)
	res, err := a.pinner.PinMany(ctx, path, ids...)
	done(res, err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to pin package")
	}
	return res, nil
}

// Apply loads the pin plan at planPath and pins every package it names.
func (a *App) Apply(ctx context.Context, planPath string) ([]*domain.PinResult, error) {
	requests, err := a.plans.Load(planPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load pin plan")
	}

	results, err := a.pinner.PinAll(ctx, requests, a.observe(ctx))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to apply pin plan")
	}
	return results, nil
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// observe records one vertex per package and reports every rewritten dependency.
func (a *App) observe(ctx context.Context) pinner.Observer {
	return func(path string) func(*domain.PinResult, error) {
		vertex := a.telemetry.Record(ctx, path)
		return func(res *domain.PinResult, err error) {
			if err != nil {
				vertex.Complete(err)
				return
			}
			a.report(vertex, res)
			vertex.Complete(nil)
		}
	}
}

func (a *App) report(vertex ports.Vertex, res *domain.PinResult) {
	if len(res.Dependencies) == 0 {
		vertex.Log(domain.LogLevelInfo, "no matching dependency")
	}

	for _, d := range res.Dependencies {
		if !d.Changed() {
			vertex.Log(domain.LogLevelDebug, fmt.Sprintf("%s already pinned to %s", d.ID, d.Pinned))
			continue
		}
		msg := fmt.Sprintf("%s: pinned %s%s %s -> %s", res.Package, d.ID, frameworkSuffix(d.TargetFramework), d.Previous, d.Pinned)
		vertex.Log(domain.LogLevelInfo, msg)
		a.logger.Info(msg)
	}

	if !res.Changed {
		vertex.Cached()
		return
	}
	if res.Signed {
		msg := res.Package + ": package was signed, the signature no longer matches and must be reapplied"
		vertex.Log(domain.LogLevelWarn, msg)
		a.logger.Warn(msg)
	}
}

func frameworkSuffix(tfm string) string {
	if tfm == "" {
		return ""
	}
	return " (" + tfm + ")"
}

// Inspect writes the manifest summary and dependency table of the package at path to w.
func (a *App) Inspect(ctx context.Context, path string, w io.Writer) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	archive, err := a.opener.Open(path)
	if err != nil {
		return zerr.Wrap(err, "failed to open package")
	}
	defer func() {
		err = errors.Join(err, archive.Close())
	}()

	entries := archive.Entries()
	manifest, err := domain.FindManifest(entries)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to locate manifest"), "path", path)
	}

	data, err := archive.ReadEntry(manifest)
	if err != nil {
		return err
	}

	deps, err := a.editor.Dependencies(data)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	return render(w, path, manifest, domain.Digest(data), domain.IsSigned(entries), deps)
}

var labelStyle = lipgloss.NewStyle().Bold(true)

func render(w io.Writer, path, manifest, digest string, signed bool, deps []domain.Dependency) error {
	signedText := "no"
	if signed {
		signedText = "yes"
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Package:  ")+path,
		labelStyle.Render("Manifest: ")+manifest,
		labelStyle.Render("Digest:   ")+digest,
		labelStyle.Render("Signed:   ")+signedText,
	)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	if len(deps) == 0 {
		_, err := fmt.Fprintln(w, "no dependencies")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DEPENDENCY", "VERSION", "TARGET FRAMEWORK", "PINNED")
	for _, d := range deps {
		pinned := "no"
		if domain.IsPinned(d.Version) {
			pinned = "yes"
		}
		t.Row(d.ID, d.Version, d.TargetFramework, pinned)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
