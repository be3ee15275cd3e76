package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	infra_asset "github.com/amirasaad/badges/infra/asset"
	infra_provider "github.com/amirasaad/badges/infra/provider"
	"github.com/amirasaad/badges/pkg/app"
	"github.com/amirasaad/badges/pkg/config"
	"github.com/amirasaad/badges/pkg/domain/badge"
	"github.com/amirasaad/badges/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func testLoader(t *testing.T, status int, body string) appLoader {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "font.ttf"), goregular.TTF, 0o600))

	return func(string, io.Writer) (*app.App, error) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		cfg := &config.App{
			Upstream: &config.Upstream{ApiUrl: srv.URL, HTTPTimeout: time.Second, MaxBodyBytes: 4096},
			Assets:   &config.Assets{Dir: dir, FontName: "font.ttf", FontFamily: "Go"},
		}
		deps := &app.Deps{
			MetadataProvider: infra_provider.NewFundingAPIProvider(cfg.Upstream, logger),
			FontLoader:       infra_asset.NewDirLoader(dir, logger),
			Renderer:         render.New(cfg.Assets.FontFamily, logger),
			Logger:           logger,
		}
		return app.New(deps, cfg), nil
	}
}

func TestRenderCmd(t *testing.T) {
	envFile := ""
	cmd := newRenderCmd(&envFile, testLoader(t, http.StatusOK,
		`{"badge_type":"funding","width":300,"height":60,"amount":{"currency":"EUR","amount":2500}}`))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--org", "acme", "--repo", "widgets", "--number", "7", "--debug"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), `width="300"`)
	assert.Contains(t, stdout.String(), `id="debug-overlay"`)
	assert.Contains(t, stderr.String(), "acme/widgets#7 300x60 show_amount=true")
}

func TestRenderCmd_WritesFile(t *testing.T) {
	envFile := ""
	out := filepath.Join(t.TempDir(), "badge.svg")
	cmd := newRenderCmd(&envFile, testLoader(t, http.StatusOK,
		`{"badge_type":"funding","width":120,"height":20,"amount":null}`))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--org", "acme", "--repo", "widgets", "--number", "7", "--out", out})

	require.NoError(t, cmd.Execute())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `data-show-amount="false"`)
}

func TestRenderCmd_UpstreamFailure(t *testing.T) {
	envFile := ""
	cmd := newRenderCmd(&envFile, testLoader(t, http.StatusServiceUnavailable, ""))
	var stderr bytes.Buffer
	cmd.SetOut(io.Discard)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--org", "acme", "--repo", "widgets", "--number", "7"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, badge.ErrUpstreamUnavailable)
	assert.Contains(t, stderr.String(), "failed in fetching_metadata")
}

func TestRenderCmd_RequiresFlags(t *testing.T) {
	envFile := ""
	cmd := newRenderCmd(&envFile, testLoader(t, http.StatusOK, "{}"))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--org", "acme"})

	assert.Error(t, cmd.Execute())
}

func TestFallbackCmd(t *testing.T) {
	cmd := newFallbackCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, render.Fallback(), stdout.Bytes())
}

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()
	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "render")
	assert.Contains(t, names, "fallback")
}
