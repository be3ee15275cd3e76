package badge_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/badges/pkg/domain/badge"
	"github.com/amirasaad/badges/pkg/render"
	badgesvc "github.com/amirasaad/badges/pkg/service/badge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

type MockMetadataProvider struct {
	mock.Mock
}

func (m *MockMetadataProvider) FetchBadge(ctx context.Context, org, repo, number string) (*badge.Metadata, error) {
	args := m.Called(ctx, org, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*badge.Metadata), args.Error(1)
}

func (m *MockMetadataProvider) Name() string {
	return "mock"
}

type MockFontLoader struct {
	mock.Mock
}

func (m *MockFontLoader) LoadFont(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(meta *badge.Metadata, fontData []byte, opts render.Options) (*badge.Rendered, error) {
	args := m.Called(meta, fontData, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*badge.Rendered), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var req = badge.Request{Org: "acme", Repo: "widgets", Number: "42"}

func TestGenerate_Success(t *testing.T) {
	meta := &badge.Metadata{
		BadgeType: "funding",
		Width:     400,
		Height:    80,
		Amount:    &badge.Amount{Currency: "USD", Amount: 1500},
	}
	font := []byte("font")
	rendered := &badge.Rendered{SVG: []byte("<svg/>"), Width: 400, Height: 80}

	provider := &MockMetadataProvider{}
	provider.On("FetchBadge", mock.Anything, "acme", "widgets", "42").Return(meta, nil)
	fonts := &MockFontLoader{}
	fonts.On("LoadFont", mock.Anything, "Inter-Regular.ttf").Return(font, nil)
	renderer := &MockRenderer{}
	renderer.On("Render", meta, font, render.Options{Debug: true}).Return(rendered, nil)

	svc := badgesvc.New(provider, fonts, renderer, "Inter-Regular.ttf", discardLogger())
	debugReq := req
	debugReq.Debug = true

	res, err := svc.Generate(context.Background(), debugReq)
	require.NoError(t, err)
	assert.Equal(t, badgesvc.StateResponded, res.State)
	assert.Same(t, rendered, res.Badge)
	assert.Same(t, meta, res.Metadata)

	provider.AssertExpectations(t)
	fonts.AssertExpectations(t)
	renderer.AssertExpectations(t)
}

func TestGenerate_FetchFailureSkipsRendering(t *testing.T) {
	for _, fetchErr := range []error{
		&badge.UpstreamError{URL: "http://upstream", StatusCode: 500},
		badge.ErrInvalidResponse,
	} {
		t.Run(fetchErr.Error(), func(t *testing.T) {
			provider := &MockMetadataProvider{}
			provider.On("FetchBadge", mock.Anything, "acme", "widgets", "42").Return(nil, fetchErr)
			fonts := &MockFontLoader{}
			renderer := &MockRenderer{}

			svc := badgesvc.New(provider, fonts, renderer, "Inter-Regular.ttf", discardLogger())
			res, err := svc.Generate(context.Background(), req)

			require.ErrorIs(t, err, fetchErr)
			assert.Equal(t, badgesvc.StateFailed, res.State)
			assert.Equal(t, badgesvc.StateFetchingMetadata, res.FailedIn)
			assert.Nil(t, res.Badge)
			fonts.AssertNotCalled(t, "LoadFont", mock.Anything, mock.Anything)
			renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGenerate_FontFailure(t *testing.T) {
	meta := &badge.Metadata{BadgeType: "funding", Width: 10, Height: 10}
	provider := &MockMetadataProvider{}
	provider.On("FetchBadge", mock.Anything, "acme", "widgets", "42").Return(meta, nil)
	fonts := &MockFontLoader{}
	fonts.On("LoadFont", mock.Anything, "Inter-Regular.ttf").Return(nil, badge.ErrAssetNotFound)
	renderer := &MockRenderer{}

	svc := badgesvc.New(provider, fonts, renderer, "Inter-Regular.ttf", discardLogger())
	res, err := svc.Generate(context.Background(), req)

	require.ErrorIs(t, err, badge.ErrAssetNotFound)
	assert.Equal(t, badgesvc.StateFailed, res.State)
	assert.Equal(t, badgesvc.StateRendering, res.FailedIn)
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerate_WithRealRenderer(t *testing.T) {
	provider := &MockMetadataProvider{}
	provider.On("FetchBadge", mock.Anything, "acme", "widgets", "42").
		Return(&badge.Metadata{BadgeType: "funding", Width: 400, Height: 80}, nil)
	fonts := &MockFontLoader{}
	fonts.On("LoadFont", mock.Anything, "Go-Regular.ttf").Return(goregular.TTF, nil)

	svc := badgesvc.New(provider, fonts, render.New("Go", discardLogger()), "Go-Regular.ttf", discardLogger())
	res, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 400, res.Badge.Width)
	assert.Equal(t, 80, res.Badge.Height)
	assert.Contains(t, string(res.Badge.SVG), `data-show-amount="false"`)
}

func TestGenerate_RenderFailure(t *testing.T) {
	provider := &MockMetadataProvider{}
	provider.On("FetchBadge", mock.Anything, "acme", "widgets", "42").
		Return(&badge.Metadata{BadgeType: "funding", Width: 400, Height: 80}, nil)
	fonts := &MockFontLoader{}
	fonts.On("LoadFont", mock.Anything, "Broken.ttf").Return([]byte("not a font"), nil)

	svc := badgesvc.New(provider, fonts, render.New("Inter", discardLogger()), "Broken.ttf", discardLogger())
	res, err := svc.Generate(context.Background(), req)

	require.ErrorIs(t, err, badge.ErrRender)
	assert.False(t, errors.Is(err, badge.ErrAssetNotFound))
	assert.Equal(t, badgesvc.StateRendering, res.FailedIn)
}
