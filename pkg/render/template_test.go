package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func mustMetrics(t *testing.T) *metrics {
	t.Helper()
	m, err := parseFont(goregular.TTF)
	require.NoError(t, err)
	return m
}

func elementNames(els []Element) []string {
	names := make([]string, 0, len(els))
	for _, el := range els {
		names = append(names, el.Name)
	}
	return names
}

func TestFundingTemplate_Layout(t *testing.T) {
	m := mustMetrics(t)
	c := Content{Label: defaultLabel, Action: defaultAction}

	els := FundingTemplate{}.Layout(Frame{Width: 400, Height: 80, m: m}, c)
	assert.Equal(t, []string{"panel", "action", "action-text", "label"}, elementNames(els))

	c.ShowAmount = true
	c.AmountText = "$15 raised"
	els = FundingTemplate{}.Layout(Frame{Width: 400, Height: 80, m: m}, c)
	assert.Equal(t, []string{"panel", "action", "action-text", "label", "amount"}, elementNames(els))

	for _, el := range els {
		assert.GreaterOrEqual(t, el.X, 0.0, el.Name)
		assert.GreaterOrEqual(t, el.Y, 0.0, el.Name)
		assert.LessOrEqual(t, el.X+el.W, 400.0, el.Name)
		assert.LessOrEqual(t, el.Y+el.H, 80.0, el.Name)
	}
}

func TestFundingTemplate_TinyCanvasKeepsPanelOnly(t *testing.T) {
	els := FundingTemplate{}.Layout(Frame{Width: 1, Height: 1, m: mustMetrics(t)}, Content{
		Label: defaultLabel, Action: defaultAction, ShowAmount: true, AmountText: "$1 raised",
	})
	assert.Equal(t, []string{"panel"}, elementNames(els))
}

func TestMetrics_Fit(t *testing.T) {
	m := mustMetrics(t)

	size := m.fit("Fund this issue", 200, 40, 30)
	require.Greater(t, size, 0.0)
	assert.LessOrEqual(t, size, 30.0)
	assert.LessOrEqual(t, m.width("Fund this issue", size), 200.0)

	assert.Zero(t, m.fit("Fund this issue", 5, 40, 30), "too narrow to be legible")
	assert.Zero(t, m.fit("", 200, 40, 30))
}
