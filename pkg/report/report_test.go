package report_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/oilfield/pkg/domain/deposit"
	"github.com/amirasaad/oilfield/pkg/dto"
	"github.com/amirasaad/oilfield/pkg/registry"
	"github.com/amirasaad/oilfield/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock() deposit.Option {
	return deposit.WithClock(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) })
}

func newRegistry() *registry.Registry {
	return registry.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestShow(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := newRegistry().Register(deposit.New("Alpha", 1889, 120.5, 1000.5, deposit.Crude, clock()))

	require.NoError(t, report.NewPrinter(&buf, false).Show(e))
	assert.Equal(t, "Instance Number: 1\n"+
		"Name: Alpha\n"+
		"Discovery Year: 1889\n"+
		"Category: CRUDE\n"+
		"Unit Cost: 120.5\n"+
		"Extracted Quantity: 1000.5\n"+
		"Net Income: 102476.21\n"+
		"---------------------------\n", buf.String())
}

func TestShowColored(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	e := newRegistry().Register(deposit.NewDefault(clock()))

	require.NoError(t, report.NewPrinter(&buf, true).Show(e))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestShowErrors(t *testing.T) {
	t.Parallel()
	reg := newRegistry()

	t.Run("clean deposit prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		e := reg.Register(deposit.NewDefault(clock()))
		require.NoError(t, report.NewPrinter(&buf, false).ShowErrors(e))
		assert.Empty(t, buf.String())
	})

	t.Run("rejected fields are listed", func(t *testing.T) {
		var buf bytes.Buffer
		d := deposit.New("Omega", 1006, 130.1, 500, deposit.Refined, clock())
		d.Extract(-3)
		e := reg.Register(d)

		require.NoError(t, report.NewPrinter(&buf, false).ShowErrors(e))
		out := buf.String()
		assert.Contains(t, out, "Errors for instance 2:\n")
		assert.Contains(t, out, "1006")
		assert.Contains(t, out, "-3")
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	reg := newRegistry()
	reg.Register(deposit.New("Beta", 2006, 130.1, 300.2, deposit.Shale, clock()))

	require.NoError(t, report.NewPrinter(&buf, false).JSON(reg.List()))

	var reads []dto.DepositRead
	require.NoError(t, json.Unmarshal(buf.Bytes(), &reads))
	require.Len(t, reads, 1)
	assert.Equal(t, "Beta", reads[0].Name)
	assert.Equal(t, "SHALE", reads[0].Category)
	assert.Equal(t, 300.2, reads[0].ExtractedQuantity)
}
