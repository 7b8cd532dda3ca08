package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pullpane/pullpane-go/internal/domain/entities/content"
	"github.com/pullpane/pullpane-go/internal/domain/events"
	"github.com/pullpane/pullpane-go/internal/domain/modal"
)

func TestDialogServiceRegister(t *testing.T) {
	t.Parallel()

	s := NewDialogService(testLogger(t))

	require.NoError(t, s.Register(testDialog()))

	got, exists := s.FindByID("demo")
	require.True(t, exists)
	assert.Equal(t, "m", got.ModuleName)
}

func TestDialogServiceRegisterValidation(t *testing.T) {
	t.Parallel()

	s := NewDialogService(testLogger(t))

	err := s.Register(content.Dialog{Direction: "top"})
	assert.Error(t, err, "missing id must be rejected")

	err = s.Register(content.Dialog{ID: "x", Direction: "diagonal"})
	assert.ErrorContains(t, err, "unknown direction")
}

func TestDialogServiceListSorted(t *testing.T) {
	t.Parallel()

	s := NewDialogService(testLogger(t))
	for _, id := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, s.Register(content.Dialog{ID: id, ModuleName: "m", Direction: "left"}))
	}

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "alpha", list[0].ID)
	assert.Equal(t, "bravo", list[1].ID)
	assert.Equal(t, "charlie", list[2].ID)
}

func TestDialogServiceConfigFor(t *testing.T) {
	t.Parallel()

	s := NewDialogService(testLogger(t))
	cfg := s.ConfigFor(testDialog())

	assert.Equal(t, "m m--top", cfg.MainClass)
	assert.Equal(t, modal.Top, cfg.Direction)
	assert.Equal(t, events.Close("demo"), cfg.CloseMsg)
}
