//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"lab-scheduler/internal/usecase/commands"
	commandsmock "lab-scheduler/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweeperRunOnce(t *testing.T) {
	tests := []struct {
		name   string
		result commands.SweepResult
		err    error
	}{
		{name: "expired some", result: commands.SweepResult{Expired: 2, Skipped: 1}},
		{name: "nothing due", result: commands.SweepResult{}},
		{name: "store failure keeps partial count", result: commands.SweepResult{Expired: 1}, err: errors.New("connection reset")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cmds := commandsmock.NewMockReservationCommands(ctrl)
			cmds.EXPECT().ExpireDue(gomock.Any()).Return(tt.result, tt.err)

			got := commands.NewSweeper(cmds, time.Minute, quietLogger()).RunOnce(context.Background())
			assert.Equal(t, tt.result, got)
		})
	}
}

func TestSweeperRun(t *testing.T) {
	t.Run("sweeps immediately and stops with the context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockReservationCommands(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		cmds.EXPECT().ExpireDue(gomock.Any()).DoAndReturn(func(context.Context) (commands.SweepResult, error) {
			cancel()
			return commands.SweepResult{}, nil
		})

		done := make(chan struct{})
		go func() {
			defer close(done)
			commands.NewSweeper(cmds, time.Hour, quietLogger()).Run(ctx)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			require.Fail(t, "sweeper did not stop after cancellation")
		}
	})

	t.Run("non-positive interval disables the loop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockReservationCommands(ctrl)

		commands.NewSweeper(cmds, 0, quietLogger()).Run(context.Background())
	})
}
