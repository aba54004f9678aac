package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vipclub/vipclub-cli/internal/client/store"
	"github.com/vipclub/vipclub-cli/internal/common"
	"github.com/vipclub/vipclub-cli/internal/logging"
)

func setupRepos(t *testing.T) *store.Repositories {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	repos, err := store.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })
	return repos
}

func TestEnsureInstallationID_GeneratedOnce(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	first, err := ensureInstallationID(ctx, repos.Metadata)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := ensureInstallationID(ctx, repos.Metadata)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"integer", "100", 100, false},
		{"decimal", "25.50", 25.5, false},
		{"zero", "0", 0, true},
		{"negative", "-5", 0, true},
		{"not a number", "ten", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, common.ErrValidation))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMode_SafeUnderConcurrentWatcherAndPromptAccess(t *testing.T) {
	a := &App{log: logging.NewTextLogger(io.Discard, slog.LevelError)}
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if (i+j)%2 == 0 {
					a.setMode(ctx, ModeOnline)
				} else {
					a.setMode(ctx, ModeOffline)
				}
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = a.currentMode()
			}
		}()
	}
	wg.Wait()

	mode := a.currentMode()
	require.Contains(t, []Mode{ModeOnline, ModeOffline}, mode)
}

func TestNewReferenceID_Unique(t *testing.T) {
	a, err := newReferenceID()
	require.NoError(t, err)
	b, err := newReferenceID()
	require.NoError(t, err)

	require.Len(t, a, 26)
	require.NotEqual(t, a, b)
}
