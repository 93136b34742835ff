package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/openhooks/pkg/download"
	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/index"
	"github.com/glorpus-work/openhooks/pkg/model"
	ocmocks "github.com/glorpus-work/openhooks/pkg/orchestrator/mocks"
	"github.com/glorpus-work/openhooks/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdd_BuildsDownloadItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	idxMock := ocmocks.NewMockIndexFetcher(ctrl)
	dl := ocmocks.NewMockDownloader(ctrl)
	dir := t.TempDir()

	idxMock.EXPECT().
		Fetch(gomock.Any(), repository.Locator{Owner: "acme", Repo: "hooks", Branch: "dev"}).
		Return(index.NewIndex([]*model.Hook{{Name: "Debounce", TS: true}}), nil)

	dl.EXPECT().FetchAll(gomock.Any(), gomock.Any(), download.Options{Concurrency: 3}).DoAndReturn(
		func(_ context.Context, items []download.Item, _ download.Options) ([]string, error) {
			require.Len(t, items, 1)
			assert.Equal(t, "Debounce", items[0].ID)
			assert.Equal(t, "https://raw.githubusercontent.com/acme/hooks/dev/hooks/ts/useDebounce.ts", items[0].URL.String())
			assert.Equal(t, filepath.Join(dir, "useDebounce.ts"), items[0].Dest)
			return []string{items[0].Dest}, nil
		})

	orch := &Orchestrator{
		Index:   idxMock,
		DL:      dl,
		Layout:  repository.DefaultLayout(),
		Options: Options{DefaultLanguage: model.LanguageTS, DefaultDir: dir, Concurrency: 3},
	}

	outcome, err := orch.Add(context.Background(), "https://github.com/acme/hooks/tree/dev", model.InstallRequest{Names: []string{"Debounce"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "useDebounce.ts")}, outcome.Written)
}

func TestAdd_DownloadErrorAttribution(t *testing.T) {
	tests := []struct {
		name      string
		dlErr     error
		wantIs    error
		wantHook  bool
		wantInMsg string
	}{
		{
			name:      "item failure names the hook",
			dlErr:     &download.ItemError{ID: "Debounce", Err: fmt.Errorf("status 500")},
			wantIs:    errors.ErrHookDownloadFailed,
			wantHook:  true,
			wantInMsg: "hook download failed: Debounce: status 500",
		},
		{
			name:      "batch validation error passes through",
			dlErr:     fmt.Errorf("duplicate destination x: %w", errors.ErrInvalidPath),
			wantIs:    errors.ErrInvalidPath,
			wantInMsg: "duplicate destination x",
		},
		{
			name:      "unattributed error passes through",
			dlErr:     fmt.Errorf("disk full"),
			wantInMsg: "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			idxMock := ocmocks.NewMockIndexFetcher(ctrl)
			dl := ocmocks.NewMockDownloader(ctrl)

			idxMock.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(index.NewIndex([]*model.Hook{{Name: "Debounce", TS: true}}), nil)
			dl.EXPECT().FetchAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.dlErr)

			orch := &Orchestrator{
				Index:   idxMock,
				DL:      dl,
				Layout:  repository.DefaultLayout(),
				Options: Options{DefaultLanguage: model.LanguageTS, DefaultDir: t.TempDir()},
			}

			_, err := orch.Add(context.Background(), "acme/hooks", model.InstallRequest{Names: []string{"Debounce"}})
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantHook {
				var hd *errors.HookDownloadFailedError
				require.ErrorAs(t, err, &hd)
				assert.Equal(t, "Debounce", hd.Name)
			} else {
				assert.NotErrorIs(t, err, errors.ErrHookDownloadFailed)
			}
			assert.Contains(t, err.Error(), tt.wantInMsg)
			assert.NotContains(t, err.Error(), ": : ")
		})
	}
}
