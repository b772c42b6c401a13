package storage_test

import (
	"context"
	"database/sql"
	"slices"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/solederva/feedsync/internal/platform"
	"github.com/solederva/feedsync/internal/platform/models"
	"github.com/solederva/feedsync/internal/platform/storage"
	"github.com/solederva/feedsync/internal/platform/storage/storagetesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	pgmodels "github.com/solederva/feedsync/internal/platform/storage/gen/postgres/public/model"
	_ "github.com/lib/pq"
)

var loc = func() *time.Location {
	loc, err := time.LoadLocation("Etc/UTC")
	if err != nil {
		panic(err)
	}
	return loc
}()

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationStartRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	feedURL := faker.URL()

	tests := map[string]struct {
		storedRuns []pgmodels.SyncRun
		wantErr    error
	}{
		"first run": {},
		"after successful run": {
			storedRuns: []pgmodels.SyncRun{
				{
					ID:         1,
					FeedURL:    feedURL,
					CreatedAt:  time.Now(),
					Success:    lo.ToPtr(true),
					FinishedAt: lo.ToPtr(time.Now()),
				},
			},
		},
		"after failed run": {
			storedRuns: []pgmodels.SyncRun{
				{
					ID:         1,
					FeedURL:    feedURL,
					CreatedAt:  time.Now(),
					Success:    lo.ToPtr(false),
					FinishedAt: lo.ToPtr(time.Now()),
				},
			},
		},
		"already running error": {
			storedRuns: []pgmodels.SyncRun{
				{
					ID:        1,
					FeedURL:   feedURL,
					CreatedAt: time.Now(),
				},
			},
			wantErr: platform.ErrAlreadyRunning,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertRuns(s.T(), s.DB, tt.storedRuns...)

			post := storage.NewPostgres(s.DB)

			run, err := post.StartRun(context.TODO(), feedURL)

			if tt.wantErr == nil {
				s.Require().NoError(err, "shouldn't return any error")
				assertStartedRun(s.T(), feedURL, run)
			} else {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
			}
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationFinishRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	feedURL := faker.URL()
	createdAt := time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)
	finishedAt := time.Date(2024, time.April, 1, 2, 1, 1, 0, loc)

	runsState := []pgmodels.SyncRun{
		{
			ID:        1,
			FeedURL:   feedURL,
			CreatedAt: createdAt,
		},
		{
			ID:                2,
			FeedURL:           feedURL,
			CreatedAt:         createdAt,
			Success:           lo.ToPtr(true),
			FinishedAt:        &finishedAt,
			CreatedProducts:   lo.ToPtr(int32(5)),
			UpdatedProducts:   lo.ToPtr(int32(6)),
			UnchangedProducts: lo.ToPtr(int32(7)),
			FailedProducts:    lo.ToPtr(int32(0)),
		},
	}

	tests := map[string]struct {
		run           models.SyncRun
		storedRuns    []pgmodels.SyncRun
		wantRunsState []pgmodels.SyncRun
		wantErr       bool
	}{
		"single run": {
			run: models.SyncRun{
				ID:            1,
				FeedURL:       feedURL,
				CreatedAt:     createdAt,
				IsSuccess:     lo.ToPtr(true),
				FinishedAt:    &finishedAt,
				StatusMessage: lo.ToPtr("ok"),
				Created:       lo.ToPtr(int32(1)),
				Updated:       lo.ToPtr(int32(2)),
				Unchanged:     lo.ToPtr(int32(3)),
				Failed:        lo.ToPtr(int32(4)),
			},
			storedRuns: runsState[0:1],
			wantRunsState: []pgmodels.SyncRun{
				{
					ID:                1,
					FeedURL:           feedURL,
					CreatedAt:         createdAt,
					Success:           lo.ToPtr(true),
					FinishedAt:        &finishedAt,
					StatusMessage:     lo.ToPtr("ok"),
					CreatedProducts:   lo.ToPtr(int32(1)),
					UpdatedProducts:   lo.ToPtr(int32(2)),
					UnchangedProducts: lo.ToPtr(int32(3)),
					FailedProducts:    lo.ToPtr(int32(4)),
				},
			},
		},
		"many runs": {
			run: models.SyncRun{
				ID:         1,
				FeedURL:    feedURL,
				CreatedAt:  createdAt,
				IsSuccess:  lo.ToPtr(false),
				FinishedAt: &finishedAt,
				Failed:     lo.ToPtr(int32(9)),
			},
			storedRuns: runsState,
			wantRunsState: []pgmodels.SyncRun{
				{
					ID:             1,
					FeedURL:        feedURL,
					CreatedAt:      createdAt,
					Success:        lo.ToPtr(false),
					FinishedAt:     &finishedAt,
					FailedProducts: lo.ToPtr(int32(9)),
				},
				runsState[1],
			},
		},
		"not existing run error": {
			run: models.SyncRun{
				ID:         404,
				FeedURL:    feedURL,
				CreatedAt:  createdAt,
				IsSuccess:  lo.ToPtr(true),
				FinishedAt: &finishedAt,
			},
			storedRuns: runsState,
			wantErr:    true,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertRuns(s.T(), s.DB, tt.storedRuns...)

			post := storage.NewPostgres(s.DB)

			err := post.FinishRun(context.TODO(), &tt.run)

			if tt.wantErr {
				s.Require().Error(err, "should return error")
			} else {
				s.Require().NoError(err, "shouldn't return any error")
				assertRuns(s.T(), tt.wantRunsState, storagetesting.GetRuns(s.T(), s.DB))
			}
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationFeedState() {
	storagetesting.CleanupData(s.T(), s.DB)
	feedURL := faker.URL()
	lastSync := time.Date(2024, time.April, 1, 12, 0, 0, 0, loc)

	post := storage.NewPostgres(s.DB)
	feedState := post.FeedState(feedURL)

	s.Run("empty feed", func() {
		defer storagetesting.CleanupData(s.T(), s.DB)

		state, err := feedState.Load(context.TODO())

		s.Require().NoError(err, "shouldn't return any error")
		s.Assert().Empty(state.RemoteIDs, "should return empty remote IDs")
		s.Assert().Nil(state.LastSync, "shouldn't set last sync time")
	})

	s.Run("save and load", func() {
		defer storagetesting.CleanupData(s.T(), s.DB)

		saved := models.NewSyncState()
		saved.LastSync = &lastSync
		saved.RemoteIDs = map[string]string{
			"SD100": "11",
			"SD200": "22",
		}
		saved.Hashes = map[string]string{
			"SD100": "hash-100",
			"SD200": "hash-200",
		}

		s.Require().NoError(feedState.Save(context.TODO(), saved), "shouldn't return any error")

		loaded, err := feedState.Load(context.TODO())

		s.Require().NoError(err, "shouldn't return any error")
		s.Assert().Equal(saved, loaded, "loaded state should match the saved one")
	})

	s.Run("save replaces previous state", func() {
		defer storagetesting.CleanupData(s.T(), s.DB)

		first := models.NewSyncState()
		first.LastSync = &lastSync
		first.RemoteIDs = map[string]string{
			"SD100": "11",
			"SD200": "22",
		}
		s.Require().NoError(feedState.Save(context.TODO(), first), "shouldn't return any error")

		second := models.NewSyncState()
		second.LastSync = &lastSync
		second.RemoteIDs = map[string]string{"SD300": "33"}
		s.Require().NoError(feedState.Save(context.TODO(), second), "shouldn't return any error")

		rows := storagetesting.GetProductStates(s.T(), s.DB)

		s.Require().Len(rows, 1, "stale rows should be replaced")
		s.Assert().Equal("SD300", rows[0].ProductCode, "should keep only the latest state")
		s.Assert().Equal("33", rows[0].RemoteID, "should keep the latest remote ID")
	})

	s.Run("feeds don't leak into each other", func() {
		defer storagetesting.CleanupData(s.T(), s.DB)

		otherState := models.NewSyncState()
		otherState.LastSync = &lastSync
		otherState.RemoteIDs = map[string]string{"SD900": "99"}
		s.Require().NoError(post.FeedState(faker.URL()).Save(context.TODO(), otherState), "shouldn't return any error")

		loaded, err := feedState.Load(context.TODO())

		s.Require().NoError(err, "shouldn't return any error")
		s.Assert().Empty(loaded.RemoteIDs, "other feeds' rows shouldn't be visible")
	})
}

// assertStartedRun is a helper test function to assert a freshly started run.
func assertStartedRun(t *testing.T, feedURL string, run *models.SyncRun) {
	t.Helper()

	require.NotNil(t, run, "run should not be nil")
	require.NotZero(t, run.ID, "run should have id")
	require.NotZero(t, run.CreatedAt.UnixMilli(), "run should have \"created at\" set")
	assert.Equal(t, feedURL, run.FeedURL, "run should have correct feed URL")
	assert.Nil(t, run.FinishedAt, "run shouldn't be finished")
	assert.Nil(t, run.IsSuccess, "run shouldn't have success set")
}

// assertRuns is a helper test function to assert runs slice.
func assertRuns(t *testing.T, expected, actual []pgmodels.SyncRun) {
	t.Helper()

	require.Len(t, actual, len(expected), "should have correct length")

	slices.SortFunc(expected, func(a, b pgmodels.SyncRun) int { return int(b.ID - a.ID) })
	slices.SortFunc(actual, func(a, b pgmodels.SyncRun) int { return int(b.ID - a.ID) })

	for ix := range expected {
		assert.Equalf(t, expected[ix], actual[ix], "run at index %d has incorrect values", ix)
	}
}
