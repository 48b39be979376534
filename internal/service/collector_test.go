package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mentionwatch/internal/domain"
	"mentionwatch/internal/service/mocks"
)

type CollectorServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	gdelt     *mocks.MockMentionSource
	newsapi   *mocks.MockMentionSource
	companies *mocks.MockCompanyStore
	mentions  *mocks.MockMentionStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *CollectorService
	logger  *slog.Logger
	month   domain.Month
}

func (s *CollectorServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.gdelt = mocks.NewMockMentionSource(s.ctrl)
	s.newsapi = mocks.NewMockMentionSource(s.ctrl)
	s.companies = mocks.NewMockCompanyStore(s.ctrl)
	s.mentions = mocks.NewMockMentionStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.month = domain.Month{Year: 2026, Month: time.July}

	s.gdelt.EXPECT().Source().Return(domain.SourceGDELT).AnyTimes()
	s.newsapi.EXPECT().Source().Return(domain.SourceNewsAPI).AnyTimes()

	s.service = NewCollectorService(
		[]MentionSource{s.gdelt, s.newsapi},
		s.companies,
		s.mentions,
		s.txManager,
		s.publisher,
		nil,
		s.logger,
	)
	s.service.nowFn = func() time.Time {
		return time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	}
}

func (s *CollectorServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCollectorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectorServiceTestSuite))
}

func (s *CollectorServiceTestSuite) expectTransaction() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func (s *CollectorServiceTestSuite) TestCollect_ClassifiesOutcomes() {
	ctx := context.Background()

	companies := []domain.Company{
		{ID: 1, CleanedName: "alpha ai"},
		{ID: 2, CleanedName: "beta labs"},
	}
	s.companies.EXPECT().ListActive(ctx).Return(companies, nil)

	s.gdelt.EXPECT().FetchMentionCount(gomock.Any(), "alpha ai", s.month).Return(5, nil)
	s.gdelt.EXPECT().FetchMentionCount(gomock.Any(), "beta labs", s.month).Return(0, domain.ErrNoData)

	s.newsapi.EXPECT().FetchMentionCount(gomock.Any(), "alpha ai", s.month).Return(0, errors.New("rate limited"))
	s.newsapi.EXPECT().FetchMentionCount(gomock.Any(), "beta labs", s.month).Return(3, nil)

	s.expectTransaction()
	s.mentions.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, obs domain.MentionObservation) error {
			s.True(obs.Present())
			return nil
		},
	).Times(2)

	s.publisher.EXPECT().PublishMentionsCollected(ctx, s.month, gomock.Any()).Return(nil)

	stats, err := s.service.Collect(ctx, s.month)

	s.NoError(err)
	s.Len(stats, 2)

	bySource := make(map[domain.Source]domain.CollectStats, len(stats))
	for _, st := range stats {
		bySource[st.Source] = st
	}

	s.Equal(1, bySource[domain.SourceGDELT].Fetched)
	s.Equal(1, bySource[domain.SourceGDELT].Absent)
	s.Equal(0, bySource[domain.SourceGDELT].Errors)

	s.Equal(1, bySource[domain.SourceNewsAPI].Fetched)
	s.Equal(0, bySource[domain.SourceNewsAPI].Absent)
	s.Equal(1, bySource[domain.SourceNewsAPI].Errors)
}

func (s *CollectorServiceTestSuite) TestCollect_FutureMonth() {
	ctx := context.Background()

	stats, err := s.service.Collect(ctx, domain.Month{Year: 2027, Month: time.January})

	s.Error(err)
	s.Nil(stats)
	s.ErrorIs(err, domain.ErrInvalidMonth)
}

func (s *CollectorServiceTestSuite) TestCollect_ListError() {
	ctx := context.Background()

	s.companies.EXPECT().ListActive(ctx).Return(nil, errors.New("db down"))

	stats, err := s.service.Collect(ctx, s.month)

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "list companies")
}

func (s *CollectorServiceTestSuite) TestCollect_PersistFailureCountsAsErrors() {
	ctx := context.Background()

	companies := []domain.Company{{ID: 1, CleanedName: "alpha ai"}}
	s.companies.EXPECT().ListActive(ctx).Return(companies, nil)

	s.gdelt.EXPECT().FetchMentionCount(gomock.Any(), "alpha ai", s.month).Return(5, nil)
	s.newsapi.EXPECT().FetchMentionCount(gomock.Any(), "alpha ai", s.month).Return(2, nil)

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(errors.New("deadlock")).Times(2)

	s.publisher.EXPECT().PublishMentionsCollected(ctx, s.month, gomock.Any()).Return(nil)

	stats, err := s.service.Collect(ctx, s.month)

	s.NoError(err)
	s.Len(stats, 2)
	for _, st := range stats {
		s.Equal(1, st.Fetched)
		s.Equal(1, st.Errors)
	}
}

func (s *CollectorServiceTestSuite) TestCollect_AllAbsentWritesNothing() {
	ctx := context.Background()

	companies := []domain.Company{{ID: 1, CleanedName: "alpha ai"}}
	s.companies.EXPECT().ListActive(ctx).Return(companies, nil)

	s.gdelt.EXPECT().FetchMentionCount(gomock.Any(), "alpha ai", s.month).Return(0, domain.ErrNoData)
	s.newsapi.EXPECT().FetchMentionCount(gomock.Any(), "alpha ai", s.month).Return(0, domain.ErrNoData)

	// no observations means no transaction at all
	s.publisher.EXPECT().PublishMentionsCollected(ctx, s.month, gomock.Any()).Return(nil)

	stats, err := s.service.Collect(ctx, s.month)

	s.NoError(err)
	for _, st := range stats {
		s.Equal(0, st.Fetched)
		s.Equal(1, st.Absent)
	}
}

func (s *CollectorServiceTestSuite) TestCollect_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())

	companies := []domain.Company{{ID: 1, CleanedName: "alpha ai"}}
	s.companies.EXPECT().ListActive(ctx).Return(companies, nil)

	cancel()

	stats, err := s.service.Collect(ctx, s.month)

	s.Error(err)
	s.Nil(stats)
	s.ErrorIs(err, context.Canceled)
}
