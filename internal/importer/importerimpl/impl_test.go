package importerimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"storify-import/internal/domain"
	elementRepo "storify-import/internal/repositories/element"
	elementmocks "storify-import/internal/repositories/element/mocks"
	storyRepo "storify-import/internal/repositories/story"
	storymocks "storify-import/internal/repositories/story/mocks"
	"storify-import/internal/storify"
	storifymocks "storify-import/internal/storify/mocks"
	"storify-import/pkg/config"
	"storify-import/pkg/logger"
)

type ImporterTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	storifyClient *storifymocks.MockClient
	stories       *storymocks.MockRepository
	elements      *elementmocks.MockRepository

	imp *ImporterImpl
}

func (s *ImporterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.storifyClient = storifymocks.NewMockClient(s.ctrl)
	s.stories = storymocks.NewMockRepository(s.ctrl)
	s.elements = elementmocks.NewMockRepository(s.ctrl)

	s.imp = New(Opts{
		Storify:     s.storifyClient,
		StoryRepo:   s.stories,
		ElementRepo: s.elements,
		Logger:      logger.New(logger.Opts{}),
		Config:      &config.Config{},
	})
}

func (s *ImporterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestImporterTestSuite(t *testing.T) {
	suite.Run(t, new(ImporterTestSuite))
}

func rawStoryFixture() storify.StoryJSON {
	return storify.StoryJSON{
		SID:         "1",
		Title:       "T",
		Slug:        "t",
		Status:      "published",
		Description: "d",
		Date: storify.StoryDates{
			Created:   "2020-01-01T00:00:00Z",
			Published: "2020-01-02T00:00:00Z",
		},
	}
}

func rawElementFixture(id string) storify.ElementJSON {
	return storify.ElementJSON{
		ID:        id,
		EID:       "e-" + id,
		Type:      "link",
		Permalink: "//example.com/" + id,
		PostedAt:  "2020-03-01T10:00:00Z",
		AddedAt:   "2020-03-02T10:00:00Z",
		Source:    storify.ElementSource{Name: "flickr", Username: "someone"},
	}
}

func (s *ImporterTestSuite) TestImportUserStories_CreatesNewStory() {
	ctx := context.Background()

	s.storifyClient.EXPECT().UserStories(ctx, "someuser").
		Return([]storify.StoryJSON{rawStoryFixture()}, nil)

	s.stories.EXPECT().GetBySlug(ctx, "t").Return(nil, storyRepo.ErrNotFound)
	s.stories.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, st domain.Story) (int64, error) {
			s.Equal("1", st.ExternalID)
			s.Equal("T", st.Title)
			s.Equal("t", st.Slug)
			s.Equal("d", st.Description)
			s.Equal(domain.StoryStatusPublished, st.Status)
			s.Equal("someuser", st.OwnerUsername)
			s.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), st.CreatedAt)
			s.Equal(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), st.PublishedAt)
			return 42, nil
		},
	)

	stats, err := s.imp.ImportUserStories(ctx, "someuser")

	s.NoError(err)
	s.Equal(1, stats.Fetched)
	s.Equal(1, stats.Created)
	s.Equal(0, stats.Updated)
}

func (s *ImporterTestSuite) TestImportUserStories_SecondImportUpdates() {
	ctx := context.Background()

	raw := rawStoryFixture()
	raw.Title = "T2"

	s.storifyClient.EXPECT().UserStories(ctx, "someuser").
		Return([]storify.StoryJSON{raw}, nil)

	existing := &domain.Story{ID: 42, Slug: "t", Title: "T"}
	s.stories.EXPECT().GetBySlug(ctx, "t").Return(existing, nil)
	s.stories.EXPECT().Update(ctx, int64(42), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64, st domain.Story) error {
			s.Equal("T2", st.Title)
			s.Equal("t", st.Slug)
			return nil
		},
	)

	stats, err := s.imp.ImportUserStories(ctx, "someuser")

	s.NoError(err)
	s.Equal(0, stats.Created)
	s.Equal(1, stats.Updated)
}

func (s *ImporterTestSuite) TestImportUserStories_MissingInput() {
	stats, err := s.imp.ImportUserStories(context.Background(), "  ")

	s.ErrorIs(err, domain.ErrMissingInput)
	s.Equal(0, stats.Fetched)
}

func (s *ImporterTestSuite) TestImportUserStories_EmptyResult() {
	ctx := context.Background()

	s.storifyClient.EXPECT().UserStories(ctx, "someuser").Return(nil, nil)

	_, err := s.imp.ImportUserStories(ctx, "someuser")
	s.ErrorIs(err, domain.ErrEmptyResult)
}

func (s *ImporterTestSuite) TestImportUserStories_MissingSlugNoStoreWrite() {
	ctx := context.Background()

	raw := rawStoryFixture()
	raw.Slug = ""

	s.storifyClient.EXPECT().UserStories(ctx, "someuser").
		Return([]storify.StoryJSON{raw}, nil)

	// No repository expectations: a record failing normalization must not
	// reach the store.
	stats, err := s.imp.ImportUserStories(ctx, "someuser")

	s.ErrorIs(err, domain.ErrNormalization)
	s.Equal(1, stats.Failed)
	s.Equal(0, stats.Created)
}

func (s *ImporterTestSuite) TestImportUserStories_PersistFailureKeepsEarlierWrites() {
	ctx := context.Background()

	first := rawStoryFixture()
	second := rawStoryFixture()
	second.SID = "2"
	second.Slug = "t2"

	s.storifyClient.EXPECT().UserStories(ctx, "someuser").
		Return([]storify.StoryJSON{first, second}, nil)

	s.stories.EXPECT().GetBySlug(ctx, "t").Return(nil, storyRepo.ErrNotFound)
	s.stories.EXPECT().Create(ctx, gomock.Any()).Return(int64(1), nil)

	s.stories.EXPECT().GetBySlug(ctx, "t2").Return(nil, storyRepo.ErrNotFound)
	s.stories.EXPECT().Create(ctx, gomock.Any()).Return(int64(0), errors.New("disk full"))

	stats, err := s.imp.ImportUserStories(ctx, "someuser")

	s.ErrorIs(err, domain.ErrPersist)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Failed)
}

func (s *ImporterTestSuite) TestImportStoryURL_ImportsStoryAndElements() {
	ctx := context.Background()

	raw := rawStoryFixture()
	el := rawElementFixture("el-1")

	s.storifyClient.EXPECT().StoryDetail(ctx, "someuser", "t").
		Return(&raw, []storify.ElementJSON{el}, nil)

	s.stories.EXPECT().GetBySlug(ctx, "t").Return(nil, storyRepo.ErrNotFound)
	s.stories.EXPECT().Create(ctx, gomock.Any()).Return(int64(42), nil)

	s.elements.EXPECT().GetByExternalID(ctx, "el-1").Return(nil, elementRepo.ErrNotFound)
	s.elements.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.Element) (int64, error) {
			s.Equal(int64(42), e.StoryID)
			s.Equal("el-1", e.ExternalID)
			s.Equal("e-el-1", e.ExternalEID)
			s.Equal("https://example.com/el-1", e.Link)
			return 7, nil
		},
	)
	s.stories.EXPECT().SetElementCount(ctx, int64(42), 1).Return(nil)

	stats, err := s.imp.ImportStoryURL(ctx, "https://storify.com/someuser/t")

	s.NoError(err)
	s.Equal(2, stats.Fetched)
	s.Equal(2, stats.Created)
}

func (s *ImporterTestSuite) TestImportStoryURL_BadURL() {
	for _, bad := range []string{"", "https://storify.com/", "https://storify.com/onlyuser"} {
		_, err := s.imp.ImportStoryURL(context.Background(), bad)
		s.ErrorIs(err, domain.ErrMissingInput, "url %q", bad)
	}
}

func (s *ImporterTestSuite) TestRefreshStoryElements_UpsertsAndReplacesCount() {
	ctx := context.Background()

	stored := &domain.Story{ID: 5, Slug: "t", OwnerUsername: "someuser"}
	s.stories.EXPECT().GetByID(ctx, int64(5)).Return(stored, nil)

	raw := rawStoryFixture()
	newEl := rawElementFixture("el-new")
	knownEl := rawElementFixture("el-known")

	s.storifyClient.EXPECT().StoryDetail(ctx, "someuser", "t").
		Return(&raw, []storify.ElementJSON{newEl, knownEl}, nil)

	s.elements.EXPECT().GetByExternalID(ctx, "el-new").Return(nil, elementRepo.ErrNotFound)
	s.elements.EXPECT().Create(ctx, gomock.Any()).Return(int64(10), nil)

	s.elements.EXPECT().GetByExternalID(ctx, "el-known").
		Return(&domain.Element{ID: 11, ExternalID: "el-known", StoryID: 5}, nil)
	s.elements.EXPECT().Update(ctx, int64(11), gomock.Any()).Return(nil)

	// Count is replaced with the batch size, not incremented.
	s.stories.EXPECT().SetElementCount(ctx, int64(5), 2).Return(nil)

	stats, err := s.imp.RefreshStoryElements(ctx, 5)

	s.NoError(err)
	s.Equal(2, stats.Fetched)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Updated)
}

func (s *ImporterTestSuite) TestRefreshStoryElements_UnknownStory() {
	ctx := context.Background()

	s.stories.EXPECT().GetByID(ctx, int64(99)).Return(nil, storyRepo.ErrNotFound)

	_, err := s.imp.RefreshStoryElements(ctx, 99)
	s.ErrorIs(err, domain.ErrMissingInput)
}

func (s *ImporterTestSuite) TestRefreshStoryElements_PersistFailureAbortsBatch() {
	ctx := context.Background()

	stored := &domain.Story{ID: 5, Slug: "t", OwnerUsername: "someuser"}
	s.stories.EXPECT().GetByID(ctx, int64(5)).Return(stored, nil)

	raw := rawStoryFixture()
	els := []storify.ElementJSON{
		rawElementFixture("a"), rawElementFixture("b"), rawElementFixture("c"),
	}
	s.storifyClient.EXPECT().StoryDetail(ctx, "someuser", "t").Return(&raw, els, nil)

	s.elements.EXPECT().GetByExternalID(ctx, "a").Return(nil, elementRepo.ErrNotFound)
	s.elements.EXPECT().Create(ctx, gomock.Any()).Return(int64(1), nil)

	s.elements.EXPECT().GetByExternalID(ctx, "b").Return(nil, elementRepo.ErrNotFound)
	s.elements.EXPECT().Create(ctx, gomock.Any()).Return(int64(0), errors.New("connection reset"))

	// Element "c" is never attempted and the count is never touched.
	stats, err := s.imp.RefreshStoryElements(ctx, 5)

	s.ErrorIs(err, domain.ErrPersist)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Failed)
}

func (s *ImporterTestSuite) TestRefreshStoryElements_EmptyResult() {
	ctx := context.Background()

	stored := &domain.Story{ID: 5, Slug: "t", OwnerUsername: "someuser"}
	s.stories.EXPECT().GetByID(ctx, int64(5)).Return(stored, nil)

	raw := rawStoryFixture()
	s.storifyClient.EXPECT().StoryDetail(ctx, "someuser", "t").Return(&raw, nil, nil)

	_, err := s.imp.RefreshStoryElements(ctx, 5)
	s.ErrorIs(err, domain.ErrEmptyResult)
}
