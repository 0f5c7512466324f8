package skills_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
	"github.com/KirkDiggler/cp2020-sheet/internal/paths"
	"github.com/KirkDiggler/cp2020-sheet/internal/repositories/packs"
	mockpacks "github.com/KirkDiggler/cp2020-sheet/internal/repositories/packs/mock"
	"github.com/KirkDiggler/cp2020-sheet/internal/services/skills"
	"github.com/KirkDiggler/cp2020-sheet/internal/uuid"
)

type SkillServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mockpacks.MockRepository
	service  skills.Service
	ctx      context.Context
}

func (s *SkillServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mockpacks.NewMockRepository(s.ctrl)
	s.service = skills.NewService(&skills.ServiceConfig{
		Repository: s.mockRepo,
		CacheTTL:   time.Minute,
	})
	s.ctx = context.Background()
}

func (s *SkillServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSkillServiceSuite(t *testing.T) {
	suite.Run(t, new(SkillServiceTestSuite))
}

func skillDocs() []*packs.Document {
	return []*packs.Document{
		{ID: "a", Name: "Awareness/Notice", Type: "skill", System: map[string]any{"stat": "int"}},
		{ID: "b", Name: "Martial Arts", Type: "skill", System: map[string]any{"stat": "ref", "level": float64(2)}},
	}
}

func (s *SkillServiceTestSuite) TestPackForLanguage() {
	cases := map[string]string{
		"en":    packs.DefaultSkillsPack,
		"ru":    packs.DefaultSkillsPackRU,
		"ru-RU": packs.DefaultSkillsPackRU,
		"de":    packs.DefaultSkillsPack,
		"":      packs.DefaultSkillsPack,
		"!!":    packs.DefaultSkillsPack,
	}
	for lang, want := range cases {
		s.Equal(want, s.service.PackForLanguage(lang), lang)
	}
}

func (s *SkillServiceTestSuite) TestDefaultSkills_SetsLocalizationKeys() {
	s.mockRepo.EXPECT().
		GetDocuments(gomock.Any(), packs.DefaultSkillsPack).
		Return(skillDocs(), nil)

	records, err := s.service.DefaultSkills(s.ctx, "en")

	s.Require().NoError(err)
	s.Require().Len(records, 2)

	s.Equal("a", records[0]["_id"])
	s.Equal("Awareness/Notice", records[0]["name"])
	key, err := paths.Get(records[0], skills.LocalizationKeyPath)
	s.Require().NoError(err)
	s.Equal("CYBERPUNK.SkillAwarenessNotice", key)

	key, err = paths.Get(records[1], skills.LocalizationKeyPath)
	s.Require().NoError(err)
	s.Equal("CYBERPUNK.SkillMartialArts", key)

	level, err := paths.Get(records[1], "system.level")
	s.Require().NoError(err)
	s.Equal(float64(2), level)
}

func (s *SkillServiceTestSuite) TestDefaultSkills_UsesRussianPack() {
	s.mockRepo.EXPECT().
		GetDocuments(gomock.Any(), packs.DefaultSkillsPackRU).
		Return([]*packs.Document{{ID: "r", Name: "Вождение", Type: "skill"}}, nil)

	records, err := s.service.DefaultSkills(s.ctx, "ru")

	s.Require().NoError(err)
	s.Require().Len(records, 1)
	key, err := paths.Get(records[0], skills.LocalizationKeyPath)
	s.Require().NoError(err)
	s.Equal("CYBERPUNK.SkillВождение", key)
}

func (s *SkillServiceTestSuite) TestDefaultSkills_CachesPack() {
	s.mockRepo.EXPECT().
		GetDocuments(gomock.Any(), packs.DefaultSkillsPack).
		Return(skillDocs(), nil).
		Times(1)

	first, err := s.service.DefaultSkills(s.ctx, "en")
	s.Require().NoError(err)

	// Mutating a returned record must not leak into later calls
	first[0]["name"] = "Changed"
	system := first[0]["system"].(map[string]any)
	system["stat"] = "cool"

	second, err := s.service.DefaultSkills(s.ctx, "en-GB")
	s.Require().NoError(err)
	s.Equal("Awareness/Notice", second[0]["name"])
	stat, err := paths.Get(second[0], "system.stat")
	s.Require().NoError(err)
	s.Equal("int", stat)
}

func (s *SkillServiceTestSuite) TestDefaultSkills_ConcurrentLoadsShareOneFetch() {
	s.mockRepo.EXPECT().
		GetDocuments(gomock.Any(), packs.DefaultSkillsPack).
		DoAndReturn(func(context.Context, string) ([]*packs.Document, error) {
			time.Sleep(20 * time.Millisecond)
			return skillDocs(), nil
		}).
		Times(1)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := s.service.DefaultSkills(s.ctx, "en")
			if err == nil && len(records) != 2 {
				err = errors.New("unexpected record count")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
}

func (s *SkillServiceTestSuite) TestDefaultSkills_CancelledCallerDoesNotFailSharedLoad() {
	started := make(chan struct{})
	release := make(chan struct{})

	s.mockRepo.EXPECT().
		GetDocuments(gomock.Any(), packs.DefaultSkillsPack).
		DoAndReturn(func(ctx context.Context, _ string) ([]*packs.Document, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return skillDocs(), nil
		}).
		Times(1)

	cancelCtx, cancel := context.WithCancel(s.ctx)
	firstErr := make(chan error, 1)
	go func() {
		_, err := s.service.DefaultSkills(cancelCtx, "en")
		firstErr <- err
	}()
	<-started

	type outcome struct {
		records []map[string]any
		err     error
	}
	second := make(chan outcome, 1)
	go func() {
		records, err := s.service.DefaultSkills(context.Background(), "en")
		second <- outcome{records: records, err: err}
	}()

	// Let the second caller join the in-flight load
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-firstErr:
		s.Require().Error(err)
		s.True(errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		s.Fail("cancelled caller kept waiting on the shared load")
	}

	close(release)

	got := <-second
	s.Require().NoError(got.err)
	s.Len(got.records, 2)
}

func (s *SkillServiceTestSuite) TestDefaultSkills_RepositoryError() {
	s.mockRepo.EXPECT().
		GetDocuments(gomock.Any(), packs.DefaultSkillsPack).
		Return(nil, apperr.NotFound("pack not found"))

	records, err := s.service.DefaultSkills(s.ctx, "en")

	s.Nil(records)
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
	s.Contains(err.Error(), packs.DefaultSkillsPack)
}

func (s *SkillServiceTestSuite) TestDefaultSkills_ErrorIsNotCached() {
	gomock.InOrder(
		s.mockRepo.EXPECT().
			GetDocuments(gomock.Any(), packs.DefaultSkillsPack).
			Return(nil, errors.New("redis down")),
		s.mockRepo.EXPECT().
			GetDocuments(gomock.Any(), packs.DefaultSkillsPack).
			Return(skillDocs(), nil),
	)

	_, err := s.service.DefaultSkills(s.ctx, "en")
	s.Require().Error(err)

	records, err := s.service.DefaultSkills(s.ctx, "en")
	s.Require().NoError(err)
	s.Len(records, 2)
}

func TestNewService_RequiresRepository(t *testing.T) {
	assert.Panics(t, func() {
		skills.NewService(&skills.ServiceConfig{})
	})
}

func TestDefaultSkills_SeededPacks(t *testing.T) {
	ctx := context.Background()
	repo := packs.NewInMemoryRepository()
	_, err := packs.Seed(ctx, repo, uuid.NewSequenceGenerator("seed"))
	require.NoError(t, err)

	service := skills.NewService(&skills.ServiceConfig{Repository: repo})

	for _, lang := range []string{"en", "ru"} {
		records, err := service.DefaultSkills(ctx, lang)
		require.NoError(t, err, lang)
		require.NotEmpty(t, records, lang)

		for _, record := range records {
			key, err := paths.Get(record, skills.LocalizationKeyPath)
			require.NoError(t, err)
			assert.Contains(t, key, skills.LocalizationKeyPrefix)
			assert.NotContains(t, key, " ")
		}
	}
}
