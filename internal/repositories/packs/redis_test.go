package packs

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	goccy "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.mockClient)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) encode(doc *Document) string {
	data, err := goccy.Marshal(doc)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestGetDocuments() {
	stealth := &Document{ID: "b", Name: "Stealth", Type: "skill", System: map[string]any{"stat": "ref"}}
	awareness := &Document{ID: "a", Name: "Awareness/Notice", Type: "skill", System: map[string]any{"stat": "int"}}

	s.mock.ExpectHGetAll("pack:skills").SetVal(map[string]string{
		"b": s.encode(stealth),
		"a": s.encode(awareness),
	})

	docs, err := s.repo.GetDocuments(s.ctx, "skills")

	s.Require().NoError(err)
	s.Require().Len(docs, 2)
	s.Equal("Awareness/Notice", docs[0].Name)
	s.Equal("int", docs[0].System["stat"])
	s.Equal("Stealth", docs[1].Name)
}

func (s *RedisRepoTestSuite) TestGetDocuments_NotFound() {
	s.mock.ExpectHGetAll("pack:missing").SetVal(map[string]string{})
	s.mock.ExpectSIsMember("packs", "missing").SetVal(false)

	_, err := s.repo.GetDocuments(s.ctx, "missing")

	s.True(apperr.IsNotFound(err))
	s.Equal("missing", apperr.GetMeta(err)["pack"])
}

func (s *RedisRepoTestSuite) TestGetDocuments_EmptyPack() {
	s.mock.ExpectHGetAll("pack:empty").SetVal(map[string]string{})
	s.mock.ExpectSIsMember("packs", "empty").SetVal(true)

	docs, err := s.repo.GetDocuments(s.ctx, "empty")

	s.Require().NoError(err)
	s.Empty(docs)
}

func (s *RedisRepoTestSuite) TestGetDocuments_CorruptDocument() {
	s.mock.ExpectHGetAll("pack:skills").SetVal(map[string]string{"a": "{not json"})

	_, err := s.repo.GetDocuments(s.ctx, "skills")

	s.Require().Error(err)
	s.Equal(apperr.CodeInternal, apperr.GetCode(err))
	s.Equal("a", apperr.GetMeta(err)["document_id"])
}

func (s *RedisRepoTestSuite) TestGetDocuments_RedisError() {
	s.mock.ExpectHGetAll("pack:skills").SetErr(errors.New("connection refused"))

	_, err := s.repo.GetDocuments(s.ctx, "skills")

	s.Require().Error(err)
	s.Contains(err.Error(), "connection refused")
}

func (s *RedisRepoTestSuite) TestSaveDocuments() {
	rifle := &Document{ID: "b", Name: "Rifle", Type: "skill", System: map[string]any{"stat": "ref"}}
	library := &Document{ID: "a", Name: "Library Search", Type: "skill", System: map[string]any{"stat": "int"}}

	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("pack:skills").SetVal(1)
	s.mock.ExpectHSet("pack:skills", "a", s.encode(library), "b", s.encode(rifle)).SetVal(2)
	s.mock.ExpectSAdd("packs", "skills").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.SaveDocuments(s.ctx, "skills", []*Document{rifle, library})

	s.NoError(err)
}

func (s *RedisRepoTestSuite) TestSaveDocuments_Empty() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("pack:empty").SetVal(0)
	s.mock.ExpectSAdd("packs", "empty").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.SaveDocuments(s.ctx, "empty", nil))
}

func (s *RedisRepoTestSuite) TestSaveDocuments_InvalidNeverTouchesRedis() {
	err := s.repo.SaveDocuments(s.ctx, "skills", []*Document{{Name: "No ID"}})

	s.True(apperr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestListPacks() {
	s.mock.ExpectSMembers("packs").SetVal([]string{"zeta", "alpha"})

	names, err := s.repo.ListPacks(s.ctx)

	s.Require().NoError(err)
	s.Equal([]string{"alpha", "zeta"}, names)
}

func TestNewRedisRepository_RequiresClient(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic without a client")
		}
	}()
	NewRedisRepository(&RedisRepoConfig{})
}
