package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"appealsapi/internal/model"
	"appealsapi/internal/repository"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) AddVersions(ctx context.Context, caseID int64, versions []model.DocumentVersion) error {
	args := m.Called(ctx, caseID, versions)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindByGUID(ctx context.Context, guid string) (*model.DocumentVersion, error) {
	args := m.Called(ctx, guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentVersion), args.Error(1)
}

type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) CreateCase(ctx context.Context, agg *model.CaseAggregate) (*model.CaseSummary, []model.Folder, error) {
	args := m.Called(ctx, agg)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	folders, _ := args.Get(1).([]model.Folder)
	return args.Get(0).(*model.CaseSummary), folders, args.Error(2)
}

func (m *MockCaseRepository) DeleteCase(ctx context.Context, caseID int64) error {
	args := m.Called(ctx, caseID)
	return args.Error(0)
}

func (m *MockCaseRepository) FindByReference(ctx context.Context, reference string) (*model.CaseSummary, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseSummary), args.Error(1)
}

func (m *MockCaseRepository) IsRule6Party(ctx context.Context, caseID, serviceUserID int64) (bool, error) {
	args := m.Called(ctx, caseID, serviceUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCaseRepository) SaveQuestionnaire(ctx context.Context, caseID int64, agg *model.QuestionnaireAggregate) error {
	args := m.Called(ctx, caseID, agg)
	return args.Error(0)
}

type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) ListByCase(ctx context.Context, caseID int64) ([]model.Folder, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

type MockRepresentationRepository struct {
	mock.Mock
}

func (m *MockRepresentationRepository) Create(ctx context.Context, caseID int64, agg *model.RepresentationAggregate) (*model.Representation, error) {
	args := m.Called(ctx, caseID, agg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representation), args.Error(1)
}

func (m *MockRepresentationRepository) FindByID(ctx context.Context, id int64) (*model.RepresentationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RepresentationRecord), args.Error(1)
}

func (m *MockRepresentationRepository) UpdateStatus(ctx context.Context, id int64, from, to model.RepresentationStatus, redacted *string) (*model.Representation, error) {
	args := m.Called(ctx, id, from, to, redacted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representation), args.Error(1)
}

func (m *MockRepresentationRepository) ListByCase(ctx context.Context, caseID int64, pq repository.PageQuery) (*repository.PageResult[model.Representation], error) {
	args := m.Called(ctx, caseID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Representation]), args.Error(1)
}
