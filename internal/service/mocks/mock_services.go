package mocks

import (
	"context"

	"appealsapi/internal/model"
	"appealsapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) IngestCase(ctx context.Context, payload []byte) (*service.CaseResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CaseResult), args.Error(1)
}

func (m *MockSubmissionService) IngestQuestionnaire(ctx context.Context, payload []byte) (*service.QuestionnaireResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.QuestionnaireResult), args.Error(1)
}

func (m *MockSubmissionService) IngestRepresentation(ctx context.Context, payload []byte) (*model.Representation, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Representation), args.Error(1)
}

type MockRepresentationService struct {
	mock.Mock
}

func (m *MockRepresentationService) UpdateStatus(ctx context.Context, id int64, change model.StatusChange) (*service.StatusUpdateResult, error) {
	args := m.Called(ctx, id, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatusUpdateResult), args.Error(1)
}

func (m *MockRepresentationService) ListByCase(ctx context.Context, reference string, limit, offset int) (*service.RepresentationListResult, error) {
	args := m.Called(ctx, reference, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RepresentationListResult), args.Error(1)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Get(ctx context.Context, guid string) (*service.DocumentDownload, error) {
	args := m.Called(ctx, guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDownload), args.Error(1)
}
