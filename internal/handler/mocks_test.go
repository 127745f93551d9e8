package handler

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
)

type caseServiceMock struct {
	item       *models.DisciplinaryCase
	err        error
	lastFilter models.CaseFilter
	lastActor  *models.JWTClaims
	lastFormat string
	calls      []string
	decision   dto.DecisionRequest
	serve      dto.ServeDecisionRequest
	exportData []byte
}

func (m *caseServiceMock) record(name string, actor *models.JWTClaims) (*models.DisciplinaryCase, error) {
	m.calls = append(m.calls, name)
	m.lastActor = actor
	return m.item, m.err
}

func (m *caseServiceMock) List(_ context.Context, actor *models.JWTClaims, filter models.CaseFilter) ([]models.DisciplinaryCase, *models.Pagination, error) {
	m.lastFilter = filter
	m.lastActor = actor
	if m.err != nil {
		return nil, nil, m.err
	}
	return []models.DisciplinaryCase{{ID: "case-1"}}, &models.Pagination{Page: 1, PageSize: 20, TotalCount: 1}, nil
}

func (m *caseServiceMock) Get(_ context.Context, actor *models.JWTClaims, _ string) (*models.DisciplinaryCase, error) {
	return m.record("get", actor)
}

func (m *caseServiceMock) Create(_ context.Context, actor *models.JWTClaims, _ dto.CreateCaseRequest) (*models.DisciplinaryCase, error) {
	return m.record("create", actor)
}

func (m *caseServiceMock) IssueShowCause(_ context.Context, actor *models.JWTClaims, _ string) (*models.DisciplinaryCase, error) {
	return m.record("show-cause", actor)
}

func (m *caseServiceMock) RecordShowCauseResponse(_ context.Context, actor *models.JWTClaims, _ string, _ dto.ShowCauseResponseRequest) (*models.DisciplinaryCase, error) {
	return m.record("show-cause-response", actor)
}

func (m *caseServiceMock) StartInvestigation(_ context.Context, actor *models.JWTClaims, _ string) (*models.DisciplinaryCase, error) {
	return m.record("investigation", actor)
}

func (m *caseServiceMock) ScheduleHearing(_ context.Context, actor *models.JWTClaims, _ string, _ dto.HearingRequest) (*models.DisciplinaryCase, error) {
	return m.record("hearing", actor)
}

func (m *caseServiceMock) MoveToDecision(_ context.Context, actor *models.JWTClaims, _ string) (*models.DisciplinaryCase, error) {
	return m.record("decision-stage", actor)
}

func (m *caseServiceMock) RecordDecision(_ context.Context, actor *models.JWTClaims, _ string, req dto.DecisionRequest) (*models.DisciplinaryCase, error) {
	m.decision = req
	return m.record("decision", actor)
}

func (m *caseServiceMock) ServeDecision(_ context.Context, actor *models.JWTClaims, _ string, req dto.ServeDecisionRequest) (*models.DisciplinaryCase, error) {
	m.serve = req
	return m.record("serve", actor)
}

func (m *caseServiceMock) Close(_ context.Context, actor *models.JWTClaims, _ string, _ dto.CloseCaseRequest) (*models.DisciplinaryCase, error) {
	return m.record("close", actor)
}

func (m *caseServiceMock) OpenAppeal(_ context.Context, actor *models.JWTClaims, _ string) (*models.DisciplinaryCase, error) {
	return m.record("appeal", actor)
}

func (m *caseServiceMock) Acknowledge(_ context.Context, actor *models.JWTClaims, _ string) (*models.DisciplinaryCase, error) {
	return m.record("acknowledge", actor)
}

func (m *caseServiceMock) Contest(_ context.Context, actor *models.JWTClaims, _ string, _ dto.ContestRequest) (*models.DisciplinaryCase, error) {
	return m.record("contest", actor)
}

func (m *caseServiceMock) Recommend(_ context.Context, actor *models.JWTClaims, id string) (*dto.RecommendationResponse, error) {
	m.lastActor = actor
	return &dto.RecommendationResponse{CaseID: id, Recommendation: "written_warning"}, m.err
}

func (m *caseServiceMock) Delete(_ context.Context, actor *models.JWTClaims, _ string) error {
	_, err := m.record("delete", actor)
	return err
}

func (m *caseServiceMock) Export(_ context.Context, actor *models.JWTClaims, filter models.CaseFilter, format string) ([]byte, string, error) {
	m.lastFilter = filter
	m.lastActor = actor
	m.lastFormat = format
	if m.err != nil {
		return nil, "", m.err
	}
	return m.exportData, "text/csv", nil
}

type historyServiceMock struct{}

func (historyServiceMock) History(context.Context, *models.JWTClaims, string) ([]models.CaseEvent, error) {
	return []models.CaseEvent{{Transition: "created"}}, nil
}

type actionServiceMock struct {
	calls  []string
	err    error
	revoke dto.RevokeActionRequest
}

func (m *actionServiceMock) do(name string) (*models.DisciplinaryAction, error) {
	m.calls = append(m.calls, name)
	if m.err != nil {
		return nil, m.err
	}
	return &models.DisciplinaryAction{ID: "act-1"}, nil
}

func (m *actionServiceMock) ListByCase(context.Context, *models.JWTClaims, string) ([]models.DisciplinaryAction, error) {
	m.calls = append(m.calls, "list")
	return nil, m.err
}

func (m *actionServiceMock) Create(context.Context, *models.JWTClaims, string, dto.CreateActionRequest) (*models.DisciplinaryAction, error) {
	return m.do("create")
}

func (m *actionServiceMock) Submit(context.Context, *models.JWTClaims, string) (*models.DisciplinaryAction, error) {
	return m.do("submit")
}

func (m *actionServiceMock) Approve(context.Context, *models.JWTClaims, string) (*models.DisciplinaryAction, error) {
	return m.do("approve")
}

func (m *actionServiceMock) Serve(context.Context, *models.JWTClaims, string, dto.ServeActionRequest) (*models.DisciplinaryAction, error) {
	return m.do("serve")
}

func (m *actionServiceMock) Complete(context.Context, *models.JWTClaims, string) (*models.DisciplinaryAction, error) {
	return m.do("complete")
}

func (m *actionServiceMock) Revoke(_ context.Context, _ *models.JWTClaims, _ string, req dto.RevokeActionRequest) (*models.DisciplinaryAction, error) {
	m.revoke = req
	return m.do("revoke")
}

func (m *actionServiceMock) MarkAppealed(context.Context, *models.JWTClaims, string) (*models.DisciplinaryAction, error) {
	return m.do("appealed")
}

type appealServiceMock struct {
	calls  []string
	decide dto.DecideAppealRequest
}

func (m *appealServiceMock) do(name string) (*models.Appeal, error) {
	m.calls = append(m.calls, name)
	return &models.Appeal{ID: "ap-1"}, nil
}

func (m *appealServiceMock) ListByCase(context.Context, *models.JWTClaims, string) ([]models.Appeal, error) {
	return nil, nil
}

func (m *appealServiceMock) File(context.Context, *models.JWTClaims, string, dto.CreateAppealRequest) (*models.Appeal, error) {
	return m.do("file")
}

func (m *appealServiceMock) StartReview(context.Context, *models.JWTClaims, string) (*models.Appeal, error) {
	return m.do("review")
}

func (m *appealServiceMock) ScheduleHearing(context.Context, *models.JWTClaims, string, dto.HearingRequest) (*models.Appeal, error) {
	return m.do("hearing")
}

func (m *appealServiceMock) Decide(_ context.Context, _ *models.JWTClaims, _ string, req dto.DecideAppealRequest) (*models.Appeal, error) {
	m.decide = req
	return m.do("decide")
}

func (m *appealServiceMock) Close(context.Context, *models.JWTClaims, string) (*models.Appeal, error) {
	return m.do("close")
}

type investigationServiceMock struct {
	calls []string
}

func (m *investigationServiceMock) do(name string) (*models.Investigation, error) {
	m.calls = append(m.calls, name)
	return &models.Investigation{ID: "inv-1"}, nil
}

func (m *investigationServiceMock) ListByCase(context.Context, *models.JWTClaims, string) ([]models.Investigation, error) {
	return nil, nil
}

func (m *investigationServiceMock) Create(context.Context, *models.JWTClaims, string, dto.CreateInvestigationRequest) (*models.Investigation, error) {
	return m.do("create")
}

func (m *investigationServiceMock) Complete(context.Context, *models.JWTClaims, string, dto.CompleteInvestigationRequest) (*models.Investigation, error) {
	return m.do("complete")
}

func (m *investigationServiceMock) Suspend(context.Context, *models.JWTClaims, string) (*models.Investigation, error) {
	return m.do("suspend")
}

func (m *investigationServiceMock) Resume(context.Context, *models.JWTClaims, string) (*models.Investigation, error) {
	return m.do("resume")
}

type letterServiceMock struct {
	token string
	err   error
}

func (m *letterServiceMock) Generate(_ context.Context, _ *models.JWTClaims, caseID string) (*dto.LetterResponse, error) {
	return &dto.LetterResponse{CaseID: caseID, DownloadURL: "/api/v1/letters/download?token=t"}, m.err
}

func (m *letterServiceMock) Link(_ context.Context, _ *models.JWTClaims, caseID string) (*dto.LetterResponse, error) {
	return &dto.LetterResponse{CaseID: caseID}, m.err
}

func (m *letterServiceMock) Download(_ context.Context, token string) (io.ReadCloser, string, error) {
	m.token = token
	if m.err != nil {
		return nil, "", m.err
	}
	return io.NopCloser(strings.NewReader("%PDF-1.3")), "DC-2026-00001.pdf", nil
}

type documentServiceMock struct {
	upload  dto.UploadDocumentRequest
	content string
	filter  models.DocumentFilter
	file    *os.File
	err     error
}

func (m *documentServiceMock) ListTypes(context.Context) ([]models.DocumentType, error) {
	return []models.DocumentType{{ID: "type-id"}}, nil
}

func (m *documentServiceMock) CreateType(context.Context, *models.JWTClaims, dto.CreateDocumentTypeRequest) (*models.DocumentType, error) {
	return &models.DocumentType{ID: "type-new"}, m.err
}

func (m *documentServiceMock) List(_ context.Context, _ *models.JWTClaims, filter models.DocumentFilter) ([]models.EmployeeDocument, error) {
	m.filter = filter
	return nil, m.err
}

func (m *documentServiceMock) Get(_ context.Context, _ *models.JWTClaims, id string) (*models.EmployeeDocument, error) {
	return &models.EmployeeDocument{ID: id}, m.err
}

func (m *documentServiceMock) Upload(_ context.Context, _ *models.JWTClaims, req dto.UploadDocumentRequest) (*models.EmployeeDocument, error) {
	m.upload = req
	body, err := io.ReadAll(req.Content)
	if err != nil {
		return nil, err
	}
	m.content = string(body)
	return &models.EmployeeDocument{ID: "doc-1", FileName: req.FileName}, m.err
}

func (m *documentServiceMock) Open(_ context.Context, _ *models.JWTClaims, id string) (*os.File, *models.EmployeeDocument, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	info, err := m.file.Stat()
	if err != nil {
		return nil, nil, err
	}
	return m.file, &models.EmployeeDocument{ID: id, FileName: "contract.pdf", FileSize: info.Size()}, nil
}

func (m *documentServiceMock) Archive(context.Context, *models.JWTClaims, string) error {
	return m.err
}

type resignationServiceMock struct {
	calls []string
}

func (m *resignationServiceMock) do(name string) (*models.Resignation, error) {
	m.calls = append(m.calls, name)
	return &models.Resignation{ID: "res-1"}, nil
}

func (m *resignationServiceMock) List(context.Context, *models.JWTClaims, models.ResignationFilter) ([]models.Resignation, error) {
	return nil, nil
}

func (m *resignationServiceMock) Get(context.Context, *models.JWTClaims, string) (*models.Resignation, error) {
	return m.do("get")
}

func (m *resignationServiceMock) Create(context.Context, *models.JWTClaims, dto.CreateResignationRequest) (*models.Resignation, error) {
	return m.do("create")
}

func (m *resignationServiceMock) Confirm(context.Context, *models.JWTClaims, string) (*models.Resignation, error) {
	return m.do("confirm")
}

func (m *resignationServiceMock) Approve(context.Context, *models.JWTClaims, string, dto.ApproveResignationRequest) (*models.Resignation, error) {
	return m.do("approve")
}

func (m *resignationServiceMock) Cancel(context.Context, *models.JWTClaims, string) (*models.Resignation, error) {
	return m.do("cancel")
}

func (m *resignationServiceMock) ResetToDraft(context.Context, *models.JWTClaims, string) (*models.Resignation, error) {
	return m.do("reset")
}

type exitInterviewServiceMock struct {
	calls []string
}

func (m *exitInterviewServiceMock) do(name string) (*models.ExitInterview, error) {
	m.calls = append(m.calls, name)
	return &models.ExitInterview{ID: "ei-1"}, nil
}

func (m *exitInterviewServiceMock) List(context.Context, *models.JWTClaims, models.ExitInterviewFilter) ([]models.ExitInterview, error) {
	return nil, nil
}

func (m *exitInterviewServiceMock) Create(context.Context, *models.JWTClaims, dto.CreateExitInterviewRequest) (*models.ExitInterview, error) {
	return m.do("create")
}

func (m *exitInterviewServiceMock) Confirm(context.Context, *models.JWTClaims, string) (*models.ExitInterview, error) {
	return m.do("confirm")
}

func (m *exitInterviewServiceMock) Done(context.Context, *models.JWTClaims, string) (*models.ExitInterview, error) {
	return m.do("done")
}

func (m *exitInterviewServiceMock) ResetToDraft(context.Context, *models.JWTClaims, string) (*models.ExitInterview, error) {
	return m.do("reset")
}

type offenseServiceMock struct {
	filter models.OffenseFilter
}

func (m *offenseServiceMock) List(_ context.Context, filter models.OffenseFilter) ([]models.OffenseClassification, error) {
	m.filter = filter
	return nil, nil
}

func (m *offenseServiceMock) Get(_ context.Context, id string) (*models.OffenseClassification, error) {
	return &models.OffenseClassification{ID: id}, nil
}

func (m *offenseServiceMock) Create(context.Context, *models.JWTClaims, dto.UpsertOffenseRequest) (*models.OffenseClassification, error) {
	return &models.OffenseClassification{ID: "off-new"}, nil
}

func (m *offenseServiceMock) Update(_ context.Context, _ *models.JWTClaims, id string, _ dto.UpsertOffenseRequest) (*models.OffenseClassification, error) {
	return &models.OffenseClassification{ID: id}, nil
}
