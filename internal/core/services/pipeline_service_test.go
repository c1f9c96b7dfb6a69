package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/polaris_reporting/internal/apperrors"
	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	portsrepo "github.com/SscSPs/polaris_reporting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/polaris_reporting/internal/core/ports/services"
	"github.com/SscSPs/polaris_reporting/internal/core/services"
	"github.com/SscSPs/polaris_reporting/internal/repositories/memory"
	"github.com/SscSPs/polaris_reporting/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StepRepository ---
type MockStepRepository struct {
	mock.Mock
}

func (m *MockStepRepository) SaveStep(ctx context.Context, key string, sealed []byte) error {
	args := m.Called(ctx, key, sealed)
	return args.Error(0)
}

func (m *MockStepRepository) FindStep(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStepRepository) DeleteStep(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ portsrepo.StepRepository = (*MockStepRepository)(nil)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// --- Test Suite ---
type PipelineServiceTestSuite struct {
	suite.Suite
	sealer   *utils.Sealer
	repo     *memory.StepRepository
	mockRepo *MockStepRepository
	service  portssvc.PipelineSvcFacade
	mocked   portssvc.PipelineSvcFacade
}

func (suite *PipelineServiceTestSuite) SetupSuite() {
	sealer, err := utils.NewSealer("pipeline-test-secret")
	suite.Require().NoError(err)
	suite.sealer = sealer
}

func (suite *PipelineServiceTestSuite) SetupTest() {
	clock := services.WithPipelineClock(func() time.Time { return fixedNow })
	suite.repo = memory.NewStepRepository()
	suite.mockRepo = new(MockStepRepository)
	suite.service = services.NewPipelineService(suite.repo, suite.sealer, clock)
	suite.mocked = services.NewPipelineService(suite.mockRepo, suite.sealer, clock)
}

func (suite *PipelineServiceTestSuite) save(step domain.Step, data string) {
	_, err := suite.service.Save(context.Background(), step, json.RawMessage(data))
	suite.Require().NoError(err)
}

// --- Test Cases ---

func (suite *PipelineServiceTestSuite) TestSaveAndLoad() {
	ctx := context.Background()

	payload, err := suite.service.Save(ctx, domain.StepClientInfo, json.RawMessage(`{ "name": "شركة الأمل", "fiscalYear": 2025 }`))
	suite.Require().NoError(err)
	suite.Equal(domain.StepClientInfo, payload.Step)
	suite.Equal(domain.PipelineVersion, payload.Version)
	suite.Equal(fixedNow, payload.Timestamp)
	suite.Equal(`{"name":"شركة الأمل","fiscalYear":2025}`, string(payload.Data))
	suite.Equal(utils.Checksum(payload.Data), payload.Checksum)
	suite.Len(payload.Checksum, 32)

	loaded, err := suite.service.Load(ctx, domain.StepClientInfo)
	suite.Require().NoError(err)
	suite.Equal(payload.Checksum, loaded.Checksum)
	suite.JSONEq(string(payload.Data), string(loaded.Data))

	info, err := suite.service.LoadClientInfo(ctx)
	suite.Require().NoError(err)
	suite.Equal("شركة الأمل", info.Name)
	suite.Equal(2025, info.FiscalYear)
}

func (suite *PipelineServiceTestSuite) TestSave_KeepsHTMLCharacters() {
	suite.save(domain.StepAdjustments, `{"note":"<b>R&D</b> > 0"}`)

	loaded, err := suite.service.Load(context.Background(), domain.StepAdjustments)
	suite.Require().NoError(err)
	suite.Equal(`{"note":"<b>R&D</b> > 0"}`, string(loaded.Data))
}

func (suite *PipelineServiceTestSuite) TestSave_RejectsBadInput() {
	ctx := context.Background()

	_, err := suite.service.Save(ctx, domain.Step("payment"), json.RawMessage(`{}`))
	suite.ErrorIs(err, apperrors.ErrUnknownStep)

	for _, data := range []string{``, `null`, `{"broken":`} {
		_, err = suite.service.Save(ctx, domain.StepReports, json.RawMessage(data))
		suite.ErrorIs(err, apperrors.ErrValidation, "data %q", data)
	}
}

func (suite *PipelineServiceTestSuite) TestSave_StoresUnderStepKey() {
	ctx := context.Background()
	suite.mockRepo.On("SaveStep", ctx, "polaris_step_reports", mock.MatchedBy(func(b []byte) bool {
		return len(b) > 0
	})).Return(nil).Once()

	_, err := suite.mocked.Save(ctx, domain.StepReports, json.RawMessage(`{"ok":true}`))
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestSave_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveStep", ctx, "polaris_step_reports", mock.Anything).Return(assert.AnError).Once()

	_, err := suite.mocked.Save(ctx, domain.StepReports, json.RawMessage(`{"ok":true}`))
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestLoad_Errors() {
	ctx := context.Background()

	_, err := suite.service.Load(ctx, domain.Step("nope"))
	suite.ErrorIs(err, apperrors.ErrUnknownStep)

	_, err = suite.service.Load(ctx, domain.StepReports)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Require().NoError(suite.repo.SaveStep(ctx, domain.StepReports.StorageKey(), []byte("not sealed at all, just text")))
	_, err = suite.service.Load(ctx, domain.StepReports)
	suite.ErrorIs(err, apperrors.ErrChecksumMismatch)
}

func (suite *PipelineServiceTestSuite) TestLoad_ChecksumMismatch() {
	ctx := context.Background()
	forged := `{"step":"reports","data":{"total":1},"timestamp":"2026-03-14T09:30:00Z","version":"1.0.1","checksum":"00000000000000000000000000000000"}`
	sealed, err := suite.sealer.Seal([]byte(forged))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.SaveStep(ctx, domain.StepReports.StorageKey(), sealed))

	_, err = suite.service.Load(ctx, domain.StepReports)
	suite.ErrorIs(err, apperrors.ErrChecksumMismatch)
}

func (suite *PipelineServiceTestSuite) TestLoad_PayloadForAnotherStep() {
	ctx := context.Background()
	suite.save(domain.StepReports, `{"total":1}`)

	sealed, err := suite.repo.FindStep(ctx, domain.StepReports.StorageKey())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.SaveStep(ctx, domain.StepSubmission.StorageKey(), sealed))

	_, err = suite.service.Load(ctx, domain.StepSubmission)
	suite.ErrorIs(err, apperrors.ErrChecksumMismatch)
}

func (suite *PipelineServiceTestSuite) TestLoad_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("FindStep", ctx, "polaris_step_reports").Return(nil, assert.AnError).Once()

	_, err := suite.mocked.Load(ctx, domain.StepReports)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestCanProceed() {
	ctx := context.Background()

	ok, err := suite.service.CanProceed(ctx, domain.StepClientInfo)
	suite.Require().NoError(err)
	suite.True(ok, "the first step has no prerequisites")

	ok, err = suite.service.CanProceed(ctx, domain.Step("home"))
	suite.Require().NoError(err)
	suite.False(ok)

	ok, err = suite.service.CanProceed(ctx, domain.StepAdjustments)
	suite.Require().NoError(err)
	suite.False(ok)

	suite.save(domain.StepClientInfo, `{"name":"ACME"}`)
	suite.save(domain.StepTrialBalance, `[]`)

	ok, err = suite.service.CanProceed(ctx, domain.StepAdjustments)
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.service.CanProceed(ctx, domain.StepReports)
	suite.Require().NoError(err)
	suite.False(ok, "adjustments has not been saved")

	suite.Require().NoError(suite.repo.SaveStep(ctx, domain.StepClientInfo.StorageKey(), []byte("corrupted")))
	ok, err = suite.service.CanProceed(ctx, domain.StepAdjustments)
	suite.Require().NoError(err)
	suite.False(ok, "a corrupted earlier step blocks progress")
}

func (suite *PipelineServiceTestSuite) TestCanProceed_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("FindStep", ctx, "polaris_step_client-info").Return(nil, assert.AnError).Once()

	_, err := suite.mocked.CanProceed(ctx, domain.StepTrialBalance)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *PipelineServiceTestSuite) TestProgress() {
	tests := map[domain.Step]string{
		domain.StepClientInfo:   "20",
		domain.StepTrialBalance: "40",
		domain.StepAdjustments:  "60",
		domain.StepReports:      "80",
		domain.StepSubmission:   "100",
		domain.Step("home"):     "0",
	}
	for step, want := range tests {
		suite.Equal(want, suite.service.Progress(step).String(), step)
	}
}

func (suite *PipelineServiceTestSuite) TestExportBackup() {
	ctx := context.Background()
	suite.save(domain.StepClientInfo, `{"name":"ACME"}`)
	suite.save(domain.StepReports, `{"done":true}`)
	suite.Require().NoError(suite.repo.SaveStep(ctx, domain.StepAdjustments.StorageKey(), []byte("corrupted")))

	backup, err := suite.service.ExportBackup(ctx)
	suite.Require().NoError(err)
	suite.Equal(fixedNow, backup.ExportedAt)
	suite.Len(backup.Data, 2)
	suite.JSONEq(`{"name":"ACME"}`, string(backup.Data[domain.StepClientInfo]))
	suite.JSONEq(`{"done":true}`, string(backup.Data[domain.StepReports]))
	suite.NotContains(backup.Data, domain.StepAdjustments)
}

func (suite *PipelineServiceTestSuite) TestLoadTrialBalance() {
	ctx := context.Background()
	tests := []struct {
		name string
		data string
		want int
	}{
		{"array", `[{"accountName":"النقدية","debit":100},{"name":"Bank","debit":"50"}]`, 2},
		{"rows key", `{"rows":[{"accountName":"Cash","debit":1}]}`, 1},
		{"trialBalance key", `{"trialBalance":[{"accountName":"Cash","debit":1},{"accountName":"Sales","credit":1},{"accountName":"Rent","debit":1}]}`, 3},
		{"empty array", `[]`, 0},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.save(domain.StepTrialBalance, tt.data)
			rows, err := suite.service.LoadTrialBalance(ctx)
			suite.Require().NoError(err)
			suite.Len(rows, tt.want)
		})
	}

	suite.save(domain.StepTrialBalance, `{"accounts":[]}`)
	_, err := suite.service.LoadTrialBalance(ctx)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.save(domain.StepTrialBalance, `"just a string"`)
	_, err = suite.service.LoadTrialBalance(ctx)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PipelineServiceTestSuite) TestLoadTrialBalance_NotStored() {
	_, err := suite.service.LoadTrialBalance(context.Background())
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PipelineServiceTestSuite) TestDelete() {
	ctx := context.Background()
	suite.save(domain.StepReports, `{"done":true}`)

	suite.Require().NoError(suite.service.Delete(ctx, domain.StepReports))
	_, err := suite.service.Load(ctx, domain.StepReports)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.ErrorIs(suite.service.Delete(ctx, domain.Step("bogus")), apperrors.ErrUnknownStep)
}

// --- Run Test Suite ---
func TestPipelineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineServiceTestSuite))
}
