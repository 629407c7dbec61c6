package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selection-assistant/internal/assistant/usecase"
	credRepo "selection-assistant/internal/credential/repository/memory"
	credUC "selection-assistant/internal/credential/usecase"
	"selection-assistant/internal/invoker"
	"selection-assistant/internal/model"
	"selection-assistant/internal/router"
	"selection-assistant/pkg/gemini"
	"selection-assistant/pkg/log"
	"selection-assistant/pkg/metrics"
)

type mockGemini struct {
	errs     []error
	text     string
	calls    int
	requests []gemini.GenerateRequest
	keys     []string
}

func (m *mockGemini) GenerateContent(ctx context.Context, apiKey string, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.calls++
	m.keys = append(m.keys, apiKey)
	m.requests = append(m.requests, req)
	if m.calls <= len(m.errs) {
		return nil, m.errs[m.calls-1]
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{Content: gemini.Content{Parts: []gemini.Part{{Text: m.text}}}}},
	}, nil
}

func (m *mockGemini) Model() string { return "gemini-test" }

type recordingSleeper struct {
	delays []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return nil
}

type fixture struct {
	llm     *mockGemini
	sleeper *recordingSleeper
	store   *credRepo.Store
	uc      interface {
		Submit(ctx context.Context, req model.TaskRequest) model.TaskResult
		Preview(ctx context.Context, req model.TaskRequest) (model.ModelQuery, *model.Failure)
		SetCredential(ctx context.Context, key string) error
	}
}

func newFixture(t *testing.T, apiKey string, llm *mockGemini) fixture {
	t.Helper()
	l := log.NewNop()
	store := credRepo.New()
	creds := credUC.New(l, store, "", apiKey)
	require.NoError(t, creds.Load(context.Background()))

	sleeper := &recordingSleeper{}
	inv, err := invoker.New(llm, creds, invoker.DefaultConfig(), l, invoker.WithSleeper(sleeper))
	require.NoError(t, err)

	return fixture{
		llm:     llm,
		sleeper: sleeper,
		store:   store,
		uc:      usecase.New(l, router.New(), inv, creds),
	}
}

func TestSubmit_Success(t *testing.T) {
	f := newFixture(t, "key", &mockGemini{text: "* **Point** one"})

	res := f.uc.Submit(context.Background(), model.TaskRequest{
		Action:     model.ActionSummarize,
		SourceText: "<b>hello</b> <i>world</i>",
	})

	require.True(t, res.Succeeded(), "failure: %+v", res.Failure)
	assert.Equal(t, "* **Point** one", res.Text)
	require.Equal(t, 1, f.llm.calls)
	req := f.llm.requests[0]
	assert.Equal(t, router.InstructionSummarize, req.SystemInstruction.Parts[0].Text)
	assert.Equal(t, "hello world", req.Contents[0].Parts[0].Text)
}

func TestSubmit_MissingCredential_NoCall(t *testing.T) {
	f := newFixture(t, "", &mockGemini{text: "never"})

	res := f.uc.Submit(context.Background(), model.TaskRequest{Action: model.ActionRewrite, SourceText: "text"})

	require.False(t, res.Succeeded())
	assert.Equal(t, model.FailureMissingCredential, res.Failure.Kind)
	assert.NotEmpty(t, res.Failure.Message)
	assert.Equal(t, 0, f.llm.calls)
}

func TestSubmit_EmptyParameter_NoCall(t *testing.T) {
	f := newFixture(t, "key", &mockGemini{text: "never"})

	for _, action := range []model.Action{model.ActionTranslate, model.ActionCustomPrompt} {
		res := f.uc.Submit(context.Background(), model.TaskRequest{Action: action, SourceText: "text", Parameter: ""})
		require.False(t, res.Succeeded())
		assert.Equal(t, model.FailureEmptyParameter, res.Failure.Kind)
	}
	assert.Equal(t, 0, f.llm.calls)
}

func TestSubmit_UnknownActionsShareOneMetricSeries(t *testing.T) {
	f := newFixture(t, "key", &mockGemini{text: "never"})
	unknown := metrics.TaskSubmissions.WithLabelValues(metrics.ActionUnknown, string(model.FailureUnknownAction))
	seriesBefore := testutil.CollectAndCount(metrics.TaskSubmissions)
	countBefore := testutil.ToFloat64(unknown)

	for i := 0; i < 50; i++ {
		res := f.uc.Submit(context.Background(), model.TaskRequest{
			Action:     model.Action(fmt.Sprintf("junk-%d", i)),
			SourceText: "text",
		})
		require.False(t, res.Succeeded())
		assert.Equal(t, model.FailureUnknownAction, res.Failure.Kind)
	}

	assert.Equal(t, seriesBefore, testutil.CollectAndCount(metrics.TaskSubmissions))
	assert.Equal(t, countBefore+50, testutil.ToFloat64(unknown))
	assert.Equal(t, 0, f.llm.calls)
}

func TestSubmit_RetriesThenSucceeds(t *testing.T) {
	f := newFixture(t, "key", &mockGemini{
		errs: []error{
			&gemini.APIError{StatusCode: http.StatusTooManyRequests},
			errors.New("connection reset"),
		},
		text: "bonjour",
	})

	res := f.uc.Submit(context.Background(), model.TaskRequest{Action: model.ActionTranslate, SourceText: "hello", Parameter: "French"})

	require.True(t, res.Succeeded())
	assert.Equal(t, "bonjour", res.Text)
	assert.Equal(t, 3, f.llm.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, f.sleeper.delays)
}

func TestSubmit_AllAttemptsFail(t *testing.T) {
	apiErr := &gemini.APIError{StatusCode: http.StatusBadRequest, Body: `{"error": {"message": "API key not valid"}}`}
	f := newFixture(t, "key", &mockGemini{errs: []error{apiErr, apiErr, apiErr, apiErr}})

	res := f.uc.Submit(context.Background(), model.TaskRequest{Action: model.ActionProofread, SourceText: "teh text"})

	require.False(t, res.Succeeded())
	assert.Equal(t, model.FailureHTTP, res.Failure.Kind)
	assert.Equal(t, http.StatusBadRequest, res.Failure.StatusCode)
	assert.Equal(t, 3, res.Failure.Attempts)
	assert.Contains(t, res.Failure.Message, "HTTP 400")
	assert.Contains(t, res.Failure.Message, "API key not valid")
	assert.Equal(t, 3, f.llm.calls)
}

func TestSubmit_CallerCancellationDoesNotAbort(t *testing.T) {
	f := newFixture(t, "key", &mockGemini{text: "finished"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := f.uc.Submit(ctx, model.TaskRequest{Action: model.ActionSummarize, SourceText: "text"})
	require.True(t, res.Succeeded(), "failure: %+v", res.Failure)
	assert.Equal(t, "finished", res.Text)
}

func TestSetCredential_NextSubmitUsesNewKey(t *testing.T) {
	f := newFixture(t, "", &mockGemini{text: "ok"})
	ctx := context.Background()

	require.NoError(t, f.uc.SetCredential(ctx, "key-1"))
	require.NoError(t, f.uc.SetCredential(ctx, "key-1"))
	assert.Equal(t, 2, f.store.Writes())

	res := f.uc.Submit(ctx, model.TaskRequest{Action: model.ActionSummarize, SourceText: "text"})
	require.True(t, res.Succeeded())
	assert.Equal(t, []string{"key-1"}, f.llm.keys)
}

func TestPreview_NoNetworkCall(t *testing.T) {
	f := newFixture(t, "key", &mockGemini{text: "never"})

	q, failure := f.uc.Preview(context.Background(), model.TaskRequest{
		Action:     model.ActionCustomPrompt,
		SourceText: "<p>text</p>",
		Parameter:  "Make it rhyme",
	})

	require.Nil(t, failure)
	assert.Equal(t, "Make it rhyme", q.Instruction)
	assert.Equal(t, "text", q.Content)
	assert.Equal(t, 0, f.llm.calls)
}
