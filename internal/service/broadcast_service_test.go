package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"roomlink-be/internal/dto"
	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
	"roomlink-be/pkg/delivery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTransport counts sends and optionally fails specific addresses.
type recordingTransport struct {
	mu      sync.Mutex
	sent    []string
	failFor map[string]error
}

func (t *recordingTransport) Send(ctx context.Context, rcpt entity.Recipient, msg delivery.Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err, ok := t.failFor[rcpt.Email]; ok {
		return err
	}
	t.sent = append(t.sent, rcpt.Email)
	return nil
}

func newBroadcastFixture(transport delivery.Transport) (*fakeUnitOfWork, IBroadcastService) {
	uow := newFakeUnitOfWork()
	dispatcher := delivery.NewDispatcher(transport, nil, transport, transport, nopLogger{})
	svc := NewBroadcastService(&fakeUowFactory{uow: uow}, dispatcher, nopLogger{}, nil)
	return uow, svc
}

func landlordAndTenantPopulation() []entity.Recipient {
	return []entity.Recipient{
		{Id: uuid.New(), Email: "landlord1@example.com", AccountType: entity.AccountLandlord, VerificationStatus: entity.VerificationVerified},
		{Id: uuid.New(), Email: "landlord2@example.com", AccountType: entity.AccountLandlord},
		{Id: uuid.New(), Email: "tenant1@example.com", AccountType: entity.AccountTenant, VerificationStatus: entity.VerificationVerified},
	}
}

func TestSend_AudienceFilterAndAudit(t *testing.T) {
	transport := &recordingTransport{}
	uow, svc := newBroadcastFixture(transport)
	uow.users.recipients = landlordAndTenantPopulation()

	report, err := svc.Send(context.Background(), &dto.BroadcastRequest{
		Audience: "landlord",
		Channel:  "email",
		Subject:  "New policy",
		Body:     "Please review",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 0, report.FailedCount)
	assert.ElementsMatch(t, []string{"landlord1@example.com", "landlord2@example.com"}, transport.sent)

	require.Len(t, uow.broadcastJobs.jobs, 1)
	job := uow.broadcastJobs.jobs[0]
	assert.Equal(t, entity.ChannelEmail, job.Channel)
	assert.Equal(t, entity.AudienceLandlord, job.Audience)
	assert.Equal(t, 2, job.TargetCount)
	assert.Equal(t, 2, job.SuccessCount)
}

func TestSend_PartialFailureIsNotAnError(t *testing.T) {
	transport := &recordingTransport{failFor: map[string]error{
		"landlord2@example.com": errors.New("mailbox full"),
	}}
	uow, svc := newBroadcastFixture(transport)
	uow.users.recipients = landlordAndTenantPopulation()

	report, err := svc.Send(context.Background(), &dto.BroadcastRequest{
		Audience: "landlord",
		Channel:  "email",
		Subject:  "New policy",
		Body:     "Please review",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.FailedCount)
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0].Reason, "mailbox full")

	// The audit row records the same split.
	require.Len(t, uow.broadcastJobs.jobs, 1)
	assert.Equal(t, 1, uow.broadcastJobs.jobs[0].FailedCount)
}

func TestSend_InvalidAudienceRejectsWholeRequest(t *testing.T) {
	transport := &recordingTransport{}
	uow, svc := newBroadcastFixture(transport)
	uow.users.recipients = landlordAndTenantPopulation()

	_, err := svc.Send(context.Background(), &dto.BroadcastRequest{
		Audience: "everybody",
		Channel:  "email",
		Subject:  "s",
		Body:     "b",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidAudience(err))
	assert.Empty(t, transport.sent)
	assert.Empty(t, uow.broadcastJobs.jobs)
}

func TestSend_RecipientStoreFailure(t *testing.T) {
	transport := &recordingTransport{}
	uow, svc := newBroadcastFixture(transport)
	uow.users.err = errors.New("connection refused")

	_, err := svc.Send(context.Background(), &dto.BroadcastRequest{
		Audience: "all",
		Channel:  "email",
		Subject:  "s",
		Body:     "b",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsStoreUnavailable(err))
	assert.Empty(t, transport.sent)
}

func TestSend_AuditWriteFailureDoesNotFailTheSend(t *testing.T) {
	transport := &recordingTransport{}
	uow, svc := newBroadcastFixture(transport)
	uow.users.recipients = landlordAndTenantPopulation()
	uow.broadcastJobs.createErr = errors.New("disk full")

	report, err := svc.Send(context.Background(), &dto.BroadcastRequest{
		Audience: "all",
		Channel:  "email",
		Subject:  "s",
		Body:     "b",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.SuccessCount)
}

func TestSend_EmptyAudienceSegment(t *testing.T) {
	transport := &recordingTransport{}
	uow, svc := newBroadcastFixture(transport)
	uow.users.recipients = landlordAndTenantPopulation()

	report, err := svc.Send(context.Background(), &dto.BroadcastRequest{
		Audience: "agent",
		Channel:  "email",
		Subject:  "s",
		Body:     "b",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalCount)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 0, report.FailedCount)
}

func TestSendDirect_ExplicitAddresses(t *testing.T) {
	transport := &recordingTransport{}
	uow, svc := newBroadcastFixture(transport)

	report, err := svc.SendDirect(context.Background(), &dto.DirectSendRequest{
		To:      dto.StringList{"one@example.com", "two@example.com"},
		Subject: "Hello",
		Body:    "<b>Hi</b>",
		BodyType: "html",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, 2, report.SuccessCount)
	assert.ElementsMatch(t, []string{"one@example.com", "two@example.com"}, transport.sent)

	// The direct variant leaves no audit trail.
	assert.Empty(t, uow.broadcastJobs.jobs)
}

func TestListJobs_ReturnsAuditHistory(t *testing.T) {
	transport := &recordingTransport{}
	uow, svc := newBroadcastFixture(transport)
	uow.broadcastJobs.jobs = []*entity.BroadcastJob{
		{Id: uuid.New(), Subject: "a"},
		{Id: uuid.New(), Subject: "b"},
	}

	jobs, err := svc.ListJobs(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}
