package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"mailtriage/internal/model"
)

type fakeMessenger struct {
	standard  []string
	complaint []string
	err       error
}

func (m *fakeMessenger) SendStandardResponse(ctx context.Context, emailID, response string) error {
	if m.err != nil {
		return m.err
	}
	m.standard = append(m.standard, emailID)
	return nil
}

func (m *fakeMessenger) SendComplaintResponse(ctx context.Context, emailID, response string) error {
	if m.err != nil {
		return m.err
	}
	m.complaint = append(m.complaint, emailID)
	return nil
}

type fakeTicketing struct {
	urgent  []string
	support []string
	err     error
}

func (t *fakeTicketing) CreateUrgentTicket(ctx context.Context, emailID string, category model.Category, details string) error {
	if t.err != nil {
		return t.err
	}
	t.urgent = append(t.urgent, emailID)
	return nil
}

func (t *fakeTicketing) CreateSupportTicket(ctx context.Context, emailID, details string) error {
	if t.err != nil {
		return t.err
	}
	t.support = append(t.support, emailID)
	return nil
}

type fakeFeedback struct {
	records []string
	err     error
}

func (f *fakeFeedback) Record(ctx context.Context, emailID, feedback string) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, emailID)
	return nil
}

func newTestDispatcher() (*Dispatcher, *fakeMessenger, *fakeTicketing, *fakeFeedback) {
	m := &fakeMessenger{}
	tk := &fakeTicketing{}
	fb := &fakeFeedback{}
	return NewDispatcher(m, tk, fb, zap.NewNop()), m, tk, fb
}

func TestDispatchActionSequences(t *testing.T) {
	tests := []struct {
		category      model.Category
		wantStandard  int
		wantComplaint int
		wantUrgent    int
		wantSupport   int
		wantRecords   int
	}{
		{category: model.CategoryComplaint, wantComplaint: 1, wantUrgent: 1},
		{category: model.CategoryInquiry, wantStandard: 1},
		{category: model.CategoryFeedback, wantRecords: 1},
		{category: model.CategorySupportRequest, wantStandard: 1, wantSupport: 1},
		{category: model.CategoryOther, wantStandard: 1},
	}

	for _, test := range tests {
		t.Run(test.category.String(), func(t *testing.T) {
			d, m, tk, fb := newTestDispatcher()
			email := testEmail()

			if err := d.Dispatch(context.Background(), email, test.category, "canned response"); err != nil {
				t.Fatalf("Dispatch: %v", err)
			}

			if len(m.standard) != test.wantStandard {
				t.Fatalf("standard sends = %d, want %d", len(m.standard), test.wantStandard)
			}
			if len(m.complaint) != test.wantComplaint {
				t.Fatalf("complaint sends = %d, want %d", len(m.complaint), test.wantComplaint)
			}
			if len(tk.urgent) != test.wantUrgent {
				t.Fatalf("urgent tickets = %d, want %d", len(tk.urgent), test.wantUrgent)
			}
			if len(tk.support) != test.wantSupport {
				t.Fatalf("support tickets = %d, want %d", len(tk.support), test.wantSupport)
			}
			if len(fb.records) != test.wantRecords {
				t.Fatalf("feedback records = %d, want %d", len(fb.records), test.wantRecords)
			}
		})
	}
}

func TestDispatchFeedbackSendsNothingOutbound(t *testing.T) {
	d, m, _, fb := newTestDispatcher()

	if err := d.Dispatch(context.Background(), testEmail(), model.CategoryFeedback, "canned"); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(m.standard)+len(m.complaint) != 0 {
		t.Fatal("feedback dispatch sent an outbound message")
	}
	if len(fb.records) != 1 {
		t.Fatalf("feedback records = %d, want 1", len(fb.records))
	}
}

func TestDispatchFirstFailureAborts(t *testing.T) {
	d, m, tk, _ := newTestDispatcher()
	m.err = errors.New("smtp relay down")

	err := d.Dispatch(context.Background(), testEmail(), model.CategoryComplaint, "canned")
	if err == nil {
		t.Fatal("expected dispatch error")
	}
	var derr *DispatchError
	if !errors.As(err, &derr) {
		t.Fatalf("error is %T, want *DispatchError", err)
	}
	if len(tk.urgent) != 0 {
		t.Fatal("urgent ticket created after send failure")
	}
}
