package presenter

import (
	"strings"
	"testing"

	"github.com/goliatone/go-presenter-cache/proxy"
)

// account is the presented value in these tests.
type account struct {
	calls int
	plan  string
}

func (a *account) Plan() string {
	a.calls++
	return a.plan
}

// fieldHost exposes the presented attribute as an exported field.
type fieldHost struct {
	Account *account
	Extra   string
}

// methodHost exposes the presented attribute through a zero-arg method.
type methodHost struct {
	inner *account
}

func (h *methodHost) Account() *account {
	return h.inner
}

func TestPresents_Validation(t *testing.T) {
	tests := []struct {
		name       string
		definition Definition
		wantErr    string
	}{
		{
			name:       "missing attribute",
			definition: Presents(""),
			wantErr:    "Attribute",
		},
		{
			name:       "blank handler name",
			definition: Presents("account").WithHandler("  ", func([]any, proxy.Callback) (any, error) { return nil, nil }),
			wantErr:    "handler names",
		},
		{
			name:       "nil handler",
			definition: Presents("account").WithHandler("display", nil),
			wantErr:    "must not be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.definition.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	if err := Presents("account").Validate(); err != nil {
		t.Errorf("valid definition rejected: %v", err)
	}
}

func TestDefinition_New(t *testing.T) {
	value := &account{plan: "pro"}

	p, err := Presents("account").New(value)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := p.Invoke("plan")
	if err != nil {
		t.Fatalf("invoke failed: %v", err)
	}
	if got != "pro" {
		t.Errorf("plan = %v, want pro", got)
	}

	// The proxy memoizes: invoking again must not re-execute.
	if _, err := p.Invoke("plan"); err != nil {
		t.Fatal(err)
	}
	if value.calls != 1 {
		t.Errorf("Plan executed %d times, want 1", value.calls)
	}
}

func TestDefinition_New_InvalidDefinition(t *testing.T) {
	if _, err := Presents("").New(&account{}); err == nil {
		t.Error("invalid definition must not build a proxy")
	}
}

func TestDefinition_Wrap_Field(t *testing.T) {
	host := &fieldHost{Account: &account{plan: "team"}}

	p, err := Presents("account").Wrap(host)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}

	got, err := p.Invoke("plan")
	if err != nil {
		t.Fatalf("invoke failed: %v", err)
	}
	if got != "team" {
		t.Errorf("plan = %v, want team", got)
	}
}

func TestDefinition_Wrap_Method(t *testing.T) {
	host := &methodHost{inner: &account{plan: "free"}}

	p, err := Presents("account").Wrap(host)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}

	got, err := p.Invoke("plan")
	if err != nil {
		t.Fatalf("invoke failed: %v", err)
	}
	if got != "free" {
		t.Errorf("plan = %v, want free", got)
	}
}

func TestDefinition_Wrap_SnakeCaseAttribute(t *testing.T) {
	host := &struct{ BillingAccount string }{BillingAccount: "acc-9"}

	p, err := Presents("billing_account").Wrap(host)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	if p.Delegate() != "acc-9" {
		t.Errorf("delegate = %v, want acc-9", p.Delegate())
	}
}

func TestDefinition_Wrap_Errors(t *testing.T) {
	tests := []struct {
		name string
		host any
	}{
		{name: "nil host", host: nil},
		{name: "nil pointer host", host: (*fieldHost)(nil)},
		{name: "missing attribute", host: &fieldHost{}},
	}

	def := Presents("nonexistent")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := def.Wrap(tt.host); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDefinition_HandlersWired(t *testing.T) {
	executions := 0
	def := Presents("account").WithHandler("display_plan", func(args []any, _ proxy.Callback) (any, error) {
		executions++
		return "PRO", nil
	})

	p, err := def.New(&account{plan: "pro"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		got, err := p.Invoke("display_plan")
		if err != nil {
			t.Fatalf("invoke failed: %v", err)
		}
		if got != "PRO" {
			t.Errorf("display_plan = %v, want PRO", got)
		}
	}

	if executions != 1 {
		t.Errorf("handler executed %d times, want 1 (presentation logic is memoized too)", executions)
	}
}

func TestWithHandler_DoesNotMutateOriginal(t *testing.T) {
	base := Presents("account")
	derived := base.WithHandler("extra", func([]any, proxy.Callback) (any, error) { return nil, nil })

	if len(base.Handlers) != 0 {
		t.Error("WithHandler must copy, not mutate, the original definition")
	}
	if len(derived.Handlers) != 1 {
		t.Error("derived definition is missing the added handler")
	}
}
