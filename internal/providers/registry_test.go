package providers

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegister_UpsertReplacesExisting(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(&Descriptor{ServiceID: "rds", DisplayName: "first"})
	Register(&Descriptor{ServiceID: "rds", DisplayName: "second"})

	d, err := Get("rds")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if d.DisplayName != "second" {
		t.Errorf("expected last registration to win, got %q", d.DisplayName)
	}
	if got := ListSupported(); len(got) != 1 {
		t.Errorf("re-registration must not duplicate entries, got %v", got)
	}
}

func TestGet_NormalizesServiceID(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	Register(&Descriptor{ServiceID: "sqs"})

	d, err := Get("  SQS ")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if d.ServiceID != "sqs" {
		t.Errorf("unexpected descriptor %q", d.ServiceID)
	}
}

func TestGet_UnknownService(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, err := Get("dynamodb")
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
	if !strings.Contains(err.Error(), "dynamodb") {
		t.Errorf("error should name the service, got %q", err)
	}
}

func TestListSupported_Sorted(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(&Descriptor{ServiceID: "sqs"})
	Register(&Descriptor{ServiceID: "hetzner"})
	Register(&Descriptor{ServiceID: "rds"})

	want := []string{"hetzner", "rds", "sqs"}
	if diff := cmp.Diff(want, ListSupported()); diff != "" {
		t.Errorf("ListSupported mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	RegisterDefaults()

	for _, id := range []string{"rds", "sqs", "hetzner"} {
		d, err := Get(id)
		if err != nil {
			t.Fatalf("default service %q missing: %v", id, err)
		}
		if len(d.Catalog) == 0 {
			t.Errorf("service %q has an empty catalog", id)
		}
		if d.InstanceDimension() == "" {
			t.Errorf("service %q has no instance dimension", id)
		}
	}
}

func TestRegister_PanicsOnBadDescriptor(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	for name, d := range map[string]*Descriptor{
		"nil":      nil,
		"empty id": {ServiceID: "   "},
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Register(d)
		})
	}
}
