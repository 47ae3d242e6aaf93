package service

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeService struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	args     []any
	log      *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(args ...any) error {
	f.args = args
	*f.log = append(*f.log, "init:"+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestHubLifecycleOrder(t *testing.T) {
	var events []string
	h := NewHub()
	for _, s := range []*fakeService{
		{name: "audio", deps: []string{"config"}, log: &events},
		{name: "config", log: &events},
		{name: "hud", deps: []string{"audio", "config"}, log: &events},
	} {
		if err := h.Register(s); err != nil {
			t.Fatal(err)
		}
	}

	if err := h.InitAll(map[string][]any{"audio": {true, 0.5}}); err != nil {
		t.Fatal(err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatal(err)
	}
	h.StopAll()

	want := []string{
		"init:config", "init:audio", "init:hud",
		"start:config", "start:audio", "start:hud",
		"stop:hud", "stop:audio", "stop:config",
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("lifecycle mismatch (-want +got):\n%s", diff)
	}

	audio, ok := Lookup[*fakeService](h, "audio")
	if !ok {
		t.Fatal("Lookup failed")
	}
	if diff := cmp.Diff([]any{true, 0.5}, audio.args); diff != "" {
		t.Errorf("init args (-want +got):\n%s", diff)
	}
}

func TestHubRegisterDuplicate(t *testing.T) {
	var events []string
	h := NewHub()
	_ = h.Register(&fakeService{name: "a", log: &events})
	if err := h.Register(&fakeService{name: "a", log: &events}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestHubResolveErrors(t *testing.T) {
	tests := []struct {
		name     string
		services []*fakeService
		want     error
	}{
		{
			name:     "unknown dependency",
			services: []*fakeService{{name: "a", deps: []string{"missing"}}},
			want:     ErrUnknown,
		},
		{
			name: "cycle",
			services: []*fakeService{
				{name: "a", deps: []string{"b"}},
				{name: "b", deps: []string{"a"}},
			},
			want: ErrCycle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []string
			h := NewHub()
			for _, s := range tt.services {
				s.log = &events
				_ = h.Register(s)
			}
			if err := h.InitAll(nil); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if len(events) != 0 {
				t.Errorf("no service should init, got %v", events)
			}
		})
	}
}

func TestHubInitRollback(t *testing.T) {
	var events []string
	h := NewHub()
	_ = h.Register(&fakeService{name: "a", log: &events})
	_ = h.Register(&fakeService{name: "b", deps: []string{"a"}, initErr: errors.New("boom"), log: &events})

	if err := h.InitAll(nil); err == nil {
		t.Fatal("expected init error")
	}
	want := []string{"init:a", "init:b", "stop:a"}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("rollback mismatch (-want +got):\n%s", diff)
	}
}

func TestHubStartRollback(t *testing.T) {
	var events []string
	h := NewHub()
	_ = h.Register(&fakeService{name: "a", log: &events})
	_ = h.Register(&fakeService{name: "b", deps: []string{"a"}, startErr: errors.New("no device"), log: &events})

	if err := h.InitAll(nil); err != nil {
		t.Fatal(err)
	}
	if err := h.StartAll(); err == nil {
		t.Fatal("expected start error")
	}
	h.StopAll()

	want := []string{"init:a", "init:b", "start:a", "start:b", "stop:a"}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("rollback mismatch (-want +got):\n%s", diff)
	}
}
