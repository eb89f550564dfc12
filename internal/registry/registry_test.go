package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tunehunt/internal/content"
)

type fixedSource struct{}

func (fixedSource) Name() string { return "fixed-test" }

func (fixedSource) Fetch(context.Context) (content.Names, error) {
	return content.Names{Artists: []string{"A"}}, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("fixed-test", "test source", func(Options) (content.Source, error) {
		return fixedSource{}, nil
	})

	if !Exists("fixed-test") {
		t.Fatal("Exists() = false after Register")
	}

	src, err := Create("fixed-test", Options{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if src.Name() != "fixed-test" {
		t.Errorf("Name() = %q", src.Name())
	}

	found := false
	for _, info := range List() {
		if info.Name == "fixed-test" {
			found = info.Description == "test source"
		}
	}
	if !found {
		t.Error("List() should include the registered source with its description")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist", Options{})
	if !errors.Is(err, ErrUnknownSource) {
		t.Errorf("Create() error = %v, expected ErrUnknownSource", err)
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("failing-test", "", func(Options) (content.Source, error) {
		return nil, boom
	})

	if _, err := Create("failing-test", Options{}); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected wrapped factory error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", "", func(Options) (content.Source, error) { return fixedSource{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-test", "", func(Options) (content.Source, error) { return fixedSource{}, nil })
}
