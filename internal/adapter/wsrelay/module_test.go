package wsrelay

import (
	"testing"

	"github.com/polkiloo/panganku/internal/config"
)

func TestNewSinkUsesConfig(t *testing.T) {
	sink, err := newSink(sinkParams{Config: &config.Config{RelayURL: "http://localhost:4000"}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink == nil || sink.Name() != "relay" {
		t.Fatalf("expected relay sink, got %v", sink)
	}
}

func TestNewSinkDisabledWithoutURL(t *testing.T) {
	sink, err := newSink(sinkParams{Config: &config.Config{}, Logger: testLogger()})
	if err != nil || sink != nil {
		t.Fatalf("expected nil sink, got %v err=%v", sink, err)
	}
}

func TestNewSinkRejectsRelativeURL(t *testing.T) {
	if _, err := newSink(sinkParams{Config: &config.Config{RelayURL: "/relay"}, Logger: testLogger()}); err == nil {
		t.Fatal("expected error for relative url")
	}
}
