package view

import (
	"context"
	"testing"
	"time"
)

func TestLoaderCommitOnlyForCurrentGeneration(t *testing.T) {
	l := NewLoader(context.Background())

	_, first := l.Begin()
	_, second := l.Begin()

	if first() {
		t.Fatal("superseded request must not commit")
	}
	if !second() {
		t.Fatal("current request must commit")
	}
}

func TestLoaderBeginCancelsPreviousContext(t *testing.T) {
	l := NewLoader(context.Background())

	ctx1, _ := l.Begin()
	l.Begin()

	select {
	case <-ctx1.Done():
	case <-time.After(time.Second):
		t.Fatal("starting a new request must cancel the previous context")
	}
}

func TestLoaderCloseInvalidatesInFlight(t *testing.T) {
	l := NewLoader(context.Background())
	ctx, commit := l.Begin()
	l.Close()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("close must cancel the in-flight context")
	}
	if commit() {
		t.Fatal("close must invalidate the in-flight commit")
	}
}

func TestLoaderInheritsLifetimeContext(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	l := NewLoader(parent)
	ctx, _ := l.Begin()
	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("cancelling the component lifetime must cancel requests")
	}
}
