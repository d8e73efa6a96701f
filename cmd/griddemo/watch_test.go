package main

import (
	"context"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestWatchSettings_Reloads(t *testing.T) {
	path := writeSettings(t, "padding: 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	msgs := make(chan tea.Msg, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchSettings(ctx, path, func(m tea.Msg) {
			select {
			case msgs <- m:
			default:
			}
		})
	}()

	// The watcher starts asynchronously, so keep rewriting until it reports.
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(5 * time.Second)
	// A reload can observe the file mid-write, so wait for the final content.
	for reloaded := false; !reloaded; {
		select {
		case <-tick.C:
			if err := os.WriteFile(path, []byte("padding: 7\n"), 0o644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
		case m := <-msgs:
			if msg, ok := m.(settingsMsg); ok && msg.settings.Padding == 7 {
				reloaded = true
			}
		case <-timeout:
			t.Fatal("no reload within 5s")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchSettings() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("watchSettings did not stop after cancel")
	}
}
