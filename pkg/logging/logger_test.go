package logging

import (
	"sync"
	"testing"
)

func TestGetLogger_LazyInit(t *testing.T) {
	_ = Close()

	if GetLogger() == nil {
		t.Fatal("GetLogger must lazily initialize when nothing is configured")
	}
	_ = Close()
}

func TestInit_Twice(t *testing.T) {
	_ = Close()

	if err := Init(Config{Level: LevelInfo}); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	if err := Init(Config{Level: LevelInfo}); err == nil {
		t.Error("second Init without Close must fail")
	}
	_ = Close()
}

func TestClose_ReenablesInit(t *testing.T) {
	_ = Close()

	if err := Init(Config{Level: LevelDebug}); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := Init(Config{Level: LevelWarn}); err != nil {
		t.Errorf("Init after Close returned error: %v", err)
	}
	_ = Close()
}

func TestGetLogger_ConcurrentWithClose(t *testing.T) {
	_ = Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if GetLogger() == nil {
					t.Error("GetLogger returned nil during concurrent Close")
					return
				}
			}
		}()
	}
	for j := 0; j < 100; j++ {
		_ = Close()
	}
	wg.Wait()
	_ = Close()
}
