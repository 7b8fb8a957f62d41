//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"

	"gamejam-portal-backend/internal/testutils"

	"github.com/sirupsen/logrus"
)

// TestMain owns the shared Postgres container behind the team and user suites
// and purges it exactly once, on exit or interrupt.
func TestMain(m *testing.M) {
	var once sync.Once
	purge := func(reason string) {
		once.Do(func() {
			logrus.Infof("jam repository tests %s, purging postgres container", reason)
			testutils.CleanupSharedContainer()
		})
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		purge("interrupted")
		os.Exit(1)
	}()

	code := m.Run()
	signal.Stop(sig)
	purge("finished")
	os.Exit(code)
}
