//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"
)

var (
	sharedContainer     *MongoDBContainer
	sharedContainerErr  error
	sharedContainerOnce sync.Once
)

// GetSharedMongoDB returns the package-wide shared MongoDB container,
// starting it on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedContainerOnce.Do(func() {
		sharedContainer, sharedContainerErr = SetupMongoDB(ctx)
	})
	return sharedContainer, sharedContainerErr
}

// RunTestMainWithMongoDB starts the shared container, runs the
// package's tests and tears the container down. Use from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunTestMainWithMongoDB(context.Background(), m))
//	}
func RunTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if sharedContainer != nil {
		if err := sharedContainer.Cleanup(ctx); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "warning: failed to cleanup shared MongoDB container: %v\n", err)
		}
	}
	return code
}

// SharedContainerURI returns the URI of the shared container. Panics
// when the container has not been started.
func SharedContainerURI() string {
	if sharedContainer == nil {
		panic("shared MongoDB container not initialized, call GetSharedMongoDB first")
	}
	return sharedContainer.URI
}

// UniqueDBName turns a test name into a valid, unique MongoDB database
// name for test isolation.
func UniqueDBName(testName string) string {
	sanitized := make([]rune, 0, len(testName))
	for _, r := range testName {
		if r == '/' || r == '\\' {
			sanitized = append(sanitized, '_')
		} else {
			sanitized = append(sanitized, r)
		}
	}
	name := string(sanitized)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
