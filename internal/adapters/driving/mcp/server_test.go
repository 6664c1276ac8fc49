package mcp

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/logger"
)

// safeBuffer guards concurrent writes from the watch goroutine.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestServer_WatchDocuments(t *testing.T) {
	buf := &safeBuffer{}
	logger.SetVerbose(true)
	logger.SetOutput(buf)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	server := newTestServer(t, &mockRequirementService{})

	docs := make(chan domain.RawDocument, 1)
	docs <- domain.RawDocument{URI: "/data/hcis_sec_directives.json"}
	close(docs)

	server.WatchDocuments(docs)

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "/data/hcis_sec_directives.json") &&
			strings.Contains(buf.String(), "restart to reload")
	}, time.Second, 10*time.Millisecond)
}
