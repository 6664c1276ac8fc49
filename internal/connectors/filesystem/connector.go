package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/7ammad/saudi-standards-api/internal/core/domain"
	"github.com/7ammad/saudi-standards-api/internal/core/ports/driven"
	"github.com/7ammad/saudi-standards-api/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector loads standards documents from JSON files in a directory.
type Connector struct {
	sourceID string
	rootPath string
	mu       sync.Mutex
	closed   bool
	watcher  *fsnotify.Watcher
}

// New creates a new filesystem connector rooted at rootPath.
func New(sourceID, rootPath string) *Connector {
	return &Connector{
		sourceID: sourceID,
		rootPath: rootPath,
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// SourceID returns the source identifier.
func (c *Connector) SourceID() string {
	return c.sourceID
}

// Validate checks the document directory exists and is readable.
func (c *Connector) Validate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrConnectorClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	info, err := os.Stat(c.rootPath)
	if err != nil {
		return fmt.Errorf("document directory %s: %w", c.rootPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("document directory %s: %w", c.rootPath, domain.ErrInvalidInput)
	}
	return nil
}

// FullLoad streams every JSON document under the root in sorted
// filename order. A file that fails to read or parse goes to the
// error channel; the stream continues.
func (c *Connector) FullLoad(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docsChan := make(chan domain.RawDocument)
	errsChan := make(chan error, 1)

	go func() {
		defer close(docsChan)
		defer close(errsChan)

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			errsChan <- domain.ErrConnectorClosed
			return
		}
		c.mu.Unlock()

		paths, err := filepath.Glob(filepath.Join(c.rootPath, "*.json"))
		if err != nil {
			errsChan <- fmt.Errorf("list documents: %w", err)
			return
		}
		sort.Strings(paths)
		logger.Debug("Filesystem: found %d documents under %s", len(paths), c.rootPath)

		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			default:
			}

			doc, err := c.loadFile(path)
			if err != nil {
				select {
				case errsChan <- err:
				case <-ctx.Done():
					return
				}
				continue
			}

			select {
			case docsChan <- doc:
			case <-ctx.Done():
				return
			}
		}
	}()

	return docsChan, errsChan
}

// Watch emits a document whenever a JSON file under the root is
// created or rewritten. The watcher stops when the context is
// cancelled or the connector is closed.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.RawDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, domain.ErrConnectorClosed
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(c.rootPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", c.rootPath, err)
	}
	c.watcher = watcher

	docsChan := make(chan domain.RawDocument)
	go func() {
		defer close(docsChan)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
					continue
				}
				if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
					continue
				}
				doc, err := c.loadFile(event.Name)
				if err != nil {
					logger.Warn("Filesystem: watch: %v", err)
					continue
				}
				select {
				case docsChan <- doc:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Filesystem: watch: %v", err)
			}
		}
	}()

	return docsChan, nil
}

// Close releases the watcher, if any.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.watcher != nil {
		err := c.watcher.Close()
		c.watcher = nil
		return err
	}
	return nil
}

// loadFile reads and parses one document file.
func (c *Connector) loadFile(path string) (domain.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("read %s: %w", path, err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return domain.RawDocument{}, fmt.Errorf("parse %s: %w", path, err)
	}

	standard, dom := DeriveStandard(filepath.Base(path))
	return domain.RawDocument{
		SourceID: c.sourceID,
		URI:      path,
		Standard: standard,
		Domain:   dom,
		Data:     parsed,
	}, nil
}
