package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/language"
	"github.com/dshills/inkwell/internal/modeline"
	"github.com/dshills/inkwell/internal/plugin"
	"github.com/dshills/inkwell/internal/stream"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("inkwell.document")

// Manager owns the open documents.
type Manager struct {
	mu     sync.RWMutex
	docs   map[ID]*Document
	byPath map[string]ID

	cfg     *config.Config
	langs   *language.Registry
	plugins *plugin.Registry
	parser  *modeline.Parser
}

// Option configures a Manager.
type Option func(*Manager)

// WithLanguages sets the language registry. Config overrides are applied
// to it.
func WithLanguages(r *language.Registry) Option {
	return func(m *Manager) { m.langs = r }
}

// WithPlugins sets the plugin registry.
func WithPlugins(r *plugin.Registry) Option {
	return func(m *Manager) { m.plugins = r }
}

// NewManager creates a manager. A nil cfg uses config.Default.
func NewManager(cfg *config.Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	m := &Manager{
		docs:   make(map[ID]*Document),
		byPath: make(map[string]ID),
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.langs == nil {
		m.langs = language.NewBuiltinRegistry()
	}
	for id, lc := range cfg.Languages {
		m.langs.Override(language.Language{
			ID:          id,
			Name:        lc.Name,
			Extensions:  lc.Extensions,
			Filenames:   lc.Filenames,
			LineComment: lc.LineComment,
		})
	}

	if m.plugins == nil {
		m.plugins = plugin.NewBuiltinRegistry()
	}

	mappings := modeline.DefaultMappings()
	if path := cfg.Modeline.Mappings; path != "" {
		extra, err := modeline.LoadMappingsFile(path)
		if err != nil {
			return nil, err
		}
		mappings = mappings.Merge(extra)
	}
	m.parser = modeline.NewParser(mappings)

	return m, nil
}

// Languages returns the language registry.
func (m *Manager) Languages() *language.Registry { return m.langs }

// Plugins returns the plugin registry.
func (m *Manager) Plugins() *plugin.Registry { return m.plugins }

// Config returns the configuration.
func (m *Manager) Config() *config.Config { return m.cfg }

// Open loads the file at path into a new document.
func (m *Manager) Open(ctx context.Context, path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}

	m.mu.RLock()
	_, open := m.byPath[abs]
	m.mu.RUnlock()
	if open {
		return nil, &PathError{Op: "open", Path: abs, Err: ErrAlreadyOpen}
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, &PathError{Op: "open", Path: abs, Err: err}
	}
	defer f.Close()

	doc, err := m.load(ctx, abs, f)
	if err != nil {
		return nil, &PathError{Op: "open", Path: abs, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, open := m.byPath[abs]; open {
		return nil, &PathError{Op: "open", Path: abs, Err: ErrAlreadyOpen}
	}
	m.docs[doc.ID] = doc
	m.byPath[abs] = doc.ID

	log.Info("opened document", "id", string(doc.ID), "path", abs, "language", doc.Buffer.Language())
	return doc, nil
}

// OpenReader loads r into a new document without a path. name is used
// only for language detection and may be empty.
func (m *Manager) OpenReader(ctx context.Context, name string, r io.Reader) (*Document, error) {
	doc, err := m.load(ctx, name, r)
	if err != nil {
		return nil, err
	}
	doc.Path = ""

	m.mu.Lock()
	m.docs[doc.ID] = doc
	m.mu.Unlock()

	log.Info("opened stream", "id", string(doc.ID), "name", name)
	return doc, nil
}

func (m *Manager) load(ctx context.Context, path string, r io.Reader) (*Document, error) {
	b := buffer.NewBuffer()
	if path != "" {
		b.SetLanguage(m.langs.Detect(path))
	}

	pc := &plugin.Context{Buffer: b, Languages: m.langs, Config: m.cfg, Input: r}
	if err := (plugin.StreamDecoder{}).Apply(ctx, pc); err != nil {
		return nil, err
	}

	doc := &Document{
		ID:                     newID(),
		Buffer:                 b,
		Path:                   path,
		Encoding:               m.cfg.Stream.Encoding,
		Newline:                pc.Load.Newline,
		TrimmedTrailingNewline: pc.Load.TrimmedTrailingNewline,
		Settings:               DefaultSettings,
		OpenedAt:               time.Now(),
	}
	m.scanModelines(doc)
	return doc, nil
}

// scanModelines applies the document's modelines, undoing settings that a
// previous scan made and the current one no longer does.
func (m *Manager) scanModelines(doc *Document) {
	if !m.cfg.Modeline.Enabled {
		return
	}

	prev := doc.Modeline
	opts := m.parser.Scan(doc.Buffer)
	doc.Settings = opts.Apply(doc.Settings, DefaultSettings, &prev)
	doc.Modeline = opts

	if opts.Has(modeline.SetLanguage) {
		doc.Buffer.SetLanguage(opts.Language)
	} else if prev.Has(modeline.SetLanguage) && doc.Path != "" {
		doc.Buffer.SetLanguage(m.langs.Detect(doc.Path))
	}
}

// Get returns the open document with id.
func (m *Manager) Get(id ID) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotOpen, id)
	}
	return doc, nil
}

// Documents returns the open documents ordered by open time.
func (m *Manager) Documents() []*Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Document, 0, len(m.docs))
	for _, doc := range m.docs {
		out = append(out, doc)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OpenedAt.Before(out[j].OpenedAt)
	})
	return out
}

// Close forgets the document. Unsaved changes are discarded.
func (m *Manager) Close(id ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDocumentNotOpen, id)
	}
	delete(m.docs, id)
	if doc.Path != "" {
		delete(m.byPath, doc.Path)
	}

	log.Info("closed document", "id", string(id), "modified", doc.Modified())
	return nil
}

// Apply runs the named plugin on the document.
func (m *Manager) Apply(ctx context.Context, id ID, name string) error {
	doc, err := m.Get(id)
	if err != nil {
		return err
	}
	return m.plugins.Apply(ctx, name, m.Context(doc))
}

// Context returns a plugin context for doc.
func (m *Manager) Context(doc *Document) *plugin.Context {
	return &plugin.Context{Buffer: doc.Buffer, Languages: m.langs, Config: m.cfg}
}

// WriteTo encodes the document to w with the configured save policy. It
// strips trailing whitespace first when save.strip_trailing_whitespace
// is set.
func (m *Manager) WriteTo(ctx context.Context, id ID, w io.Writer) (int64, error) {
	doc, err := m.Get(id)
	if err != nil {
		return 0, err
	}

	if m.cfg.Save.StripTrailingWhitespace {
		if err := (plugin.WhitespaceStripper{}).Apply(ctx, m.Context(doc)); err != nil {
			return 0, err
		}
	}

	return stream.Save(ctx, w, doc.Buffer.Snapshot(), m.saveOptions(doc))
}

func (m *Manager) saveOptions(doc *Document) stream.SaveOptions {
	enc := m.cfg.Save.Encoding
	if enc == "" {
		enc = doc.Encoding
	}
	return stream.SaveOptions{
		Encoding:           enc,
		Newline:            m.cfg.Save.LineEnding(doc.Newline),
		AddTrailingNewline: m.cfg.Save.AddTrailingNewline,
	}
}

// Save writes the document back to its path. The file is replaced
// atomically; the modified flag is cleared and modelines are rescanned.
func (m *Manager) Save(ctx context.Context, id ID) error {
	doc, err := m.Get(id)
	if err != nil {
		return err
	}
	if doc.Path == "" {
		return &PathError{Op: "save", Path: string(id), Err: ErrNoPath}
	}

	if err := m.writeFile(ctx, doc); err != nil {
		return &PathError{Op: "save", Path: doc.Path, Err: err}
	}

	doc.Buffer.SetModified(false)
	doc.SavedAt = time.Now()
	m.scanModelines(doc)

	log.Info("saved document", "id", string(id), "path", doc.Path)
	return nil
}

func (m *Manager) writeFile(ctx context.Context, doc *Document) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(doc.Path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(doc.Path), "."+filepath.Base(doc.Path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := m.WriteTo(ctx, doc.ID, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), doc.Path)
}
