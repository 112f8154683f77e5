// Package store persists the camera configuration as a flat JSON document.
package store

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/gogo/protobuf/jsonpb"
	"github.com/joomcode/errorx"
	"github.com/sirupsen/logrus"
)

// Errors is the namespace of store errors.
var (
	Errors = errorx.NewNamespace("store")

	// ErrRead means a document could not be read.
	ErrRead = Errors.NewType("read")
	// ErrDecode means a document was read but is not a valid record.
	ErrDecode = Errors.NewType("decode")
	// ErrWrite means the primary document could not be written.
	ErrWrite = Errors.NewType("write")
	// ErrDefaults means the bundled default document is unusable.
	ErrDefaults = Errors.NewType("defaults")
)

var (
	marshaler = jsonpb.Marshaler{
		OrigName:     true,
		EmitDefaults: true,
		Indent:       "  ",
	}
	unmarshaler = jsonpb.Unmarshaler{
		AllowUnknownFields: true,
	}
)

// Store loads and saves a Record at a primary path, falling back to a bundled default.
type Store struct {
	path         string
	defaults     fs.FS
	defaultsPath string
	log          logrus.FieldLogger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default is the standard logrus logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New creates a store for the document at path with the bundled default at defaultsPath in defaults.
func New(path string, defaults fs.FS, defaultsPath string, options ...Option) *Store {
	s := &Store{
		path:         path,
		defaults:     defaults,
		defaultsPath: defaultsPath,
		log:          logrus.StandardLogger(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Path returns the primary document path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the primary document decoded over the bundled default.
// A missing or broken primary document is not an error: the default is returned instead.
// The only failure is an unusable bundled default.
func (s *Store) Load() (*Record, error) {
	defaults, err := s.LoadDefaults()
	if err != nil {
		return nil, err
	}

	log := s.log.WithField("path", s.path)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("no config document, using defaults")
		} else {
			log.WithError(ErrRead.Wrap(err, "read %s", s.path)).Warn("config document unreadable, using defaults")
		}
		return defaults, nil
	}

	rec := defaults.Clone()
	if err := decode(data, rec); err != nil {
		log.WithError(err).Warn("config document invalid, using defaults")
		return defaults, nil
	}

	log.Debugf("loaded config document:\n%s", spew.Sdump(rec))

	return rec, nil
}

// LoadDefaults decodes the bundled default document.
func (s *Store) LoadDefaults() (*Record, error) {
	data, err := fs.ReadFile(s.defaults, s.defaultsPath)
	if err != nil {
		return nil, ErrDefaults.Wrap(err, "read bundled %s", s.defaultsPath)
	}

	rec := &Record{}
	if err := decode(data, rec); err != nil {
		return nil, ErrDefaults.Wrap(err, "bundled %s", s.defaultsPath)
	}

	return rec, nil
}

// Save writes rec to the primary path, creating parent directories.
// The document is written to a temporary file first so a failed write never truncates the old one.
func (s *Store) Save(rec *Record) error {
	var buf bytes.Buffer
	if err := marshaler.Marshal(&buf, rec); err != nil {
		return ErrWrite.Wrap(err, "encode")
	}
	buf.WriteByte('\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return ErrWrite.Wrap(err, "create directory for %s", s.path)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return ErrWrite.Wrap(err, "write %s", tmp)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return ErrWrite.Wrap(err, "replace %s", s.path)
	}

	s.log.WithField("path", s.path).Info("config document saved")

	return nil
}

func decode(data []byte, rec *Record) error {
	if err := unmarshaler.Unmarshal(bytes.NewReader(data), rec); err != nil {
		return ErrDecode.Wrap(err, "decode record")
	}
	return nil
}
