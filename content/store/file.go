package store

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

type document struct {
	Scores map[string]string `toml:"scores"`
}

// File 以 TOML 文件保存的存储，每次 Set 都会重写整个文件
type File struct {
	path   string
	values map[string]string
	logger *log.Logger
}

// Open 读取 path。文件不存在或无法解析时从空记录开始，不返回错误。
func Open(path string, logger *log.Logger) (*File, error) {
	if path == "" {
		return nil, errors.New("store: empty path")
	}
	if logger == nil {
		logger = log.Default()
	}
	f := &File{
		path:   path,
		values: make(map[string]string),
		logger: logger,
	}

	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("ignoring unreadable score file", "path", path, "err", err)
		}
		return f, nil
	}
	for k, v := range doc.Scores {
		f.values[k] = v
	}
	return f, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.values[key] = value
	if err := f.flush(); err != nil {
		return errors.Wrapf(err, "save %s", key)
	}
	f.logger.Debug("saved score", "path", f.path, "key", key, "value", value)
	return nil
}

// flush 先写临时文件再重命名，避免写到一半留下损坏的文件
func (f *File) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Wrap(err, "create score dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".scores-*.toml")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(document{Scores: f.values}); err != nil {
		tmp.Close()
		return errors.Wrap(err, "encode scores")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), f.path), "replace score file")
}
