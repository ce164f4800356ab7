package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape. Pointer fields distinguish "unset"
// from zero values so a file only overrides what it names.
type fileConfig struct {
	Session      *fileSession `json:"session,omitempty" yaml:"session" hcl:"session,block"`
	ColumnPrefix *string      `json:"column_prefix,omitempty" yaml:"column_prefix" hcl:"column_prefix,optional"`
	Output       *string      `json:"output,omitempty" yaml:"output" hcl:"output,optional"`
	Log          *fileLog     `json:"log,omitempty" yaml:"log" hcl:"log,block"`
}

type fileSession struct {
	Database         *string           `json:"database,omitempty" yaml:"database" hcl:"database,optional"`
	EnableCatalogs   *bool             `json:"enable_catalogs,omitempty" yaml:"enable_catalogs" hcl:"enable_catalogs,optional"`
	QualifiedColumns *bool             `json:"qualified_columns,omitempty" yaml:"qualified_columns" hcl:"qualified_columns,optional"`
	Catalogs         map[string]string `json:"catalogs,omitempty" yaml:"catalogs" hcl:"catalogs,optional"`
}

type fileLog struct {
	Level  *string `json:"level,omitempty" yaml:"level" hcl:"level,optional"`
	Format *string `json:"format,omitempty" yaml:"format" hcl:"format,optional"`
}

// LoadFile overlays the config file at path onto base. The format is
// chosen from the file extension.
func LoadFile(path string, base Config) (Config, error) {
	var (
		fc  fileConfig
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cue":
		err = decodeCUE(path, &fc)
	case ".hcl":
		err = hclsimple.DecodeFile(path, nil, &fc)
	case ".yaml", ".yml":
		err = decodeYAML(path, &fc)
	default:
		return base, fmt.Errorf("unsupported config format %q: use .cue, .hcl or .yaml", ext)
	}
	if err != nil {
		return base, fmt.Errorf("load config %s: %w", path, err)
	}

	return fc.apply(base), nil
}

func decodeCUE(path string, fc *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	value := cuecontext.New().CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return err
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return value.Decode(fc)
}

func decodeYAML(path string, fc *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (fc fileConfig) apply(c Config) Config {
	if s := fc.Session; s != nil {
		if s.Database != nil {
			c.Database = *s.Database
		}
		if s.EnableCatalogs != nil {
			c.EnableCatalogs = *s.EnableCatalogs
		}
		if s.QualifiedColumns != nil {
			c.QualifiedColumns = *s.QualifiedColumns
		}
		if len(s.Catalogs) > 0 {
			merged := maps.Clone(c.Catalogs)
			if merged == nil {
				merged = make(map[string]string, len(s.Catalogs))
			}
			maps.Copy(merged, s.Catalogs)
			c.Catalogs = merged
		}
	}
	if fc.ColumnPrefix != nil {
		c.ColumnPrefix = *fc.ColumnPrefix
	}
	if fc.Output != nil {
		c.Output = *fc.Output
	}
	if l := fc.Log; l != nil {
		if l.Level != nil {
			c.LogLevel = *l.Level
		}
		if l.Format != nil {
			c.LogFormat = *l.Format
		}
	}
	return c
}
