package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"fruatrecard.my.id/internal/models"
)

const (
	DefaultHost     = "0.0.0.0"
	DefaultPort     = 5000
	DefaultDataPath = "data/projects.json"
	DefaultStatic   = "static"
	DefaultDist     = "dist"
	DefaultIndex    = "index.html"
)

//go:embed defaults/projects.json
var defaultsFS embed.FS

// Config holds all application configuration
type Config struct {
	ServerAddr string
	DataPath   string
	StaticDir  string
	DistDir    string
	IndexFile  string
	Minify     bool
	Projects   *models.ProjectList
}

// Options are the raw settings collected from flags and the environment.
// Zero values fall back to the package defaults, so a Port of 0 means
// DefaultPort rather than an ephemeral port.
type Options struct {
	Host      string
	Port      int
	DataPath  string
	StaticDir string
	DistDir   string
	Minify    bool
}

// Load applies defaults and reads the project list
func Load(opts Options) (*Config, error) {
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if opts.Port < 0 || opts.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", opts.Port)
	}
	if opts.DataPath == "" {
		opts.DataPath = DefaultDataPath
	}
	if opts.StaticDir == "" {
		opts.StaticDir = DefaultStatic
	}
	if opts.DistDir == "" {
		opts.DistDir = DefaultDist
	}

	projects, err := LoadProjects(opts.DataPath)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerAddr: net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		DataPath:   opts.DataPath,
		StaticDir:  opts.StaticDir,
		DistDir:    opts.DistDir,
		IndexFile:  filepath.Join(opts.DistDir, DefaultIndex),
		Minify:     opts.Minify,
		Projects:   projects,
	}, nil
}

// LoadProjects reads the project data file. A missing file is not an error:
// the built-in list is used instead.
func LoadProjects(path string) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Project file %s not found, using built-in list", path)
		return DefaultProjects()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	projects, err := ParseProjects(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return projects, nil
}

// DefaultProjects returns the list compiled into the binary
func DefaultProjects() (*models.ProjectList, error) {
	data, err := defaultsFS.ReadFile("defaults/projects.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in projects: %w", err)
	}
	return ParseProjects(data, "json")
}

// ParseProjects decodes a project list in the given format ("json" or "yaml").
// Both the wrapped form {"projects": [...]} and a bare array are accepted.
func ParseProjects(data []byte, format string) (*models.ProjectList, error) {
	var list models.ProjectList

	switch format {
	case "json":
		trimmed := strings.TrimSpace(string(data))
		if strings.HasPrefix(trimmed, "[") {
			if err := json.Unmarshal(data, &list.Projects); err != nil {
				return nil, err
			}
		} else if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
	case "yaml":
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, err
		}
		if len(node.Content) == 0 {
			break
		}
		if node.Content[0].Kind == yaml.SequenceNode {
			if err := node.Content[0].Decode(&list.Projects); err != nil {
				return nil, err
			}
		} else if err := node.Decode(&list); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err := Validate(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Validate checks that every project carries a name, url and icon
func Validate(list *models.ProjectList) error {
	for i, p := range list.Projects {
		switch {
		case strings.TrimSpace(p.Name) == "":
			return fmt.Errorf("project %d: missing name", i)
		case strings.TrimSpace(p.URL) == "":
			return fmt.Errorf("project %d (%s): missing url", i, p.Name)
		case strings.TrimSpace(p.Icon) == "":
			return fmt.Errorf("project %d (%s): missing icon", i, p.Name)
		}
	}
	return nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
