package generate

import (
	"bytes"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/forge-labs/forge/internal/config"
	"github.com/forge-labs/forge/internal/manifest"
)

// composeFile is a docker-compose.yml with a single database service.
type composeFile struct {
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]struct{}       `yaml:"volumes"`
}

type composeService struct {
	Image       string            `yaml:"image"`
	Environment map[string]string `yaml:"environment"`
	Ports       []quoted          `yaml:"ports"`
	Command     []string          `yaml:"command,omitempty"`
	Volumes     []string          `yaml:"volumes"`
}

// quoted is always emitted single-quoted; "5432:5432" would otherwise be
// read as a base-60 integer by YAML 1.1 parsers.
type quoted string

func (q quoted) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.SingleQuotedStyle, Value: string(q)}, nil
}

type databaseImage struct {
	image   string
	port    string
	env     map[string]string
	command []string
	volume  string
	mount   string
}

var databaseImages = map[string]databaseImage{
	config.DBPostgres: {
		image: "postgres:16",
		port:  "5432",
		env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "forge",
		},
		volume: "pgdata",
		mount:  "/var/lib/postgresql/data",
	},
	config.DBMySQL: {
		image: "mysql:8",
		port:  "3306",
		env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "password",
			"MYSQL_DATABASE":      "forge",
		},
		command: []string{"--default-authentication-plugin=mysql_native_password"},
		volume:  "mysqldata",
		mount:   "/var/lib/mysql",
	},
	config.DBMongo: {
		image: "mongo:6",
		port:  "27017",
		env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": "root",
			"MONGO_INITDB_ROOT_PASSWORD": "password",
		},
		volume: "mongodata",
		mount:  "/data/db",
	},
}

// composeFor returns the compose descriptor for database, or false when
// the database needs no container.
func composeFor(database string) (composeFile, bool) {
	img, ok := databaseImages[database]
	if !ok {
		return composeFile{}, false
	}
	return composeFile{
		Services: map[string]composeService{
			"db": {
				Image:       img.image,
				Environment: img.env,
				Ports:       []quoted{quoted(img.port + ":" + img.port)},
				Command:     img.command,
				Volumes:     []string{img.volume + ":" + img.mount},
			},
		},
		Volumes: map[string]struct{}{img.volume: {}},
	}, true
}

func encodeYAML(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// writeCompose writes docker-compose.yml at the project root for server
// projects with a database.
func writeCompose(gc *Context) error {
	cfg := gc.Config
	if cfg.Architecture != config.ArchFullstack && cfg.Architecture != config.ArchBackend {
		return nil
	}
	file, ok := composeFor(cfg.Database)
	if !ok {
		return nil
	}
	content, err := encodeYAML(file)
	if err != nil {
		return fmt.Errorf("encoding docker-compose.yml: %w", err)
	}
	m := manifest.New()
	m.Add("docker-compose.yml", content)
	return gc.Write(m)
}
