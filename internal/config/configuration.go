package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/forge-labs/forge/internal/branding"
)

// Key names one configuration field. Keys double as flag names, config
// file keys and environment variable suffixes.
type Key string

const (
	KeyName     Key = "name"
	KeyArch     Key = "arch"
	KeyFrontend Key = "frontend"
	KeyBackend  Key = "backend"
	KeyDB       Key = "db"
	KeyORM      Key = "orm"
	KeyCSS      Key = "css"
	KeyPkg      Key = "pkg"
	KeyLang     Key = "lang"
)

const (
	ArchFrontend  = "frontend"
	ArchBackend   = "backend"
	ArchFullstack = "fullstack"
	ArchMobile    = "mobile"

	FrontendReact   = "react"
	FrontendVue     = "vue"
	FrontendSvelte  = "svelte"
	FrontendAngular = "angular"
	FrontendExpo    = "expo"

	BackendExpress = "express"
	BackendFastify = "fastify"

	DBNone     = "none"
	DBPostgres = "postgres"
	DBMySQL    = "mysql"
	DBMongo    = "mongodb"

	ORMNone     = "none"
	ORMPrisma   = "prisma"
	ORMMongoose = "mongoose"

	CSSPlain    = "css"
	CSSSCSS     = "scss"
	CSSSass     = "sass"
	CSSLess     = "less"
	CSSTailwind = "tailwind"

	LangTS = "ts"
	LangJS = "js"
)

// ErrInvalidChoice is returned for a value outside a key's choice set.
var ErrInvalidChoice = errors.New("invalid choice")

// Choices lists the accepted values per key, in prompt order.
var Choices = map[Key][]string{
	KeyArch:     {ArchFullstack, ArchFrontend, ArchBackend, ArchMobile},
	KeyFrontend: {FrontendReact, FrontendVue, FrontendSvelte, FrontendAngular, FrontendExpo},
	KeyBackend:  {BackendExpress, BackendFastify},
	KeyDB:       {DBNone, DBPostgres, DBMySQL, DBMongo},
	KeyORM:      {ORMNone, ORMPrisma, ORMMongoose},
	KeyCSS:      {CSSPlain, CSSSCSS, CSSSass, CSSLess, CSSTailwind},
	KeyPkg:      {"pnpm", "npm", "yarn", "bun"},
	KeyLang:     {LangTS, LangJS},
}

// ChoiceKeys returns the keys that have a fixed choice set, sorted.
func ChoiceKeys() []Key {
	return slices.Sorted(maps.Keys(Choices))
}

// ValidateChoice checks value against key's choice set. Keys without a
// choice set accept anything.
func ValidateChoice(key Key, value string) error {
	allowed, ok := Choices[key]
	if !ok || slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%w %q for %s (allowed: %s)", ErrInvalidChoice, value, key, strings.Join(allowed, ", "))
}

// Values is a partial assignment of keys. Empty strings count as unset.
type Values map[Key]string

// Merge returns a copy of v overlaid with the non-empty values of other.
func (v Values) Merge(other Values) Values {
	out := maps.Clone(v)
	if out == nil {
		out = make(Values)
	}
	for k, val := range other {
		if val != "" {
			out[k] = val
		}
	}
	return out
}

// Set reports whether k has a non-empty value.
func (v Values) Set(k Key) bool { return v[k] != "" }

// Configuration is the resolved, read-only project configuration.
type Configuration struct {
	Name            string
	Architecture    string
	Frontend        string
	Backend         string
	Database        string
	ORM             string
	CSS             string
	PackageManager  string
	Language        string
	TargetDirectory string
	DryRun          bool
	InstallDeps     bool
}

// TypeScript reports whether generated code is TypeScript.
func (c Configuration) TypeScript() bool { return c.Language != LangJS }

// Ext is the source file extension for the configured language.
func (c Configuration) Ext() string {
	if c.TypeScript() {
		return "ts"
	}
	return "js"
}

// HasDatabase reports whether a database was chosen.
func (c Configuration) HasDatabase() bool { return c.Database != "" && c.Database != DBNone }

// UsesPrisma reports whether the Prisma client is wired in.
func (c Configuration) UsesPrisma() bool { return c.HasDatabase() && c.ORM == ORMPrisma }

// UsesMongoose reports whether the Mongoose ODM is wired in. Mongoose only
// pairs with MongoDB; any other database falls back to the plain server.
func (c Configuration) UsesMongoose() bool { return c.Database == DBMongo && c.ORM == ORMMongoose }

// MobileFrontend reports whether the frontend choice is a mobile framework.
func (c Configuration) MobileFrontend() bool { return c.Frontend == FrontendExpo }

// ProjectRoot is the directory the project is generated into.
func (c Configuration) ProjectRoot() string {
	return filepath.Join(c.TargetDirectory, c.Name)
}

// WithPackageManager returns a copy of c using pm.
func (c Configuration) WithPackageManager(pm string) Configuration {
	c.PackageManager = pm
	return c
}

// Flags carries the command-line inputs to Resolve.
type Flags struct {
	Values          Values
	TargetDirectory string
	DryRun          bool
	InstallDeps     bool
}

// Resolve merges defaults, interactive answers and flags, in increasing
// precedence, then applies coercions. Answers are ignored when interactive
// is false. The returned notes describe each coercion that fired.
func Resolve(flags Flags, defaults, answers Values, interactive bool) (Configuration, []string) {
	merged := defaults.Merge(nil)
	if interactive {
		merged = merged.Merge(answers)
	}
	merged = merged.Merge(flags.Values)

	if !merged.Set(KeyName) {
		merged[KeyName] = branding.DefaultProjectName()
	}
	target := flags.TargetDirectory
	if target == "" {
		target = "."
	}

	cfg := Configuration{
		Name:            merged[KeyName],
		Architecture:    merged[KeyArch],
		Frontend:        merged[KeyFrontend],
		Backend:         merged[KeyBackend],
		Database:        merged[KeyDB],
		ORM:             merged[KeyORM],
		CSS:             merged[KeyCSS],
		PackageManager:  merged[KeyPkg],
		Language:        merged[KeyLang],
		TargetDirectory: target,
		DryRun:          flags.DryRun,
		InstallDeps:     flags.InstallDeps,
	}
	return coerce(cfg)
}

func coerce(cfg Configuration) (Configuration, []string) {
	var notes []string
	webArch := cfg.Architecture == ArchFrontend || cfg.Architecture == ArchFullstack
	if webArch && cfg.Frontend == FrontendAngular && cfg.Language == LangJS {
		cfg.Language = LangTS
		notes = append(notes, "Angular requires TypeScript; switching language to TypeScript.")
	}
	if !cfg.HasDatabase() && cfg.ORM != ORMNone {
		cfg.Database = DBNone
		cfg.ORM = ORMNone
	}
	return cfg, notes
}
