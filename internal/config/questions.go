package config

import (
	"slices"

	"github.com/forge-labs/forge/internal/branding"
)

// Kind selects how a question is rendered.
type Kind int

const (
	KindInput Kind = iota
	KindSelect
)

// Option is one selectable answer.
type Option struct {
	Label string
	Value string
}

// Question is one entry in the declarative interactive flow. Visible and
// Options are evaluated against the answers collected so far.
type Question struct {
	Key     Key
	Kind    Kind
	Title   string
	Options func(Values) []Option
	Visible func(Values) bool
	// TitleFor overrides Title when set.
	TitleFor func(Values) string
}

// Prompt is a question bound to the current partial answers.
type Prompt struct {
	Key     Key
	Kind    Kind
	Title   string
	Options []Option
	Initial string
}

// Asker answers prompts. Implementations return an error to cancel.
type Asker interface {
	Ask(p Prompt) (string, error)
}

func static(opts ...Option) func(Values) []Option {
	return func(Values) []Option { return opts }
}

func archNotIn(archs ...string) func(Values) bool {
	return func(v Values) bool { return !slices.Contains(archs, v[KeyArch]) }
}

// Questions returns the interactive flow in prompt order.
func Questions() []Question {
	return []Question{
		{Key: KeyName, Kind: KindInput, Title: "Project name"},
		{
			Key: KeyArch, Kind: KindSelect, Title: "What type of project are you building?",
			Options: static(
				Option{"Full-Stack Application", ArchFullstack},
				Option{"Frontend-Only", ArchFrontend},
				Option{"Backend-Only", ArchBackend},
				Option{"Mobile App (Expo)", ArchMobile},
			),
		},
		{
			Key: KeyLang, Kind: KindSelect, Title: "Language",
			Options: static(Option{"TypeScript", LangTS}, Option{"JavaScript", LangJS}),
		},
		{
			Key: KeyFrontend, Kind: KindSelect, Title: "Which frontend framework?",
			Visible: archNotIn(ArchBackend, ArchMobile),
			Options: static(
				Option{"React (Vite)", FrontendReact},
				Option{"Vue (Vite)", FrontendVue},
				Option{"Svelte (Vite)", FrontendSvelte},
				Option{"Angular (Vite)", FrontendAngular},
				Option{"Expo (React Native)", FrontendExpo},
			),
		},
		{
			Key: KeyBackend, Kind: KindSelect, Title: "Which Node.js server framework?",
			Visible: archNotIn(ArchFrontend, ArchMobile),
			Options: static(Option{"Express", BackendExpress}, Option{"Fastify", BackendFastify}),
		},
		{
			Key: KeyDB, Kind: KindSelect, Title: "Which database?",
			Visible: archNotIn(ArchFrontend, ArchMobile),
			Options: static(
				Option{"None", DBNone},
				Option{"PostgreSQL", DBPostgres},
				Option{"MySQL", DBMySQL},
				Option{"MongoDB", DBMongo},
			),
		},
		{
			Key: KeyORM, Kind: KindSelect, Title: "Choose a database client/ORM:",
			TitleFor: func(v Values) string {
				if v[KeyDB] == DBMongo {
					return "Choose a database client/ODM:"
				}
				return "Choose a database client/ORM:"
			},
			Visible: func(v Values) bool {
				return archNotIn(ArchFrontend, ArchMobile)(v) && v[KeyDB] != DBNone && v[KeyDB] != ""
			},
			Options: func(v Values) []Option {
				if v[KeyDB] == DBMongo {
					return []Option{
						{"Mongoose (ODM)", ORMMongoose},
						{"Prisma (experimental MongoDB)", ORMPrisma},
						{"None", ORMNone},
					}
				}
				return []Option{{"Prisma", ORMPrisma}, {"None", ORMNone}}
			},
		},
		{
			Key: KeyCSS, Kind: KindSelect, Title: "Styling",
			Visible: func(v Values) bool {
				return archNotIn(ArchBackend, ArchMobile)(v) && v[KeyFrontend] != FrontendExpo
			},
			Options: static(
				Option{"Plain CSS", CSSPlain},
				Option{"SCSS", CSSSCSS},
				Option{"SASS (indented)", CSSSass},
				Option{"Less", CSSLess},
				Option{"Tailwind CSS", CSSTailwind},
			),
		},
		{
			Key: KeyPkg, Kind: KindSelect, Title: "Package manager",
			Options: static(
				Option{"pnpm (recommended for monorepos)", "pnpm"},
				Option{"npm", "npm"},
				Option{"yarn", "yarn"},
				Option{"bun", "bun"},
			),
		},
	}
}

// Bind evaluates q against the partial answers. It returns false when the
// question is hidden.
func (q Question) Bind(partial Values) (Prompt, bool) {
	if q.Visible != nil && !q.Visible(partial) {
		return Prompt{}, false
	}
	p := Prompt{Key: q.Key, Kind: q.Kind, Title: q.Title, Initial: partial[q.Key]}
	if q.Kind == KindInput && q.Key == KeyName && p.Initial == "" {
		p.Initial = branding.DefaultProjectName()
	}
	if q.TitleFor != nil {
		p.Title = q.TitleFor(partial)
	}
	if q.Options != nil {
		p.Options = q.Options(partial)
		if len(p.Options) > 0 && !slices.ContainsFunc(p.Options, func(o Option) bool { return o.Value == p.Initial }) {
			p.Initial = p.Options[0].Value
		}
	}
	return p, true
}

// Collect walks questions in order and asks every visible one whose key
// is not already fixed by a flag. Visibility and initial selections see
// defaults, fixed values and earlier answers. Only the answers are
// returned.
func Collect(questions []Question, defaults, fixed Values, asker Asker) (Values, error) {
	partial := defaults.Merge(fixed)
	answers := make(Values)
	for _, q := range questions {
		if fixed.Set(q.Key) {
			continue
		}
		p, ok := q.Bind(partial)
		if !ok {
			continue
		}
		ans, err := asker.Ask(p)
		if err != nil {
			return nil, err
		}
		answers[q.Key] = ans
		partial[q.Key] = ans
	}
	return answers, nil
}
