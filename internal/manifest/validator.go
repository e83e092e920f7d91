package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/package.schema.json
var packageSchema []byte

const packageSchemaURL = "package.schema.json"

var (
	loadSchema = sync.OnceValues(compilePackageSchema)
	printer    = message.NewPrinter(language.English)
)

// Issue is one schema violation inside a package.json document.
type Issue struct {
	Pointer string // JSON pointer of the offending value, "" for the document
	Keyword string // failing schema keyword, e.g. "pattern"
	Message string
}

func (i Issue) String() string {
	if i.Pointer == "" {
		return i.Message
	}
	return i.Pointer + ": " + i.Message
}

// InvalidPackageError lists every violation found in one descriptor.
type InvalidPackageError struct {
	Issues []Issue
}

func (e *InvalidPackageError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return "invalid package.json: " + strings.Join(parts, "; ")
}

func compilePackageSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(packageSchema))
	if err != nil {
		return nil, fmt.Errorf("reading package schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(packageSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("registering package schema: %w", err)
	}
	s, err := c.Compile(packageSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling package schema: %w", err)
	}
	return s, nil
}

// ValidatePackage checks package.json bytes against the embedded schema.
// Schema violations come back as *InvalidPackageError; any other error means
// the input was not JSON.
func ValidatePackage(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing package.json: %w", err)
	}

	err = schema.Validate(doc)
	var ve *jsonschema.ValidationError
	switch {
	case err == nil:
		return nil
	case !errors.As(err, &ve):
		return err
	}

	issues := leafIssues(ve, nil)
	if len(issues) == 0 {
		issues = []Issue{{Message: ve.Error()}}
	}
	return &InvalidPackageError{Issues: issues}
}

// leafIssues flattens the cause tree, skipping combinators that only group
// other failures.
func leafIssues(ve *jsonschema.ValidationError, acc []Issue) []Issue {
	for _, cause := range ve.Causes {
		acc = leafIssues(cause, acc)
	}
	if len(ve.Causes) > 0 || ve.ErrorKind == nil {
		return acc
	}

	kw := ve.ErrorKind.KeywordPath()
	if len(kw) == 0 {
		return acc
	}
	issue := Issue{
		Keyword: kw[len(kw)-1],
		Message: ve.ErrorKind.LocalizedString(printer),
	}
	if issue.Keyword == "allOf" || issue.Keyword == "$ref" {
		return acc
	}
	if len(ve.InstanceLocation) > 0 {
		issue.Pointer = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	if slices.Contains(acc, issue) {
		return acc
	}
	return append(acc, issue)
}
