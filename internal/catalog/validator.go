package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/catalog.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is a single problem found in a catalog.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/projects/1/kind")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed, or a semantic rule name
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// InvalidError reports every issue found in a catalog.
type InvalidError struct {
	Source string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	lines := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		lines = append(lines, issue.String())
	}
	head := printer.Sprintf("catalog has %d validation issue(s)", len(e.Issues))
	if e.Source != "" {
		head = e.Source + ": " + head
	}
	return head + ": " + strings.Join(lines, "; ")
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("catalog.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("catalog.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ValidateSchema validates raw catalog YAML against the embedded JSON schema.
// The error return is for YAML or schema compilation failures; validation
// problems are returned in the ValidationResult.
func ValidateSchema(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees json.Number values.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Message: ve.Error(),
		}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf errors
// with specific property information.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}

// Validate checks the rules the schema cannot express: known kinds, unique
// names (case-insensitive, since Windows paths are), and references that
// point only at earlier entries. It never reorders the catalog.
func (c *Catalog) Validate() error {
	var issues []ValidationIssue
	if len(c.Projects) == 0 {
		issues = append(issues, ValidationIssue{Keyword: "empty", Message: "catalog has no projects"})
	}

	position := make(map[string]int, len(c.Projects))
	for i, p := range c.Projects {
		path := fmt.Sprintf("/projects/%d", i)

		if p.Name == "" {
			issues = append(issues, ValidationIssue{Path: path, Keyword: "name", Message: "project name is empty"})
			continue
		}
		if !p.Kind.Valid() {
			issues = append(issues, ValidationIssue{Path: path, Keyword: "kind",
				Message: fmt.Sprintf("%s: unknown kind %q", p.Name, p.Kind)})
		}

		key := strings.ToLower(p.Name)
		if prev, dup := position[key]; dup {
			issues = append(issues, ValidationIssue{Path: path, Keyword: "unique",
				Message: fmt.Sprintf("%s duplicates /projects/%d", p.Name, prev)})
			continue
		}
		position[key] = i
	}

	for i, p := range c.Projects {
		for _, ref := range p.References {
			path := fmt.Sprintf("/projects/%d/references", i)
			at, ok := position[strings.ToLower(ref)]
			switch {
			case strings.EqualFold(ref, p.Name):
				issues = append(issues, ValidationIssue{Path: path, Keyword: "self",
					Message: fmt.Sprintf("%s references itself", p.Name)})
			case !ok:
				issues = append(issues, ValidationIssue{Path: path, Keyword: "exists",
					Message: fmt.Sprintf("%s references unknown project %s", p.Name, ref)})
			case at > i:
				issues = append(issues, ValidationIssue{Path: path, Keyword: "order",
					Message: fmt.Sprintf("%s references %s, which is created later", p.Name, ref)})
			}
		}
	}

	if len(issues) == 0 {
		return nil
	}
	if order, err := TopoOrder(c); err == nil && hasIssue(issues, "order") {
		issues = append(issues, ValidationIssue{Keyword: "hint",
			Message: "a valid order is " + strings.Join(order, ", ")})
	}
	return &InvalidError{Issues: issues}
}

func hasIssue(issues []ValidationIssue, keyword string) bool {
	for _, i := range issues {
		if i.Keyword == keyword {
			return true
		}
	}
	return false
}
