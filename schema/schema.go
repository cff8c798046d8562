package schema

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/ONSdigital/dp-sdmx-api/sdmx"
	"github.com/ONSdigital/log.go/v2/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// DefaultCacheSize is the number of compiled schemas kept when no size is configured
const DefaultCacheSize = 16

var (
	// ErrNoSchema is returned when a message names no schema and no default is configured
	ErrNoSchema = errors.New("no schema to validate against")

	// ErrSchemaUnavailable is matched when a schema, or a document it references, cannot be retrieved
	ErrSchemaUnavailable = errors.New("unable to retrieve schema")

	// ErrInvalidSchema is matched when the schema named by a message does not compile
	ErrInvalidSchema = errors.New("schema named by the message is not a valid json schema")
)

// Loader retrieves a schema document by url
type Loader interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Validator validates raw messages against JSON schemas, keeping compiled schemas
// in a bounded cache it owns
type Validator struct {
	loader     Loader
	defaultURL string
	cache      *lru.Cache[string, *jsonschema.Schema]
}

// NewValidator returns a Validator loading schemas with loader. Messages that do not
// name a schema in meta.schema are validated against defaultURL.
func NewValidator(loader Loader, defaultURL string, cacheSize int) (*Validator, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *jsonschema.Schema](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema cache")
	}
	return &Validator{loader: loader, defaultURL: defaultURL, cache: cache}, nil
}

// Validate checks raw against the schema it names, or the default schema
func (v *Validator) Validate(ctx context.Context, raw []byte) error {
	url, named := v.schemaURL(raw)
	if url == "" {
		return ErrNoSchema
	}
	logData := log.Data{"schema": url}

	sch, err := v.compiled(ctx, url, named)
	if err != nil {
		log.Error(ctx, "failed to compile schema", err, logData)
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return errors.WithMessage(sdmx.ErrInvalidMessage, err.Error())
	}

	if err := sch.Validate(inst); err != nil {
		log.Info(ctx, "message failed schema validation", logData)
		return &ValidationError{Schema: url, Err: err}
	}
	return nil
}

// Purge empties the schema cache
func (v *Validator) Purge() {
	v.cache.Purge()
}

// Len returns the number of cached schemas
func (v *Validator) Len() int {
	return v.cache.Len()
}

// schemaURL returns the schema to validate raw against and whether the message named it
func (v *Validator) schemaURL(raw []byte) (string, bool) {
	var msg struct {
		Meta struct {
			Schema string `json:"schema"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(raw, &msg); err == nil && msg.Meta.Schema != "" {
		return msg.Meta.Schema, true
	}
	return v.defaultURL, false
}

func (v *Validator) compiled(ctx context.Context, url string, named bool) (*jsonschema.Schema, error) {
	if sch, ok := v.cache.Get(url); ok {
		return sch, nil
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)
	l := &urlLoader{ctx: ctx, loader: v.loader}
	c.UseLoader(l)

	sch, err := c.Compile(url)
	switch {
	case err == nil:
	case l.err != nil:
		return nil, errors.Wrapf(ErrSchemaUnavailable, "%s: %v", url, l.err)
	case named:
		return nil, errors.Wrapf(ErrInvalidSchema, "%s: %v", url, err)
	default:
		return nil, errors.Wrapf(err, "failed to compile schema %s", url)
	}
	v.cache.Add(url, sch)
	return sch, nil
}

// urlLoader adapts a Loader to the compiler, binding the request context.
// The first retrieval error is kept so it can be told apart from a compile error.
type urlLoader struct {
	ctx    context.Context
	loader Loader
	err    error
}

func (l *urlLoader) Load(url string) (any, error) {
	b, err := l.loader.Get(l.ctx, url)
	if err != nil {
		if l.err == nil {
			l.err = err
		}
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(b))
}

// ValidationError is returned when a message does not conform to its schema
type ValidationError struct {
	Schema string
	Err    error
}

func (e *ValidationError) Error() string {
	return "message does not conform to schema " + e.Schema + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is sdmx.ErrInvalidMessage
func (e *ValidationError) Is(target error) bool {
	return target == sdmx.ErrInvalidMessage
}
