package parser

import (
	"encoding/json"
	stderrors "errors" // Standard errors package
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcncl/pjson/internal/errors" // Custom errors package
	"github.com/mcncl/pjson/internal/models"
)

// Options controls how strictly input is accepted
type Options struct {
	// MaxDepth limits container nesting; the root container is depth 1.
	// Zero or less means no limit.
	MaxDepth int
	// RejectDuplicates fails the parse when an object repeats a key.
	RejectDuplicates bool
}

// Parse reads exactly one JSON value from reader. Objects keep their
// members in source order, numbers are returned as json.Number.
func Parse(reader io.Reader, opts Options) (models.JSONValue, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Ensure numbers are read as json.Number

	p := &parser{dec: decoder, opts: opts}
	tok, err := decoder.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return nil, syntaxError(err)
	}
	root, err := p.value(tok, 0)
	if err != nil {
		return nil, err
	}

	// Anything but EOF after the root value is either a second value or
	// garbage.
	if _, err := decoder.Token(); err == nil {
		return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	} else if !stderrors.Is(err, io.EOF) {
		return nil, errors.NewParsingError("invalid trailing data after first JSON value", err)
	}
	return root, nil
}

type parser struct {
	dec  *json.Decoder
	opts Options
}

// value converts one already-read token, descending into containers.
// depth is the nesting level of the enclosing container.
func (p *parser) value(tok json.Token, depth int) (models.JSONValue, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return p.object(depth + 1)
		case '[':
			return p.array(depth + 1)
		}
		return nil, errors.NewParsingError(fmt.Sprintf("unexpected delimiter %q", rune(v)), errors.ErrInvalidJSON)
	case string, bool, json.Number, nil:
		return v, nil
	default:
		return nil, errors.NewParsingError(fmt.Sprintf("unexpected JSON token type %T", tok), errors.ErrInvalidJSON)
	}
}

func (p *parser) checkDepth(depth int) error {
	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
		return errors.NewParsingError(
			fmt.Sprintf("nesting depth %d exceeds limit %d at offset %d", depth, p.opts.MaxDepth, p.dec.InputOffset()),
			errors.ErrMaxDepth,
		)
	}
	return nil
}

// object reads members up to the closing brace. The opening brace has
// already been consumed.
func (p *parser) object(depth int) (models.JSONValue, error) {
	if err := p.checkDepth(depth); err != nil {
		return nil, err
	}
	obj := make(models.JSONObject, 0, 8)
	var seen map[string]struct{}
	if p.opts.RejectDuplicates {
		seen = make(map[string]struct{}, 8)
	}
	for p.dec.More() {
		kTok, err := p.dec.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		key, ok := kTok.(string)
		if !ok {
			return nil, errors.NewParsingError("object key is not a string", errors.ErrInvalidJSON)
		}
		if seen != nil {
			if _, dup := seen[key]; dup {
				return nil, errors.NewParsingError(fmt.Sprintf("duplicate key %q", key), errors.ErrDuplicateKey)
			}
			seen[key] = struct{}{}
		}
		vTok, err := p.dec.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		val, err := p.value(vTok, depth)
		if err != nil {
			return nil, err
		}
		obj = append(obj, models.Member{Key: key, Value: val})
	}
	if err := p.closing('}'); err != nil {
		return nil, err
	}
	return obj, nil
}

// array reads elements up to the closing bracket. The opening bracket has
// already been consumed.
func (p *parser) array(depth int) (models.JSONValue, error) {
	if err := p.checkDepth(depth); err != nil {
		return nil, err
	}
	arr := make(models.JSONArray, 0, 8)
	for p.dec.More() {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		val, err := p.value(tok, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	if err := p.closing(']'); err != nil {
		return nil, err
	}
	return arr, nil
}

func (p *parser) closing(want json.Delim) error {
	tok, err := p.dec.Token()
	if err != nil {
		return syntaxError(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.NewParsingError(fmt.Sprintf("expected %q", rune(want)), errors.ErrInvalidJSON)
	}
	return nil
}

// syntaxError maps decoder failures onto parsing errors
func syntaxError(err error) error {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d", syntaxErr.Offset),
			errors.ErrInvalidJSON,
		)
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
	}
	return errors.NewParsingError("failed to decode JSON", err)
}

// ParseString parses JSON from a string
func ParseString(jsonString string, opts Options) (models.JSONValue, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString), opts)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string, opts Options) (models.JSONValue, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		// Check if the file doesn't exist
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file, opts)
}
