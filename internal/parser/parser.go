package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/jsonscout/internal/errors"
	"github.com/mcncl/jsonscout/internal/models"
)

// Parse decodes a single JSON document from reader into a models.Value.
// It walks the decoder's token stream rather than unmarshalling into
// maps so that object members keep their document order.
func Parse(reader io.Reader) (models.Value, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Keep the source's lexical number form

	tok, err := decoder.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.Value{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return models.Value{}, wrapTokenError(err)
	}

	root, err := decodeValue(decoder, tok)
	if err != nil {
		return models.Value{}, err
	}

	// Anything after the first document is either trailing garbage or
	// a second value; both are rejected.
	if _, err := decoder.Token(); err == nil {
		return models.Value{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	} else if !stderrors.Is(err, io.EOF) {
		return models.Value{}, errors.NewParsingError("invalid trailing data after first JSON value", err)
	}

	return root, nil
}

// decodeValue builds the value whose opening token is tok, consuming
// the remainder of that value from the decoder.
func decodeValue(decoder *json.Decoder, tok json.Token) (models.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		}
		// Closing delimiters are consumed by decodeObject/decodeArray
		// and never reach here on well-formed input.
		return models.Value{}, errors.NewParsingError(fmt.Sprintf("unexpected delimiter %q", t.String()), errors.ErrInvalidJSON)
	case string:
		return models.NewString(t), nil
	case json.Number:
		return models.NewNumber(t), nil
	case bool:
		return models.NewBool(t), nil
	case nil:
		return models.NewNull(), nil
	default:
		return models.Value{}, errors.NewParsingError(fmt.Sprintf("unsupported JSON token %T", tok), errors.ErrInvalidJSON)
	}
}

func decodeObject(decoder *json.Decoder) (models.Value, error) {
	var members []models.Member
	for {
		tok, err := decoder.Token()
		if err != nil {
			return models.Value{}, wrapTokenError(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return models.NewObject(members), nil
		}

		// Inside an object the decoder guarantees keys are strings.
		key, ok := tok.(string)
		if !ok {
			return models.Value{}, errors.NewParsingError(fmt.Sprintf("object key is not a string: %v", tok), errors.ErrInvalidJSON)
		}

		valTok, err := decoder.Token()
		if err != nil {
			return models.Value{}, wrapTokenError(err)
		}
		val, err := decodeValue(decoder, valTok)
		if err != nil {
			return models.Value{}, err
		}
		members = append(members, models.Member{Key: key, Value: val})
	}
}

func decodeArray(decoder *json.Decoder) (models.Value, error) {
	var items []models.Value
	for {
		tok, err := decoder.Token()
		if err != nil {
			return models.Value{}, wrapTokenError(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return models.NewArray(items), nil
		}

		item, err := decodeValue(decoder, tok)
		if err != nil {
			return models.Value{}, err
		}
		items = append(items, item)
	}
}

func wrapTokenError(err error) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
	}
	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
			errors.ErrInvalidJSON,
		)
	}
	return errors.NewParsingError("failed to decode JSON", err)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Value{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
