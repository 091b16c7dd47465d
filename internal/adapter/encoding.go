package adapter

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gowebpki/jcs"
)

// JSON defines an interface for JSON operations to enable mocking
//
//go:generate mockgen -source=encoding.go -destination=../mocks/encoding.go -package=mocks -mock_names=JSON=MockJSON,JCS=MockJCS,Base64=MockBase64
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// RealJSON implements JSON using the standard encoding/json package
type RealJSON struct{}

// NewJSON creates a new real JSON implementation
func NewJSON() JSON {
	return &RealJSON{}
}

func (j *RealJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (j *RealJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// JCS defines an interface for RFC 8785 canonicalization to enable mocking
type JCS interface {
	Transform(data []byte) ([]byte, error)
}

// RealJCS implements JCS using the gowebpki/jcs package
type RealJCS struct{}

// NewJCS creates a new real JCS implementation
func NewJCS() JCS {
	return &RealJCS{}
}

func (j *RealJCS) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}

// Base64 defines an interface for Base64 operations to enable mocking
type Base64 interface {
	Encode(data []byte) string
	Decode(data string) ([]byte, error)
}

// RealBase64 encodes with standard padding and decodes both standard and URL-safe alphabets,
// padded or not, since reader firmware differs
type RealBase64 struct{}

// NewBase64 creates a new real Base64 implementation
func NewBase64() Base64 {
	return &RealBase64{}
}

func (b *RealBase64) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (b *RealBase64) Decode(data string) ([]byte, error) {
	data = strings.TrimRight(strings.TrimSpace(data), "=")
	if strings.ContainsAny(data, "-_") {
		return base64.RawURLEncoding.DecodeString(data)
	}
	return base64.RawStdEncoding.DecodeString(data)
}
