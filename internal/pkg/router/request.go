package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// GetParam reads a path parameter from the request context (as stored by httprouter).
func (r *Request) GetParam(key string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(key)
}

func (r *Request) GetParamInt64(key string) (int64, error) {
	paramValue := r.GetParam(key)
	value, err := strconv.ParseInt(paramValue, 10, 64)
	if err != nil {
		return 0, goerror.NewInvalidFormat("param must integer value")
	}
	return value, nil
}

func (r *Request) GetQuery(key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func (r *Request) GetQueryInt32(key string) (int32, error) {
	queryValue := r.GetQuery(key)
	if queryValue == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(queryValue, 10, 32)
	if err != nil {
		return 0, goerror.NewInvalidFormat()
	}

	return int32(value), nil
}

// GetQueryInt64 reads an optional integer query value, such as an id filter.
func (r *Request) GetQueryInt64(key string) (int64, error) {
	queryValue := r.GetQuery(key)
	if queryValue == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(queryValue, 10, 64)
	if err != nil {
		return 0, goerror.NewInvalidFormat(key + " must integer value")
	}

	return value, nil
}

// DecodeBody decodes the JSON body into dst.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Body == nil {
		return goerror.NewInvalidFormat()
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return goerror.NewInvalidFormat()
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return goerror.NewInvalidFormat()
	}

	return nil
}

// GetQueryBool parses an optional boolean query value. It returns nil when the
// key is absent.
func (r *Request) GetQueryBool(key string) (*bool, error) {
	queryValue := r.GetQuery(key)
	if queryValue == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(queryValue)
	if err != nil {
		return nil, goerror.NewInvalidFormat("Invalid query " + key)
	}

	return &value, nil
}

// ClientIP returns the caller address resolved by the IP middleware.
func (r *Request) ClientIP() string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// File is an uploaded multipart file held in memory.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// FormFile reads the multipart file under field. Files larger than maxBytes are
// rejected with a validation error on that field. The content type is sniffed
// from the data with mimetype, not taken from the client.
func (r *Request) FormFile(field string, maxBytes int64) (*File, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		return nil, goerror.NewInvalidFormat("Invalid request content-type")
	}

	if err := r.ParseMultipartForm(maxBytes + multipartOverhead); err != nil {
		return nil, goerror.NewInvalidFormat()
	}

	f, hdr, err := r.Request.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, goerror.NewInvalidInput(nil, field, "The "+field+" field is required.")
	}
	if err != nil {
		return nil, goerror.NewInvalidFormat()
	}
	defer f.Close()

	if hdr.Size > maxBytes {
		return nil, goerror.NewInvalidInput(nil, field, fmt.Sprintf("The %s may not be greater than %d kilobytes.", field, maxBytes/1024))
	}

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, goerror.NewInvalidFormat()
	}
	if int64(len(data)) > maxBytes {
		return nil, goerror.NewInvalidInput(nil, field, fmt.Sprintf("The %s may not be greater than %d kilobytes.", field, maxBytes/1024))
	}

	return &File{
		Name:        hdr.Filename,
		ContentType: detectContentType(data),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

const multipartOverhead = 1 << 20

func detectContentType(data []byte) string {
	ct, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return ct
}
