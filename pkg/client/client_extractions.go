package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/morfeolab/morfeo/pkg/extractor"
	"github.com/morfeolab/morfeo/pkg/structurer"
)

type ExtractionService struct {
	Options []RequestOption
}

func NewExtractionService(opts ...RequestOption) ExtractionService {
	return ExtractionService{
		Options: opts,
	}
}

type Table = extractor.Table
type TableSet = extractor.TableSet
type Row = extractor.Row

type Field = structurer.Field

type FileInput struct {
	Name   string
	Reader io.Reader
}

func (r *ExtractionService) ExtractTables(ctx context.Context, inputs []FileInput, opts ...RequestOption) (*TableSet, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := postFiles(ctx, c, c.URL+"/morfeo/extract-tables", inputs)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var result TableSet

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ExtractionService) ExtractMedicalData(ctx context.Context, inputs []FileInput, opts ...RequestOption) ([]Field, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	resp, err := postFiles(ctx, c, c.URL+"/morfeo/extract-medical-data", inputs)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	var result []Field

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ExtractionService) StructureClinicalData(ctx context.Context, set TableSet, opts ...RequestOption) ([]Row, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, err := json.Marshal(set)

	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/morfeo/structure-clinical-data", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var result []Row

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}

func postFiles(ctx context.Context, c *RequestConfig, url string, inputs []FileInput) (*http.Response, error) {
	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	for _, input := range inputs {
		file, err := w.CreateFormFile("files", input.Name)

		if err != nil {
			return nil, err
		}

		if _, err := io.Copy(file, input.Reader); err != nil {
			return nil, err
		}
	}

	w.Close()

	req, _ := http.NewRequestWithContext(ctx, "POST", url, &data)
	req.Header.Set("Content-Type", w.FormDataContentType())

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.New(resp.Status)
	}

	return resp, nil
}
