/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package xbase

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// HTTPTimeout bounds every admin request.
var HTTPTimeout = 5 * time.Second

func makeSimpleRequest(ctx context.Context, method string, url string, payload interface{}) (*http.Request, error) {
	var data []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		data = b
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(ctx), nil
}

// httpDo sends the request and reads the whole body, a status >= 400 is
// returned as an error carrying the body.
func httpDo(method string, url string, payload interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), HTTPTimeout)
	defer cancel()

	req, err := makeSimpleRequest(ctx, method, url, payload)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return string(body), errors.Errorf("http.%s[%s].status[%d].body[%s]", method, url, resp.StatusCode, bytes.TrimSpace(body))
	}
	return string(body), nil
}

// HTTPGet used to do restful get request.
func HTTPGet(url string) (string, error) {
	return httpDo(http.MethodGet, url, nil)
}

// HTTPPost used to do restful post request.
func HTTPPost(url string, payload interface{}) (string, error) {
	return httpDo(http.MethodPost, url, payload)
}

// HTTPPut used to do restful put request.
func HTTPPut(url string, payload interface{}) (string, error) {
	return httpDo(http.MethodPut, url, payload)
}
