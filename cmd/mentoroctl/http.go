package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func doRequest(method, url string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+keyFlag)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: status %d: %s", method, url, resp.StatusCode, string(data))
	}
	return data, nil
}

func doGet(url string) ([]byte, error)    { return doRequest(http.MethodGet, url, nil) }
func doDelete(url string) ([]byte, error) { return doRequest(http.MethodDelete, url, nil) }

func doPostJSON(url string, p interface{}) ([]byte, error) {
	return doRequest(http.MethodPost, url, p)
}

func doPatchJSON(url string, p interface{}) ([]byte, error) {
	return doRequest(http.MethodPatch, url, p)
}
