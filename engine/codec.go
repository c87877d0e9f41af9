package engine

import (
	"fmt"

	"github.com/xhhuango/json"
)

func DecodeRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("decoding request: %w", err)
	}
	return req, nil
}

func EncodeResponse(resp Response) ([]byte, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return data, nil
}

// ServeJSON decodes a request, handles it and encodes the response. Failures
// are reported in the response's error field.
func ServeJSON(data []byte) []byte {
	resp, err := serve(data)
	if err != nil {
		resp = Response{Error: err.Error()}
	}
	out, err := EncodeResponse(resp)
	if err != nil {
		out = []byte(fmt.Sprintf(`{"error":%q}`, err.Error()))
	}
	return out
}

func serve(data []byte) (Response, error) {
	req, err := DecodeRequest(data)
	if err != nil {
		return Response{}, err
	}
	return Handle(req)
}
